// Package report renders a simulated timeline and its metrics as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
)

const cellWidth = 8

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteGantt prints one cell per block followed by a ruler of block
// boundaries.
func WriteGantt(w io.Writer, timeline core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var bars, ruler strings.Builder
	bars.WriteString("|")
	for _, block := range timeline {
		bars.WriteString(center(block.ProcessID, cellWidth))
		bars.WriteString("|")

		start := strconv.Itoa(block.Start)
		ruler.WriteString(start)
		ruler.WriteString(strings.Repeat(" ", max(1, cellWidth+1-len(start))))
	}
	ruler.WriteString(strconv.Itoa(timeline.Makespan()))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ruler.String())
	_, _ = fmt.Fprintln(w)
}

// WriteResults prints the per-process table with averages in the footer.
func WriteResults(w io.Writer, results []core.Result, aggregates core.Aggregates) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})

	rows := make([][]string, len(results))
	for i, r := range results {
		priority := "-"
		if r.HasPriority() {
			priority = strconv.Itoa(r.Priority)
		}
		rows[i] = []string{
			r.ID,
			strconv.Itoa(r.Arrival),
			strconv.Itoa(r.Burst),
			priority,
			strconv.Itoa(r.Completion),
			strconv.Itoa(r.Turnaround),
			strconv.Itoa(r.Waiting),
			strconv.Itoa(r.Response),
		}
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Makespan %d", aggregates.Makespan),
		fmt.Sprintf("Avg %.2f", aggregates.AvgTurnaround),
		fmt.Sprintf("Avg %.2f", aggregates.AvgWaiting),
		fmt.Sprintf("Avg %.2f", aggregates.AvgResponse)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  idle: %d  throughput: %.2f/t\n\n",
		aggregates.CPUUtilization, aggregates.IdleTime, aggregates.Throughput)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
