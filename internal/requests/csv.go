package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

// ParseCSV reads one process per line as "arrival,burst[,priority]". Blank
// lines are skipped, a missing priority leaves the job without one and rows
// with more than three columns are rejected.
func ParseCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	jobs := make([]Job, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidRow, err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		if len(record) < 2 {
			return nil, fmt.Errorf("%w: line %d: missing columns, format is arrival,burst,priority", ErrInvalidRow, line)
		}
		if len(record) > 3 {
			return nil, fmt.Errorf("%w: line %d: %d columns, format is arrival,burst,priority", ErrInvalidRow, line, len(record))
		}
		job, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRow, line, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseRecord(record []string) (Job, error) {
	arrival, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil || arrival < 0 {
		return Job{}, fmt.Errorf("arrival %q must be an integer >= 0", record[0])
	}
	burst, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil || burst <= 0 {
		return Job{}, fmt.Errorf("burst %q must be an integer > 0", record[1])
	}

	job := Job{ArrivalTime: arrival, BurstTime: burst}
	if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
		priority, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil || priority >= core.DefaultPriority {
			return Job{}, fmt.Errorf("priority %q must be an integer < %d", record[2], core.DefaultPriority)
		}
		job.Priority = &priority
	}
	return job, nil
}
