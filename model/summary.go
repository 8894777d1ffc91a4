package model

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusCreated Status = "created"
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one (domain, type) pair on export or one
// record on import.
type Outcome struct {
	Domain string
	QType  string
	Name   string
	Status Status
	Reason string
}

func (o Outcome) String() string {
	s := fmt.Sprintf("%s %s", o.Domain, o.QType)
	if o.Name != "" {
		s = fmt.Sprintf("%s %s (%s)", o.Name, o.QType, o.Domain)
	}
	if o.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", s, o.Status, o.Reason)
	}
	return fmt.Sprintf("%s: %s", s, o.Status)
}

// Summary accumulates per-record outcomes over a run, so a failed lookup or
// API call never aborts the sweep and the end-of-run report is a plain value.
type Summary struct {
	Outcomes []Outcome
}

func (s *Summary) Add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
}

func (s *Summary) Count(st Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == st {
			n++
		}
	}
	return n
}

// Failed returns the failed outcomes only.
func (s *Summary) Failed() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}

func (s *Summary) String() string {
	parts := make([]string, 0, 4)
	for _, st := range []Status{StatusCreated, StatusUpdated, StatusSkipped, StatusFailed} {
		parts = append(parts, fmt.Sprintf("%d %s", s.Count(st), st))
	}
	return strings.Join(parts, ", ")
}
