package todo

import (
	"fmt"
	"strings"
)

// Filter restricts the visible tasks by completion state
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter converts a name into a Filter. Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Next returns the following filter, wrapping around
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

func (f Filter) matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Done
	case FilterCompleted:
		return t.Done
	default:
		return true
	}
}

// Project returns the tasks passing both the status filter and the
// case-insensitive search over title and notes, in list order.
func Project(tasks []Task, filter Filter, search string) []Task {
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.matches(t) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Notes), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summary holds footer counts over the unfiltered list
type Summary struct {
	Total  int
	Active int
}

// Completed returns the number of done tasks
func (s Summary) Completed() int {
	return s.Total - s.Active
}

// String renders the footer line
func (s Summary) String() string {
	return fmt.Sprintf("%d items • %d active", s.Total, s.Active)
}

// Summarize counts all tasks and those not done
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if !t.Done {
			s.Active++
		}
	}
	return s
}
