package todo

import (
	"reflect"
	"testing"
)

var viewFixture = []Task{
	{ID: "1", Title: "Buy milk", Notes: "", Done: false},
	{ID: "2", Title: "Write report", Notes: "ABC quarterly numbers", Done: true},
	{ID: "3", Title: "abcdef", Notes: "", Done: false},
	{ID: "4", Title: "Call mom", Notes: "", Done: true},
	{ID: "5", Title: "Plan trip", Notes: "Check xAbCx flights", Done: false},
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		search string
		want   []string
	}{
		{"all no search", FilterAll, "", []string{"1", "2", "3", "4", "5"}},
		{"completed", FilterCompleted, "", []string{"2", "4"}},
		{"active", FilterActive, "", []string{"1", "3", "5"}},
		{"search title and notes case-insensitively", FilterAll, "abc", []string{"2", "3", "5"}},
		{"search is trimmed", FilterAll, "  ABC  ", []string{"2", "3", "5"}},
		{"filter and search combine", FilterActive, "abc", []string{"3", "5"}},
		{"completed with search", FilterCompleted, "mom", []string{"4"}},
		{"no match", FilterAll, "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Project(viewFixture, tt.filter, tt.search))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Project = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectDoesNotTouchInput(t *testing.T) {
	input := cloneTasks(viewFixture)
	_ = Project(input, FilterCompleted, "a")
	if !reflect.DeepEqual(input, viewFixture) {
		t.Fatal("Project modified its input")
	}
}

func TestSummarizeIgnoresFilter(t *testing.T) {
	sum := Summarize(viewFixture)
	if sum.Total != 5 || sum.Active != 3 || sum.Completed() != 2 {
		t.Fatalf("Summary = %+v", sum)
	}
	if got := sum.String(); got != "5 items • 3 active" {
		t.Fatalf("String = %q", got)
	}
	if got := Summarize(nil); got.Total != 0 || got.Active != 0 {
		t.Fatalf("empty summary = %+v", got)
	}
}

func TestParseFilter(t *testing.T) {
	tests := map[string]Filter{
		"":          FilterAll,
		"all":       FilterAll,
		"Active":    FilterActive,
		"completed": FilterCompleted,
	}
	for in, want := range tests {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseFilter(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFilter("done"); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestFilterNextCycles(t *testing.T) {
	f := FilterAll
	seen := []Filter{f}
	for i := 0; i < 3; i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	want := []Filter{FilterAll, FilterActive, FilterCompleted, FilterAll}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("cycle = %v, want %v", seen, want)
	}
}
