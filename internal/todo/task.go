// Package todo holds the task list: the store that owns and mutates it, the
// adapter that persists it, and the pure projection used for display.
package todo

// Task is a single to-do item
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Done      bool   `json:"done"`
	CreatedAt int64  `json:"createdAt"` // ms since epoch
}

// Status returns the display label for the task's completion state
func (t Task) Status() string {
	if t.Done {
		return "Done"
	}
	return "Active"
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
