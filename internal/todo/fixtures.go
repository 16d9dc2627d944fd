package todo

import (
	"time"

	"github.com/google/uuid"
)

// SampleTasks returns a small realistic list, newest first, for trying the
// app out on a fresh database.
func SampleTasks(now time.Time) []Task {
	at := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	return []Task{
		{
			ID:        uuid.NewString(),
			Title:     "Buy milk",
			Notes:     "Oat milk if they have it",
			CreatedAt: at(10 * time.Minute),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Renew passport",
			Notes:     "Photos are in the desk drawer. Appointment needed before June.",
			CreatedAt: at(3 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Call the plumber about the kitchen sink",
			CreatedAt: at(26 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Book dentist appointment",
			Done:      true,
			CreatedAt: at(3 * 24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Read chapter 4 of the Go book",
			Notes:     "Concurrency patterns, take notes on pipelines",
			Done:      true,
			CreatedAt: at(7 * 24 * time.Hour),
		},
	}
}
