package todo

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Store owns the task list and is its only mutator. Every mutation builds
// the next list, saves it, and installs it only if the save succeeded.
type Store struct {
	mu    sync.Mutex
	repo  *Repository
	tasks []Task
	now   func() time.Time
	newID func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how new task ids are produced
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore loads the persisted list from repo and returns a store over it
func NewStore(repo *Repository, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = repo.Load()
	return s
}

// Tasks returns a copy of the current list
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// Get returns the first task with id
func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// View projects the current list through filter and search
func (s *Store) View(filter Filter, search string) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.tasks, filter, search)
}

// Summary returns counts over the whole list
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.tasks)
}

// Create adds a task with the trimmed title at the top of the list
func (s *Store) Create(title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Task{
		ID:        s.newID(),
		Title:     title,
		Done:      false,
		CreatedAt: s.now().UnixMilli(),
	}

	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, t)
	next = append(next, s.tasks...)
	if err := s.commit(next); err != nil {
		return Task{}, err
	}

	log.WithField("id", t.ID).Debug("Task created")
	return t, nil
}

// Toggle flips the done flag of the task with id
func (s *Store) Toggle(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}

	next := cloneTasks(s.tasks)
	next[i].Done = !next[i].Done
	if err := s.commit(next); err != nil {
		return Task{}, err
	}
	return next[i], nil
}

// Update replaces the title and notes of the task with id. Both are trimmed;
// notes may end up empty, the title may not.
func (s *Store) Update(id, title, notes string) (Task, error) {
	title = strings.TrimSpace(title)
	notes = strings.TrimSpace(notes)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}

	next := cloneTasks(s.tasks)
	next[i].Title = title
	next[i].Notes = notes
	if err := s.commit(next); err != nil {
		return Task{}, err
	}
	return next[i], nil
}

// Delete removes every task with id. Deleting an unknown id does nothing.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.without(func(t Task) bool { return t.ID == id })
	if len(next) == len(s.tasks) {
		return nil
	}
	return s.commit(next)
}

// ClearCompleted removes all done tasks and reports how many went
func (s *Store) ClearCompleted() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.without(func(t Task) bool { return t.Done })
	removed := len(s.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := s.commit(next); err != nil {
		return 0, err
	}
	return removed, nil
}

// Wipe removes every task
func (s *Store) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit([]Task{})
}

// Import decodes a task document and places its tasks above the existing
// ones. Ids are not de-duplicated. On any error the list is unchanged.
func (s *Store) Import(data []byte) (int, error) {
	imported, err := Decode(data)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Task, 0, len(imported)+len(s.tasks))
	next = append(next, imported...)
	next = append(next, s.tasks...)
	if err := s.commit(next); err != nil {
		return 0, err
	}

	log.WithField("count", len(imported)).Info("Tasks imported")
	return len(imported), nil
}

// Export serializes the current list
func (s *Store) Export() (Document, error) {
	return Export(s.Tasks())
}

// commit persists next and installs it. Callers hold s.mu.
func (s *Store) commit(next []Task) error {
	if err := s.repo.Save(next); err != nil {
		log.WithError(err).Error("Failed to persist tasks, change discarded")
		return err
	}
	s.tasks = next
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) without(drop func(Task) bool) []Task {
	next := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !drop(t) {
			next = append(next, t)
		}
	}
	return next
}
