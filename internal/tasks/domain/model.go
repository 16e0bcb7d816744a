package domain

import "time"

// Task is one card on the favorites board. The board starts empty; there
// is no seed.
type Task struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // todo, in-progress, completed
	CreatedAt time.Time `json:"createdAt"`
}

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

func (t Task) EntityID() int64 { return t.ID }

func (t Task) Stamp(id int64, createdAt time.Time) Task {
	t.ID = id
	t.CreatedAt = createdAt
	return t
}

func ValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
