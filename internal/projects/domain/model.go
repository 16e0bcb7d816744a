package domain

import "time"

// Project is a single tracked project on the My Projects screen.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // active, completed, on-hold, archived
	Progress    int       `json:"progress"`
	DueDate     string    `json:"dueDate"` // YYYY-MM-DD
	Team        []string  `json:"team"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOnHold    = "on-hold"
	StatusArchived  = "archived"
)

func (p Project) EntityID() int64 { return p.ID }

func (p Project) Stamp(id int64, createdAt time.Time) Project {
	p.ID = id
	p.CreatedAt = createdAt
	return p
}

// Draft carries the editable fields of the project form.
type Draft struct {
	Name        string
	Description string
	Status      string
	DueDate     string
}

// Update names the fields an edit may change; a nil field means
// "unchanged", so merge semantics stay auditable.
type Update struct {
	Name        *string
	Description *string
	Status      *string
	Progress    *int
	DueDate     *string
	Team        *[]string
}

func (u Update) Apply(p Project) Project {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Progress != nil {
		p.Progress = *u.Progress
	}
	if u.DueDate != nil {
		p.DueDate = *u.DueDate
	}
	if u.Team != nil {
		p.Team = *u.Team
	}
	return p
}
