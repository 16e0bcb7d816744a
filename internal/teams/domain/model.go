package domain

import "time"

// TeamMember is one card on the Our Team screen.
type TeamMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m TeamMember) EntityID() int64 { return m.ID }

func (m TeamMember) Stamp(id int64, createdAt time.Time) TeamMember {
	m.ID = id
	m.CreatedAt = createdAt
	return m
}

// Draft carries the editable member fields.
type Draft struct {
	Name   string
	Role   string
	Skills []string
}

// Update merges changed fields; nil means "unchanged".
type Update struct {
	Name   *string
	Role   *string
	Skills *[]string
}

func (u Update) Apply(m TeamMember) TeamMember {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Role != nil {
		m.Role = *u.Role
	}
	if u.Skills != nil {
		m.Skills = *u.Skills
	}
	return m
}

// Seed is the default roster installed on first load.
func Seed() []TeamMember {
	return []TeamMember{
		{ID: 1, Name: "John Doe", Role: "Web Designer", Skills: []string{"HTML", "CSS", "UI/UX"}},
		{ID: 2, Name: "Jane Smith", Role: "Web Developer", Skills: []string{"JavaScript", "React", "Node.js"}},
		{ID: 3, Name: "Sam Wilson", Role: "Front-end Developer", Skills: []string{"React", "CSS", "Redux"}},
	}
}
