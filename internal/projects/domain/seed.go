package domain

import "time"

// Seed is the project baseline installed on first load, before anything
// has been persisted.
func Seed() []Project {
	return []Project{
		{
			ID:          1,
			Name:        "Website Redesign",
			Description: "Complete overhaul of the company website with modern UI/UX",
			Status:      StatusActive,
			Progress:    65,
			DueDate:     "2025-02-15",
			Team:        []string{"Alice", "Bob", "Charlie"},
			CreatedAt:   date(2024, 12, 1),
		},
		{
			ID:          2,
			Name:        "Mobile App Development",
			Description: "Build native mobile apps for iOS and Android platforms",
			Status:      StatusActive,
			Progress:    40,
			DueDate:     "2025-03-30",
			Team:        []string{"David", "Eve"},
			CreatedAt:   date(2024, 11, 15),
		},
		{
			ID:          3,
			Name:        "API Integration",
			Description: "Integrate third-party APIs for payment and analytics",
			Status:      StatusCompleted,
			Progress:    100,
			DueDate:     "2024-12-20",
			Team:        []string{"Frank", "Grace"},
			CreatedAt:   date(2024, 10, 1),
		},
		{
			ID:          4,
			Name:        "Database Migration",
			Description: "Migrate legacy database to cloud infrastructure",
			Status:      StatusOnHold,
			Progress:    25,
			DueDate:     "2025-04-15",
			Team:        []string{"Henry"},
			CreatedAt:   date(2024, 11, 20),
		},
		{
			ID:          5,
			Name:        "Security Audit",
			Description: "Comprehensive security review and vulnerability assessment",
			Status:      StatusArchived,
			Progress:    100,
			DueDate:     "2024-10-30",
			Team:        []string{"Ivy", "Jack"},
			CreatedAt:   date(2024, 9, 1),
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
