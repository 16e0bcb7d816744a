package domain

// Dossier is one row on the All Dossiers board. The board is seeded and
// read-only; review state advances out of band.
type Dossier struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Stakeholders int    `json:"stakeholders"`
	Status       string `json:"status"` // In-Progress, In-Review, Reviewed
}

const (
	StatusInProgress = "In-Progress"
	StatusInReview   = "In-Review"
	StatusReviewed   = "Reviewed"
)

func Seed() []Dossier {
	return []Dossier{
		{ID: 1, Title: "Gamified fitness tracker", Date: "Sep 25, 2022, 13:25 PM", Stakeholders: 0, Status: StatusInProgress},
		{ID: 2, Title: "Running Speedometer", Date: "Sep 25, 2022, 13:25 PM", Stakeholders: 3, Status: StatusInReview},
		{ID: 3, Title: "Local gym deals page", Date: "Sep 25, 2022, 13:25 PM", Stakeholders: 3, Status: StatusReviewed},
		{ID: 4, Title: "Virtual fitness classes", Date: "Sep 25, 2022, 13:25 PM", Stakeholders: 3, Status: StatusReviewed},
	}
}
