package domain

// Report is a submitted problem report from the help screen.
type Report struct {
	Type             string `json:"type"`
	Subject          string `json:"subject"`
	Description      string `json:"description"`
	Email            string `json:"email,omitempty"`
	Priority         string `json:"priority"`
	AttachScreenshot bool   `json:"attachScreenshot"`
}

// Draft mirrors the report form's fields; email is optional.
type Draft struct {
	Type             string
	Subject          string
	Description      string
	Email            string
	Priority         string
	AttachScreenshot bool
}
