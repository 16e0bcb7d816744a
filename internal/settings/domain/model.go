package domain

// UserSettings is the single persisted settings document: profile fields,
// locale preferences and notification toggles.
type UserSettings struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	Language           string `json:"language"`
	Timezone           string `json:"timezone"`
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	WeeklyDigest       bool   `json:"weeklyDigest"`
	MarketingEmails    bool   `json:"marketingEmails"`
}

// PasswordChange is the change-password form's draft.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Defaults is the settings document shown before anything is saved.
func Defaults() UserSettings {
	return UserSettings{
		FullName:           "Gabriel Johnson",
		Email:              "gabriel@example.com",
		Phone:              "+1 (555) 123-4567",
		Company:            "ProdLens Inc.",
		Language:           "en",
		Timezone:           "America/New_York",
		EmailNotifications: true,
		PushNotifications:  true,
		WeeklyDigest:       false,
		MarketingEmails:    false,
	}
}
