package domain

// Plan is one subscription tier on the upgrade screen.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	Current     bool     `json:"current,omitempty"`
	Recommended bool     `json:"recommended,omitempty"`
}

// CardDraft is the checkout form's draft; the card number and expiry
// arrive formatted ("4242 4242 4242 4242", "12/28") and are normalized
// during validation.
type CardDraft struct {
	CardNumber string
	CardName   string
	ExpiryDate string
	CVV        string
}

// PaymentResult is the tagged outcome of a simulated charge.
type PaymentResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Reference string `json:"reference,omitempty"`
	PlanID    string `json:"planId,omitempty"`
}

// Plans is the catalogue shown on the payment screen.
func Plans() []Plan {
	return []Plan{
		{
			ID:     "free",
			Name:   "Free",
			Price:  0,
			Period: "forever",
			Features: []string{
				"Up to 3 projects",
				"Basic analytics",
				"Email support",
				"1GB storage",
			},
			Current: true,
		},
		{
			ID:     "pro",
			Name:   "Pro",
			Price:  29,
			Period: "month",
			Features: []string{
				"Unlimited projects",
				"Advanced analytics",
				"Priority support",
				"25GB storage",
				"Team collaboration",
				"API access",
			},
			Recommended: true,
		},
		{
			ID:     "enterprise",
			Name:   "Enterprise",
			Price:  99,
			Period: "month",
			Features: []string{
				"Everything in Pro",
				"Unlimited storage",
				"Dedicated support",
				"Custom integrations",
				"SSO authentication",
				"Audit logs",
				"SLA guarantee",
			},
		},
	}
}
