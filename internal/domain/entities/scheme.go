package entities

import "time"

// Scheme is one government support scheme shown in the schemes browser.
type Scheme struct {
	ID          uint
	Title       string
	Description string
	Eligibility string
	Link        string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
