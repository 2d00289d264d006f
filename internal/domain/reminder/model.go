package reminder

import "time"

// Request is the payload accepted by the reminder endpoint.
type Request struct {
	Email string `json:"email"`
	Date  string `json:"date"`
	Year  string `json:"year"`
}

// Reminder is a stored test-date reminder subscription.
type Reminder struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Year      string    `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}
