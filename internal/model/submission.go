package model

import "time"

// StatusNew is the only status a submission ever carries; the store assigns
// it on insert and no transition path exists.
const StatusNew = "new"

// Submission is a single contact-form submission.
type Submission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Business  string    `json:"business"`
	Service   string    `json:"service"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}
