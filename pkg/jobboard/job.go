package jobboard

import "time"

// Job is one posting on the careers board.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"` // e.g. event-day, part-time, seasonal
	Pay         string    `json:"pay,omitempty"`
	Description string    `json:"description,omitempty"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`
}

// Application is one candidate application to a job.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	CVURL     string    `json:"cv_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
