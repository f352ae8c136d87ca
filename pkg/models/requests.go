// Package models holds the request and response shapes of the HTTP API.
package models

// CreateLeadRequest adds a single lead by hand from the dashboard.
type CreateLeadRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Email1     string `json:"email1" validate:"omitempty,email"`
	Email2     string `json:"email2" validate:"omitempty,email"`
	Website    string `json:"website" validate:"omitempty,url"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Instagram1 string `json:"instagram1" validate:"omitempty,max=255"`
	Facebook1  string `json:"facebook1" validate:"omitempty,max=255"`
	Linkedin1  string `json:"linkedin1" validate:"omitempty,max=255"`
	Notes      string `json:"notes" validate:"omitempty,max=5000"`
}

// UpdateStatusRequest moves a lead through the pipeline.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted priority rejected"`
}

// UpdateNotesRequest replaces a lead's notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=5000"`
}

// BulkDeleteRequest removes several leads at once.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// ChatRequest is one visitor question for the concierge.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// CreateJobRequest publishes a job posting.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Type        string `json:"type" validate:"omitempty,max=100"`
	Pay         string `json:"pay" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=10000"`
	Open        bool   `json:"open"`
}

// ApplyRequest is a public job application. The CV arrives as a separate
// multipart file part.
type ApplyRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=50"`
	Message string `json:"message" form:"message" validate:"omitempty,max=5000"`
}
