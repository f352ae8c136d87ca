package models

import "github.com/crewboard/crewboard-back/pkg/leads"

// LeadListResponse is one page of leads with filter-aware totals.
type LeadListResponse struct {
	Leads       []leads.Lead   `json:"leads"`
	Total       int            `json:"total"`
	Page        int            `json:"page"`
	Limit       int            `json:"limit"`
	StatusTally map[string]int `json:"status_tally"`
}

// ImportResponse summarizes a CSV import for the dashboard toast.
type ImportResponse struct {
	Message   string        `json:"message"`
	TotalRows int           `json:"total_rows"`
	Added     int           `json:"added"`
	Skipped   int           `json:"skipped"`
	Rejected  []RejectedRow `json:"rejected,omitempty"`
}

// RejectedRow explains why one CSV row was not imported.
type RejectedRow struct {
	Row    int    `json:"row"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ChatResponse carries the concierge's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// UploadResponse returns the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// MessageResponse is a generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
