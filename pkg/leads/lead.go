package leads

import "time"

// Status is the outreach lifecycle state of a lead. It starts at "new"
// and is only moved by explicit admin action afterwards.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusPriority  Status = "priority"
	StatusRejected  Status = "rejected"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusPriority, StatusRejected:
		return true
	}
	return false
}

// Lead is a prospect/business contact record collected for outreach.
// Everything except ID, Title, Status and UploadedAt is optional.
// All leads created by one CSV import share the same UploadedAt.
type Lead struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Phone      string    `json:"phone,omitempty"`
	Email1     string    `json:"email1,omitempty"`
	Email2     string    `json:"email2,omitempty"`
	Email3     string    `json:"email3,omitempty"`
	Email4     string    `json:"email4,omitempty"`
	Email5     string    `json:"email5,omitempty"`
	Website    string    `json:"website,omitempty"`
	URL        string    `json:"url,omitempty"`
	Instagram1 string    `json:"instagram1,omitempty"`
	Instagram2 string    `json:"instagram2,omitempty"`
	Facebook1  string    `json:"facebook1,omitempty"`
	Facebook2  string    `json:"facebook2,omitempty"`
	Linkedin1  string    `json:"linkedin1,omitempty"`
	Linkedin2  string    `json:"linkedin2,omitempty"`
	Youtube1   string    `json:"youtube1,omitempty"`
	Youtube2   string    `json:"youtube2,omitempty"`
	Tiktok1    string    `json:"tiktok1,omitempty"`
	Tiktok2    string    `json:"tiktok2,omitempty"`
	Twitter1   string    `json:"twitter1,omitempty"`
	Twitter2   string    `json:"twitter2,omitempty"`
	City       string    `json:"city,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Status     Status    `json:"status"`
	UploadedAt time.Time `json:"uploaded_at"`
}
