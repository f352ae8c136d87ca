package leadimport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/crewboard/crewboard-back/pkg/leads"
)

// ErrNotCSV is returned before parsing when the filename does not end
// in .csv.
var ErrNotCSV = errors.New("file must be a .csv")

// RejectedRow reports one skipped row for the import detail view.
type RejectedRow struct {
	Row    int          `json:"row"` // 1-based data row number, header excluded
	Title  string       `json:"title"`
	Reason RejectReason `json:"reason"`
}

// Summary is the aggregate result of one import.
type Summary struct {
	TotalRows int           `json:"total_rows"`
	Added     int           `json:"added"`
	Skipped   int           `json:"skipped"`
	Rejected  []RejectedRow `json:"rejected,omitempty"`
}

// Message renders the operator-facing toast for this summary.
func (s Summary) Message() string {
	switch {
	case s.TotalRows == 0:
		return "No data found in CSV."
	case s.Added > 0 && s.Skipped == 0:
		return fmt.Sprintf("✅ Uploaded %d leads!", s.Added)
	case s.Added > 0:
		return fmt.Sprintf("✅ %d new leads added. ⚠️ %d duplicate(s) skipped.", s.Added, s.Skipped)
	default:
		return fmt.Sprintf("No new leads — all %d rows already exist in your database.", s.Skipped)
	}
}

// Service runs the import pipeline: parse → map → dedupe → batch persist
// → session reconciliation. One import is one sequential operation; rows
// are processed strictly in file order.
//
// Two admin sessions importing against the same store concurrently can
// each accept the same new lead, because each deduplicates against its
// own snapshot. That race is accepted: resolving it would need a
// conditional write on the normalized dedup fields, which the store does
// not offer. Duplicates created this way are cleaned up manually.
type Service struct {
	store   leads.Store
	session *leads.Session
	maxRows int
	logger  *log.Logger
}

// NewService creates the import pipeline. maxRows caps how many data
// rows a single file may contribute (0 = unlimited).
func NewService(store leads.Store, session *leads.Session, maxRows int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		store:   store,
		session: session,
		maxRows: maxRows,
		logger:  logger,
	}
}

// Import ingests one uploaded CSV file. On success the accepted leads are
// persisted in a single atomic batch and prepended to the session in one
// update. On any error the session and the store are exactly as they
// were before the call.
func (s *Service) Import(ctx context.Context, filename, text string) (*Summary, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, ErrNotCSV
	}

	records := ParseCSV(text)
	if s.maxRows > 0 && len(records) > s.maxRows {
		s.logger.Printf("⚠️  Import truncated to %d rows (file had %d)", s.maxRows, len(records))
		records = records[:s.maxRows]
	}

	summary := &Summary{TotalRows: len(records)}
	if len(records) == 0 {
		return summary, nil
	}

	// Indexes are built once from a snapshot taken before any row is
	// processed; the session is not re-read mid-import.
	engine := NewEngine(s.session.Snapshot())
	uploadedAt := time.Now().UTC()

	var accepted []leads.Lead
	for i, rec := range records {
		outcome := engine.Evaluate(MapRecord(rec))
		if !outcome.Accepted {
			summary.Skipped++
			summary.Rejected = append(summary.Rejected, RejectedRow{
				Row:    i + 1,
				Title:  outcome.Lead.Title,
				Reason: outcome.Reason,
			})
			continue
		}

		l := outcome.Lead
		l.Status = leads.StatusNew
		l.UploadedAt = uploadedAt
		accepted = append(accepted, l)
	}

	// Zero accepted rows means zero writes.
	if len(accepted) == 0 {
		summary.Added = 0
		s.logger.Printf("ℹ️  Import finished with nothing to add: %d row(s) skipped", summary.Skipped)
		return summary, nil
	}

	created, err := s.store.CreateBatch(ctx, accepted)
	if err != nil {
		return nil, fmt.Errorf("failed to persist import batch: %w", err)
	}

	s.session.Prepend(created)
	summary.Added = len(created)

	s.logger.Printf("✅ Imported %d lead(s), skipped %d from %s", summary.Added, summary.Skipped, filename)
	return summary, nil
}
