package leadimport

import "github.com/crewboard/crewboard-back/pkg/leads"

// RejectReason classifies why a row was skipped.
type RejectReason string

const (
	RejectMissingTitle    RejectReason = "missing_title"
	RejectDuplicateOfSet  RejectReason = "duplicate_existing"
	RejectDuplicateInFile RejectReason = "duplicate_in_file"
)

// Outcome is the decision for one mapped row.
type Outcome struct {
	Lead     leads.Lead
	Accepted bool
	Reason   RejectReason
}

// Engine decides, row by row and in file order, whether a mapped row is
// a new lead, a duplicate of an already-persisted lead, or a duplicate
// of an earlier row in the same file. File order matters: the first of
// two intra-file duplicates is the one that survives.
type Engine struct {
	titles map[string]struct{}
	phones map[string]struct{}
	emails map[string]struct{}

	seenInBatch map[string]struct{}
}

// NewEngine builds the existing-lead indexes once, from a snapshot of
// the current collection taken before any row is processed. Title
// entries include the empty string; phone and email indexes only hold
// non-empty values.
func NewEngine(existing []leads.Lead) *Engine {
	e := &Engine{
		titles:      make(map[string]struct{}, len(existing)),
		phones:      make(map[string]struct{}, len(existing)),
		emails:      make(map[string]struct{}, len(existing)),
		seenInBatch: make(map[string]struct{}),
	}
	for _, l := range existing {
		e.titles[Normalize(l.Title)] = struct{}{}
		if p := Normalize(l.Phone); p != "" {
			e.phones[p] = struct{}{}
		}
		if m := Normalize(l.Email1); m != "" {
			e.emails[m] = struct{}{}
		}
	}
	return e
}

// Evaluate decides the fate of one mapped row and records its composite
// key so later rows in the same file are checked against it.
func (e *Engine) Evaluate(row leads.Lead) Outcome {
	if row.Title == "" || row.Title == MissingTitle {
		return Outcome{Lead: row, Reason: RejectMissingTitle}
	}

	t := Normalize(row.Title)
	p := Normalize(row.Phone)
	m := Normalize(row.Email1)

	// A title match alone never rejects; the second field must also
	// match and be non-empty, so two businesses that merely both lack a
	// phone or email cannot collide.
	existsDup := (e.has(e.titles, t) && p != "" && e.has(e.phones, p)) ||
		(e.has(e.titles, t) && m != "" && e.has(e.emails, m)) ||
		(p != "" && m != "" && e.has(e.phones, p) && e.has(e.emails, m))

	// Composite key for intra-file dedup: title plus phone, falling back
	// to email. The degenerate "|" key never collides.
	key := t + "|" + p
	if p == "" {
		key = t + "|" + m
	}
	inFileDup := false
	if key != "|" {
		_, inFileDup = e.seenInBatch[key]
		e.seenInBatch[key] = struct{}{}
	}

	switch {
	case existsDup:
		return Outcome{Lead: row, Reason: RejectDuplicateOfSet}
	case inFileDup:
		return Outcome{Lead: row, Reason: RejectDuplicateInFile}
	}
	return Outcome{Lead: row, Accepted: true}
}

func (e *Engine) has(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
