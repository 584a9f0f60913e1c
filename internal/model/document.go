package model

import "time"

// Document is the text content of an uploaded file.
// Immutable after ingestion; discarded on session reset.
type Document struct {
	Filename string `json:"filename"`
	Content  string `json:"-"`
	Size     int64  `json:"size"`
}

// TermEntry is one extracted English vocabulary term with its Vietnamese
// explanation. Extraction is best-effort; the set may be empty.
type TermEntry struct {
	English    string `json:"english"`
	Vietnamese string `json:"vietnamese"`
	Category   string `json:"category"`
}

// TermsExport is the downloadable vocabulary artifact.
type TermsExport struct {
	Document      string      `json:"document"`
	ExtractedDate time.Time   `json:"extracted_date"`
	TotalTerms    int         `json:"total_terms"`
	Terms         []TermEntry `json:"terms"`
}
