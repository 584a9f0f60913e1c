// Package document reads uploaded files into quiz documents.
package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/quizagent/quizagent-backend/internal/model"
)

// EmptyFileError reports an upload whose decoded text is empty.
type EmptyFileError struct {
	Filename string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("file %q is empty or has no readable text", e.Filename)
}

// ReadError reports a failure reading the uploaded content.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading file %q: %v", e.Filename, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Ingest decodes an uploaded file as text and validates non-emptiness.
// The file picker restricts extensions client-side; the only server-side
// validation is that the decoded text is non-blank. Binary formats
// (PDF/DOCX) are not supported.
func Ingest(filename string, r io.Reader) (*model.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Filename: filename, Err: err}
	}

	content := string(raw)
	if strings.TrimSpace(content) == "" {
		return nil, &EmptyFileError{Filename: filename}
	}

	return &model.Document{
		Filename: filename,
		Content:  content,
		Size:     int64(len(raw)),
	}, nil
}
