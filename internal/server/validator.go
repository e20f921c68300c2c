package server

import (
	"fmt"
	"strings"

	"github.com/searchlite/searchlite/pkg/config"
)

// ValidationError holds per-field validation failure messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s:%s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// AddDocumentRequest is the JSON body accepted by POST /api/v1/documents.
type AddDocumentRequest struct {
	Content    string `json:"content"`
	DocumentID string `json:"document_id,omitempty"`
}

// validateAddDocument checks content and identifier limits and returns a
// ValidationError describing every violated field.
func validateAddDocument(req *AddDocumentRequest, cfg config.SearchConfig) error {
	errs := make(map[string]string)

	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "content is required and must not be empty"
	} else if len(req.Content) > cfg.MaxContentBytes {
		errs["content"] = fmt.Sprintf("content must be at most %d bytes", cfg.MaxContentBytes)
	}
	if len(req.DocumentID) > cfg.MaxDocumentIDLength {
		errs["document_id"] = fmt.Sprintf("document_id must be at most %d characters", cfg.MaxDocumentIDLength)
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
