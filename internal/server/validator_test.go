package server

import (
	"errors"
	"strings"
	"testing"

	"github.com/searchlite/searchlite/pkg/config"
)

func TestValidateAddDocument(t *testing.T) {
	cfg := config.SearchConfig{
		MaxContentBytes:     100,
		MaxDocumentIDLength: 10,
	}

	tests := []struct {
		name       string
		req        AddDocumentRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  AddDocumentRequest{Content: "some text", DocumentID: "doc-1"},
		},
		{
			name: "valid without document id",
			req:  AddDocumentRequest{Content: "some text"},
		},
		{
			name:       "empty content",
			req:        AddDocumentRequest{Content: ""},
			wantFields: []string{"content"},
		},
		{
			name:       "whitespace only content",
			req:        AddDocumentRequest{Content: " \t\n "},
			wantFields: []string{"content"},
		},
		{
			name:       "content too large",
			req:        AddDocumentRequest{Content: strings.Repeat("a", 101)},
			wantFields: []string{"content"},
		},
		{
			name:       "document id too long",
			req:        AddDocumentRequest{Content: "ok", DocumentID: strings.Repeat("x", 11)},
			wantFields: []string{"document_id"},
		},
		{
			name:       "multiple violations",
			req:        AddDocumentRequest{Content: "", DocumentID: strings.Repeat("x", 11)},
			wantFields: []string{"content", "document_id"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAddDocument(&tt.req, cfg)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if len(validationErr.Fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want keys %v", validationErr.Fields, tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if _, ok := validationErr.Fields[field]; !ok {
					t.Errorf("missing violation for field %q", field)
				}
			}
		})
	}
}
