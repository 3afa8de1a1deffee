package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string `json:"name" validate:"required,max=10"`
	Website string `json:"website" validate:"omitempty,url"`
	Count   int    `json:"count"`
}

func (s sampleRequest) Validate() []string {
	if s.Count < 0 {
		return []string{"count must not be negative"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantCode   string
		wantFields []string
		wantSubstr string
	}{
		{name: "valid", body: `{"name":"Booth A","website":"https://example.com"}`, wantOK: true},
		{name: "malformed json", body: `{invalid`, wantCode: ErrCodeBadRequest, wantSubstr: "invalid"},
		{name: "empty body", body: ``, wantCode: ErrCodeBadRequest, wantSubstr: "request body is required"},
		{name: "unknown field", body: `{"name":"x","id":"y"}`, wantCode: ErrCodeBadRequest, wantSubstr: "unknown field"},
		{name: "struct tags", body: `{"name":"","website":"not a url"}`, wantCode: ErrCodeValidationFailed, wantFields: []string{"name", "website"}},
		{name: "too long", body: `{"name":"a very long name"}`, wantCode: ErrCodeValidationFailed, wantFields: []string{"name"}},
		{name: "validator interface", body: `{"name":"ok","count":-1}`, wantCode: ErrCodeBadRequest, wantSubstr: "count must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest

			ok := DecodeAndValidate(rr, req, &dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Booth A", dest.Name)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			if tt.wantSubstr != "" {
				assert.Contains(t, envelope.Error.Message, tt.wantSubstr)
			}
			var fields []string
			for _, d := range envelope.Error.Details {
				fields = append(fields, d.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestDecodeOptional_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	rr := httptest.NewRecorder()
	dest := sampleRequest{Name: "kept"}

	require.True(t, DecodeOptional(rr, req, &dest))
	assert.Equal(t, "kept", dest.Name)
}

func TestStructFailures_Codes(t *testing.T) {
	failures := StructFailures(&sampleRequest{})
	require.Len(t, failures, 1)
	assert.Equal(t, domain.FieldError{Field: "name", Code: domain.CodeRequired, Message: "name is required"}, failures[0])
}
