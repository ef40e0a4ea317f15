package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"http", "http://localhost:3001", ""},
		{"https with path", "https://api.example.com/v1", ""},
		{"empty", "", "url is required"},
		{"only spaces", "   ", "url is required"},
		{"no scheme", "localhost:3001", "scheme must be http or https"},
		{"ftp", "ftp://example.com", "scheme must be http or https"},
		{"missing host", "http://", "missing host"},
		{"unparseable", "http://[::1", "invalid url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BaseURL(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBaseURLField(t *testing.T) {
	assert.NoError(t, BaseURLField("api.base_url", "http://localhost:3001"))

	err := BaseURLField("api.base_url", "ftp://example.com")
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "api.base_url", fieldErrs[0].Field)
}

func TestPageSize(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"25", false},
		{" 10 ", false},
		{"0", true},
		{"-3", true},
		{"ten", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := PageSize(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "PageSize(%q) error = %v", tt.input, err)
		})
	}
}
