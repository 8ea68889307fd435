package errors

import (
	"strings"
	"testing"
)

func TestValidateItemID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid simple", "hero", false},
		{"valid with separators", "card_2-b.jpg", false},
		{"valid unicode", "célèbre", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"control character", "hero\ttab", true},
		{"newline", "hero\n", true},
		{"null byte", "hero\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidItem) {
				t.Errorf("ValidateItemID(%q) code = %v, want %v", tt.id, GetCode(err), ErrCodeInvalidItem)
			}
		})
	}
}

func TestValidateConfigFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid", "mosaic.toml", false},
		{"empty", "", true},
		{"path separator", "conf/mosaic.toml", true},
		{"backslash", `conf\mosaic.toml`, true},
		{"hidden", ".mosaic.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}
