package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mosaic-ui/mosaic/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseItems(t *testing.T) {
	items, err := ParseItems([]byte(`[
		{"id": "hero", "height": 240},
		{"id": "card", "height": 120.5}
	]`))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "hero", items[0].ID)
	assert.Equal(t, 240.0, items[0].Height)
	assert.Equal(t, "card", items[1].ID)
	assert.Equal(t, 120.5, items[1].Height)
}

func TestParseItemsEmpty(t *testing.T) {
	items, err := ParseItems([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseItemsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{not json`},
		{"empty id", `[{"id": "", "height": 10}]`},
		{"duplicate id", `[{"id": "a", "height": 10}, {"id": "a", "height": 20}]`},
		{"negative height", `[{"id": "a", "height": -1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItems([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidManifest))
		})
	}
}

func TestLoadItems(t *testing.T) {
	path := writeFile(t, "items.json", `[{"id": "a", "height": 100}]`)
	items, err := LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestLoadItemsMissingFile(t *testing.T) {
	_, err := LoadItems(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "mosaic.toml", `
container_width = 1024.0
spacing = 8.0
columns = 3
formats = ["svg", "json"]

[breakpoints]
medium = 500.0
expanded = 900.0
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.ContainerWidth)
	assert.Equal(t, 8.0, cfg.Spacing)
	assert.Equal(t, 3, cfg.Columns)
	assert.Equal(t, []string{"svg", "json"}, cfg.Formats)
	assert.Equal(t, 500.0, cfg.Breakpoints.Medium)
	assert.Equal(t, 900.0, cfg.Breakpoints.Expanded)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "mosaic.toml", `spacing = 4.0`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 4.0, cfg.Spacing)
	assert.Equal(t, def.ContainerWidth, cfg.ContainerWidth)
	assert.Equal(t, def.Breakpoints, cfg.Breakpoints)
	assert.Equal(t, def.Formats, cfg.Formats)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `container_width = [`},
		{"zero width", `container_width = 0.0`},
		{"negative spacing", `spacing = -1.0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "mosaic.toml", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRejectsHiddenFilename(t *testing.T) {
	path := writeFile(t, ".mosaic.toml", `spacing = 4.0`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfig))
}

func TestResolveColumns(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Columns = 5
	assert.Equal(t, 5, cfg.ResolveColumns())

	cfg.Columns = 0
	cfg.ContainerWidth = 500
	assert.Equal(t, 4, cfg.ResolveColumns())

	cfg.ContainerWidth = 700
	assert.Equal(t, 8, cfg.ResolveColumns())

	cfg.ContainerWidth = 900
	assert.Equal(t, 12, cfg.ResolveColumns())
}
