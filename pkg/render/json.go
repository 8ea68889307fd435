package render

import (
	"encoding/json"

	"github.com/mosaic-ui/mosaic/pkg/masonry"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title   string
	columns int
}

// WithJSONTitle records a document title in the JSON output.
func WithJSONTitle(title string) JSONOption { return func(r *jsonRenderer) { r.title = title } }

// WithJSONColumns records the column count the layout was computed with, for
// documentation and round-trip rendering.
func WithJSONColumns(columns int) JSONOption { return func(r *jsonRenderer) { r.columns = columns } }

type jsonOutput struct {
	Title       string     `json:"title,omitempty"`
	Columns     int        `json:"columns,omitempty"`
	TotalHeight float64    `json:"total_height"`
	Tiles       []jsonTile `json:"tiles"`
}

type jsonTile struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. Items and
// positions are paired by index, the order the layout preserves. It does not
// modify its inputs and is safe to call concurrently.
func RenderJSON(items []masonry.Item, result masonry.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:       r.title,
		Columns:     r.columns,
		TotalHeight: result.TotalHeight,
		Tiles:       make([]jsonTile, 0, len(result.Positions)),
	}

	for i, pos := range result.Positions {
		tile := jsonTile{X: pos.X, Y: pos.Y, Width: pos.Width, Height: pos.Height}
		if i < len(items) {
			tile.ID = items[i].ID
		}
		out.Tiles = append(out.Tiles, tile)
	}

	return json.MarshalIndent(out, "", "  ")
}
