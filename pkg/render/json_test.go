package render

import (
	"encoding/json"
	"testing"

	"github.com/mosaic-ui/mosaic/pkg/masonry"
)

func testLayout() ([]masonry.Item, masonry.Result) {
	items := []masonry.Item{
		{ID: "hero", Height: 240},
		{ID: "card", Height: 120},
	}
	result := masonry.Result{
		Positions: []masonry.Position{
			{X: 0, Y: 0, Width: 200, Height: 240},
			{X: 216, Y: 0, Width: 200, Height: 120},
		},
		TotalHeight: 240,
	}
	return items, result
}

func TestRenderJSON(t *testing.T) {
	items, result := testLayout()

	data, err := RenderJSON(items, result)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.TotalHeight != 240 {
		t.Errorf("TotalHeight = %v, want 240", out.TotalHeight)
	}
	if len(out.Tiles) != 2 {
		t.Fatalf("Tiles count = %d, want 2", len(out.Tiles))
	}
	if out.Tiles[0].ID != "hero" {
		t.Errorf("Tiles[0].ID = %q, want %q", out.Tiles[0].ID, "hero")
	}
	if out.Tiles[1].X != 216 {
		t.Errorf("Tiles[1].X = %v, want 216", out.Tiles[1].X)
	}
}

func TestRenderJSONWithOptions(t *testing.T) {
	items, result := testLayout()

	data, err := RenderJSON(items, result,
		WithJSONTitle("gallery"),
		WithJSONColumns(2),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Title != "gallery" {
		t.Errorf("Title = %q, want %q", out.Title, "gallery")
	}
	if out.Columns != 2 {
		t.Errorf("Columns = %d, want 2", out.Columns)
	}
}

func TestRenderJSONEmptyLayout(t *testing.T) {
	data, err := RenderJSON(nil, masonry.Result{Positions: []masonry.Position{}})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if len(out.Tiles) != 0 {
		t.Errorf("Tiles count = %d, want 0", len(out.Tiles))
	}
}
