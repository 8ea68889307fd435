package render

import (
	"bytes"
	"fmt"

	"github.com/mosaic-ui/mosaic/pkg/masonry"
)

const tileInteractionCSS = `
    .tile { transition: opacity 0.15s ease, stroke-width 0.15s ease; }
    .tile:hover { opacity: 0.85; stroke-width: 3; }
    .tile-label { pointer-events: none; }`

// defaultPalette cycles across tiles so neighbouring columns stay
// distinguishable.
var defaultPalette = []string{"#4c6ef5", "#15aabf", "#40c057", "#fab005", "#fa5252", "#7950f2"}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	palette    []string
	showLabels bool
	padding    float64
}

// WithTitle adds a document title element to the SVG.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithPalette overrides the tile fill colors.
func WithPalette(colors []string) SVGOption {
	return func(r *svgRenderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// WithLabels draws each item id centered on its tile.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = true } }

// WithPadding adds whitespace around the grid.
func WithPadding(p float64) SVGOption {
	return func(r *svgRenderer) {
		if p >= 0 {
			r.padding = p
		}
	}
}

// RenderSVG draws the packed grid. Items and positions are paired by index,
// the order the layout preserves.
func RenderSVG(items []masonry.Item, result masonry.Result, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	frameW := frameWidth(result) + 2*r.padding
	frameH := result.TotalHeight + 2*r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeText(r.title))
	}
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", tileInteractionCSS)

	for i, pos := range result.Positions {
		id := ""
		if i < len(items) {
			id = items[i].ID
		}
		r.renderTile(&buf, id, i, pos)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{palette: defaultPalette}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderTile(buf *bytes.Buffer, id string, idx int, pos masonry.Position) {
	fill := r.palette[idx%len(r.palette)]
	fmt.Fprintf(buf, `  <rect class="tile" id="tile-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="4" fill="%s" stroke="#1a1b1e" stroke-width="1"/>`+"\n",
		escapeText(id), pos.X+r.padding, pos.Y+r.padding, pos.Width, pos.Height, fill)

	if r.showLabels && id != "" {
		fmt.Fprintf(buf, `  <text class="tile-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="12" fill="#ffffff">%s</text>`+"\n",
			pos.X+r.padding+pos.Width/2, pos.Y+r.padding+pos.Height/2, escapeText(id))
	}
}

// frameWidth is the rightmost tile edge, which matches the container width
// whenever the layout filled every column.
func frameWidth(result masonry.Result) float64 {
	var w float64
	for _, pos := range result.Positions {
		if right := pos.X + pos.Width; right > w {
			w = right
		}
	}
	return w
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
