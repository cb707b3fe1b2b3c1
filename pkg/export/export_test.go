package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/geky/wavestation/pkg/bubble"
	"github.com/geky/wavestation/pkg/rng"
)

func testLayout(t *testing.T) *bubble.Layout {
	t.Helper()
	layout, err := bubble.Generate(rng.New(1), 20, bubble.Config{BubbleP: 0.3, HallwayP: 0.2, Smallest: 2, Clearance: 1})
	if err != nil {
		t.Fatalf("bubble.Generate() error = %v", err)
	}
	return layout
}

func TestSVGWellFormed(t *testing.T) {
	layout := testLayout(t)
	data, err := SVG(layout, DefaultOptions())
	if err != nil {
		t.Fatalf("SVG() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Fatalf("SVG() output missing <svg>...</svg> wrapper:\n%s", s)
	}
	if !strings.Contains(s, "<circle") {
		t.Fatal("SVG() output has no room circles")
	}
}

func TestSVGNilLayout(t *testing.T) {
	if _, err := SVG(nil, DefaultOptions()); err == nil {
		t.Fatal("SVG(nil, ...) did not return an error")
	}
}

func TestExportJSONRoundTrips(t *testing.T) {
	layout := testLayout(t)
	data, err := ExportJSON(layout)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	var decoded layoutJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.Width != layout.Width || decoded.Height != layout.Height {
		t.Fatalf("decoded bounds %dx%d, want %dx%d", decoded.Width, decoded.Height, layout.Width, layout.Height)
	}
	if len(decoded.Bubbles) != layout.Arena.Len() {
		t.Fatalf("decoded %d bubbles, want %d", len(decoded.Bubbles), layout.Arena.Len())
	}
	if decoded.Bubbles[0].Parent != nil {
		t.Fatal("root bubble decoded with a non-nil parent")
	}
}

func TestExportJSONCompactIsSmaller(t *testing.T) {
	layout := testLayout(t)
	full, err := ExportJSON(layout)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	compact, err := ExportJSONCompact(layout)
	if err != nil {
		t.Fatalf("ExportJSONCompact() error = %v", err)
	}
	if len(compact) >= len(full) {
		t.Fatalf("compact JSON (%d bytes) not smaller than indented JSON (%d bytes)", len(compact), len(full))
	}
}
