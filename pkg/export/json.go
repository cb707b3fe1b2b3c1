package export

import (
	"encoding/json"
	"os"

	"github.com/geky/wavestation/pkg/bubble"
)

// bubbleJSON is the wire shape of a single bubble in layoutJSON,
// independent of the in-memory Arena/index representation.
type bubbleJSON struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	R      int  `json:"r"`
	Parent *int `json:"parent,omitempty"`
}

// layoutJSON is the wire shape ExportJSON produces for a bubble.Layout.
type layoutJSON struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Bubbles []bubbleJSON `json:"bubbles"`
}

func toLayoutJSON(layout *bubble.Layout) layoutJSON {
	bubbles := layout.Arena.All()
	out := layoutJSON{Width: layout.Width, Height: layout.Height, Bubbles: make([]bubbleJSON, len(bubbles))}
	for i, b := range bubbles {
		bj := bubbleJSON{X: b.X, Y: b.Y, R: b.R}
		if b.HasParent() {
			p := b.Parent
			bj.Parent = &p
		}
		out.Bubbles[i] = bj
	}
	return out
}

// ExportJSON serializes layout's bubbles to indented JSON, for tooling
// that wants the raw layout rather than a rendered picture of it.
func ExportJSON(layout *bubble.Layout) ([]byte, error) {
	return json.MarshalIndent(toLayoutJSON(layout), "", "  ")
}

// ExportJSONCompact serializes layout to JSON without indentation.
func ExportJSONCompact(layout *bubble.Layout) ([]byte, error) {
	return json.Marshal(toLayoutJSON(layout))
}

// SaveJSONToFile exports layout to an indented JSON file.
func SaveJSONToFile(layout *bubble.Layout, path string) error {
	data, err := ExportJSON(layout)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
