package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/geky/wavestation/pkg/bubble"
)

// Options configures SVG export.
type Options struct {
	Margin       int    // Canvas margin in pixels
	Scale        int    // Pixels per layout unit
	RoomColor    string // Fill color for bubble circles
	HallwayColor string // Stroke color for hallway lines
	Title        string // Optional title drawn at the top of the canvas
}

// DefaultOptions returns sensible default export options.
func DefaultOptions() Options {
	return Options{
		Margin:       40,
		Scale:        12,
		RoomColor:    "#4299e1",
		HallwayColor: "#718096",
		Title:        "Station Bubble Layout",
	}
}

// SVG renders layout's parent-child hallways as lines and its bubbles
// as circles, in that order (edges drawn first so nodes sit on top,
// matching the teacher's draw-edges-then-nodes convention).
func SVG(layout *bubble.Layout, opts Options) ([]byte, error) {
	if layout == nil {
		return nil, fmt.Errorf("export: layout cannot be nil")
	}
	if opts.Scale <= 0 {
		opts.Scale = 12
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}

	width := layout.Width*opts.Scale + 2*opts.Margin
	height := layout.Height*opts.Scale + 2*opts.Margin + headerHeight(opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	yOffset := opts.Margin + headerHeight(opts)
	bubbles := layout.Arena.All()

	drawHallways(canvas, &layout.Arena, bubbles, opts, yOffset)
	drawRooms(canvas, bubbles, opts, yOffset)

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders layout to an SVG file at path.
func SaveToFile(layout *bubble.Layout, path string, opts Options) error {
	data, err := SVG(layout, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func headerHeight(opts Options) int {
	if opts.Title == "" {
		return 0
	}
	return 40
}

func screenX(b bubble.Bubble, opts Options) int {
	return opts.Margin + b.X*opts.Scale
}

func screenY(b bubble.Bubble, opts Options, yOffset int) int {
	return yOffset + b.Y*opts.Scale
}

func drawHallways(canvas *svg.SVG, arena *bubble.Arena, bubbles []bubble.Bubble, opts Options, yOffset int) {
	for _, b := range bubbles {
		if !b.HasParent() {
			continue
		}
		parent := arena.At(b.Parent)
		canvas.Line(
			screenX(b, opts), screenY(b, opts, yOffset),
			screenX(parent, opts), screenY(parent, opts, yOffset),
			fmt.Sprintf("stroke:%s;stroke-width:3;opacity:0.8", opts.HallwayColor),
		)
	}
}

func drawRooms(canvas *svg.SVG, bubbles []bubble.Bubble, opts Options, yOffset int) {
	for _, b := range bubbles {
		canvas.Circle(
			screenX(b, opts), screenY(b, opts, yOffset), b.R*opts.Scale,
			fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1;opacity:0.85", opts.RoomColor),
		)
	}
}
