package bubble

import (
	"fmt"

	"github.com/geky/wavestation/pkg/rng"
)

// noParent marks the root bubble, which has no parent index.
const noParent = -1

// Bubble is one circular room in the layout: a center, a radius, and the
// index of its parent bubble within the owning Arena. Using an index
// instead of a pointer back-reference keeps the bubble graph acyclic at
// the Go level even though the graph itself is a tree with parent edges.
type Bubble struct {
	X, Y   int
	R      int
	Parent int
}

// HasParent reports whether b is not the root bubble.
func (b Bubble) HasParent() bool {
	return b.Parent != noParent
}

// Arena is an append-only collection of bubbles. Bubbles reference each
// other only by index into the same Arena, so an Arena and its indices
// travel together.
type Arena struct {
	bubbles []Bubble
}

// Len returns the number of bubbles in the arena.
func (a *Arena) Len() int {
	return len(a.bubbles)
}

// At returns the bubble at index i.
func (a *Arena) At(i int) Bubble {
	return a.bubbles[i]
}

// All returns every bubble in insertion order. The root is always index 0.
func (a *Arena) All() []Bubble {
	return a.bubbles
}

func (a *Arena) add(b Bubble) int {
	a.bubbles = append(a.bubbles, b)
	return len(a.bubbles) - 1
}

// Parent returns the parent bubble of the bubble at index i and reports
// whether one exists (false for the root).
func (a *Arena) Parent(i int) (Bubble, bool) {
	p := a.bubbles[i].Parent
	if p == noParent {
		return Bubble{}, false
	}
	return a.bubbles[p], true
}

// Config carries the tunable parameters of bubble growth. Every
// probability here feeds rng.Xorshift64.PoissonLike directly, so a
// larger value always means larger bubbles or longer hallways on
// average, never a qualitative change in behavior.
type Config struct {
	// BubbleP is the Poisson-like growth probability added to a new
	// bubble's radius on top of its minimum size.
	BubbleP float64 `yaml:"bubbleP"`

	// HallwayP is the Poisson-like growth probability added to the
	// minimum hallway clearance between a new bubble and its parent.
	HallwayP float64 `yaml:"hallwayP"`

	// Smallest is the minimum radius of any non-root bubble.
	Smallest int `yaml:"smallest"`

	// Clearance is the minimum gap enforced between any two bubbles,
	// and the minimum length of a connecting hallway.
	Clearance int `yaml:"clearance"`
}

// Validate reports whether cfg's fields describe a growable layout.
func (cfg Config) Validate() error {
	if cfg.BubbleP < 0 || cfg.BubbleP >= 1 {
		return fmt.Errorf("bubble: BubbleP must be in [0,1), got %f", cfg.BubbleP)
	}
	if cfg.HallwayP < 0 || cfg.HallwayP >= 1 {
		return fmt.Errorf("bubble: HallwayP must be in [0,1), got %f", cfg.HallwayP)
	}
	if cfg.Smallest < 1 {
		return fmt.Errorf("bubble: Smallest must be >= 1, got %d", cfg.Smallest)
	}
	if cfg.Clearance < 0 {
		return fmt.Errorf("bubble: Clearance must be >= 0, got %d", cfg.Clearance)
	}
	return nil
}

// Layout is the result of Generate: the bounding box the bubbles were
// shifted to fit within (origin at 0,0) and the arena itself.
type Layout struct {
	Width, Height int
	Arena         Arena
}

// maxAttemptsPerBubble bounds how many collision rejections Generate
// tolerates before giving up on growing a single new bubble. The
// original Rust implementation loops unconditionally; wavestation adds
// this guard so a pathological (size, clearance) combination fails
// loudly instead of spinning forever (SPEC_FULL.md §4.2).
const maxAttemptsPerBubble = 100000

// directions are the four axis-aligned growth directions a new bubble
// can be placed in, tried in this fixed order against prng.Range(0,4).
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// Generate grows a bubble layout from a single root bubble until the
// summed radii of all bubbles reach size, then shifts every bubble so
// the tightest bounding box over all bubbles starts at (0,0).
//
// Ported from original_source's gen_bubbles: prng draws happen in a
// fixed order (pick a parent, pick a direction, pick a size, pick a
// hallway length) so two calls with the same prng state and cfg always
// grow byte-identical layouts.
func Generate(prng *rng.Xorshift64, size int, cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("bubble: size must be >= 1, got %d", size)
	}

	var arena Arena
	root := Bubble{X: 0, Y: 0, R: 1 + prng.PoissonLike(cfg.BubbleP), Parent: noParent}
	arena.add(root)
	used := root.R

	for used < size {
		placed := false
		for attempt := 0; attempt < maxAttemptsPerBubble; attempt++ {
			parentIdx := prng.Range(0, arena.Len())
			parent := arena.At(parentIdx)

			dir := directions[prng.Range(0, 4)]
			r := cfg.Smallest + prng.PoissonLike(cfg.BubbleP)
			hallway := cfg.Clearance + prng.PoissonLike(cfg.HallwayP)

			x := parent.X + dir[0]*(parent.R+r+hallway)
			y := parent.Y + dir[1]*(parent.R+r+hallway)

			if collides(&arena, parentIdx, x, y, r, cfg.Clearance) {
				continue
			}

			arena.add(Bubble{X: x, Y: y, R: r, Parent: parentIdx})
			used += r
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf(
				"bubble: failed to place a new bubble after %d attempts (smallest=%d, clearance=%d too tight for target size %d)",
				maxAttemptsPerBubble, cfg.Smallest, cfg.Clearance, size,
			)
		}
	}

	width, height, minX, minY := bounds(&arena)
	for i := range arena.bubbles {
		arena.bubbles[i].X -= minX
		arena.bubbles[i].Y -= minY
	}

	return &Layout{Width: width, Height: height, Arena: arena}, nil
}

func collides(arena *Arena, parentIdx, x, y, r, clearance int) bool {
	for i, b := range arena.bubbles {
		if i == parentIdx {
			continue
		}
		if distSq(x, y, b.X, b.Y) <= sq(r+b.R+clearance) {
			return true
		}
	}
	return false
}

func sq(a int) float64 {
	return float64(a) * float64(a)
}

func distSq(ax, ay, bx, by int) float64 {
	dx := float64(bx - ax)
	dy := float64(by - ay)
	return dx*dx + dy*dy
}

// bounds returns the tightest bounding box covering every bubble's
// circle, matching original_source's lower/upper accumulation (which
// seeds the box at (0,0)-(1,1) before folding in every bubble).
func bounds(arena *Arena) (width, height, minX, minY int) {
	lowerX, lowerY := 0, 0
	upperX, upperY := 1, 1
	for _, b := range arena.bubbles {
		lowerX = min(lowerX, b.X-b.R)
		lowerY = min(lowerY, b.Y-b.R)
		upperX = max(upperX, b.X+b.R)
		upperY = max(upperY, b.Y+b.R)
	}
	return upperX + 1 - lowerX, upperY + 1 - lowerY, lowerX, lowerY
}
