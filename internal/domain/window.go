package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds represents a screen rectangle
type Bounds struct {
	X, Y, Width, Height int
}

// ParseBounds parses a "x,y,w,h" string into Bounds
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("invalid bounds %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Bounds{}, fmt.Errorf("invalid bounds %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return Bounds{}, fmt.Errorf("invalid bounds %q: width and height must be positive", s)
	}
	return Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// Intersection returns the overlapping area of two rectangles
func (b Bounds) Intersection(o Bounds) int {
	left := max(b.X, o.X)
	top := max(b.Y, o.Y)
	right := min(b.X+b.Width, o.X+o.Width)
	bottom := min(b.Y+b.Height, o.Y+o.Height)
	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// DockBottomRight returns the top-left corner for a window of the given size
// whose bottom-right corner sits margin pixels inside the work area's
// bottom-right corner
func DockBottomRight(workArea Bounds, width, height, margin int) (x, y int) {
	x = workArea.X + workArea.Width - width - margin
	y = workArea.Y + workArea.Height - height - margin
	return x, y
}

// MatchingWorkArea returns the work area that overlaps the window the most.
// The first area is the primary display and is used when nothing overlaps.
func MatchingWorkArea(areas []Bounds, window Bounds) (Bounds, bool) {
	if len(areas) == 0 {
		return Bounds{}, false
	}
	best := areas[0]
	bestArea := 0
	for _, area := range areas {
		if overlap := area.Intersection(window); overlap > bestArea {
			best = area
			bestArea = overlap
		}
	}
	return best, true
}

// WindowState is the persisted widget geometry
type WindowState struct {
	X            int  `json:"x" yaml:"x"`
	Y            int  `json:"y" yaml:"y"`
	Width        int  `json:"width" yaml:"width"`
	Height       int  `json:"height" yaml:"height"`
	IsMinimized  bool `json:"isMinimized" yaml:"isMinimized"`
	AlwaysOnTop  bool `json:"alwaysOnTop" yaml:"alwaysOnTop"`
	NormalWidth  int  `json:"normalWidth" yaml:"normalWidth"`
	NormalHeight int  `json:"normalHeight" yaml:"normalHeight"`
	NormalX      int  `json:"normalX" yaml:"normalX"`
	NormalY      int  `json:"normalY" yaml:"normalY"`
}

// DefaultWindowState returns the geometry used when nothing was persisted
func DefaultWindowState() WindowState {
	return WindowState{
		X:            100,
		Y:            100,
		Width:        300,
		Height:       200,
		IsMinimized:  false,
		AlwaysOnTop:  true,
		NormalWidth:  300,
		NormalHeight: 200,
		NormalX:      100,
		NormalY:      100,
	}
}

// Bounds returns the current window rectangle
func (s WindowState) Bounds() Bounds {
	return Bounds{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// PersistedWindowState mirrors WindowState with every field optional,
// so a partial record can be told apart from zero values
type PersistedWindowState struct {
	X            *int  `json:"x"`
	Y            *int  `json:"y"`
	Width        *int  `json:"width"`
	Height       *int  `json:"height"`
	IsMinimized  *bool `json:"isMinimized"`
	AlwaysOnTop  *bool `json:"alwaysOnTop"`
	NormalWidth  *int  `json:"normalWidth"`
	NormalHeight *int  `json:"normalHeight"`
	NormalX      *int  `json:"normalX"`
	NormalY      *int  `json:"normalY"`
}

// MergeWindowState overlays the fields present in saved onto base
func MergeWindowState(base WindowState, saved PersistedWindowState) WindowState {
	mergeInt(&base.X, saved.X)
	mergeInt(&base.Y, saved.Y)
	mergeInt(&base.Width, saved.Width)
	mergeInt(&base.Height, saved.Height)
	mergeBool(&base.IsMinimized, saved.IsMinimized)
	mergeBool(&base.AlwaysOnTop, saved.AlwaysOnTop)
	mergeInt(&base.NormalWidth, saved.NormalWidth)
	mergeInt(&base.NormalHeight, saved.NormalHeight)
	mergeInt(&base.NormalX, saved.NormalX)
	mergeInt(&base.NormalY, saved.NormalY)
	return base
}

func mergeInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func mergeBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
