// Package imagesize probes remote card images for their pixel dimensions.
package imagesize

// Display widths for card images.
const (
	LandscapeWidth = 200
	PortraitWidth  = 140
)

// Size is the pixel size of an image. The zero Size means unknown.
type Size struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Known reports whether both dimensions are positive.
func (s Size) Known() bool { return s.Width > 0 && s.Height > 0 }

// DisplayWidth returns the rendering width: LandscapeWidth when the image is
// at least as wide as it is tall, PortraitWidth otherwise, 0 when unknown.
func (s Size) DisplayWidth() int {
	switch {
	case !s.Known():
		return 0
	case s.Width >= s.Height:
		return LandscapeWidth
	default:
		return PortraitWidth
	}
}
