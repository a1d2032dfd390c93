package imghdr

import "imghdr/formats"

// MIME types Parse understands.
const (
	MIMEPNG  = formats.MIMEPNG
	MIMEJPEG = formats.MIMEJPEG
)

// Metadata holds the dimensions and resolution read from an image header.
type Metadata struct {
	// Width and Height are the image dimensions in pixels. Both are positive
	// whenever Parse reports a result.
	Width  int `json:"width"`
	Height int `json:"height"`

	// DPIX and DPIY are the horizontal and vertical resolution in dots per inch.
	// They are nil when the file does not encode a resolution, and are always
	// set or cleared together.
	DPIX *float64 `json:"dpiX"`
	DPIY *float64 `json:"dpiY"`
}

// HasDPI reports whether the metadata carries a resolution.
func (md Metadata) HasDPI() bool {
	return md.DPIX != nil && md.DPIY != nil
}
