package formats

// Result captures the dimensions and resolution read from an image header.
type Result struct {
	Width  int
	Height int

	// DPIX and DPIY are nil when the header carries no usable resolution.
	// They are always set or cleared together.
	DPIX *float64
	DPIY *float64
}

// valid reports whether the result holds usable dimensions.
func (r Result) valid() bool {
	return r.Width > 0 && r.Height > 0
}

// setDPI records a resolution pair. Non-positive values leave both fields nil.
func (r *Result) setDPI(x, y float64) {
	if x <= 0 || y <= 0 {
		r.DPIX, r.DPIY = nil, nil
		return
	}
	r.DPIX, r.DPIY = &x, &y
}
