// Package validate checks image header metadata against release artwork rules.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"imghdr"
)

var (
	// ErrConstraint is matched by every *Error returned from Check.
	ErrConstraint = errors.New("validate: constraint violated")

	// ErrNoMetadata is returned by Image when no dimensions could be read.
	ErrNoMetadata = errors.New("validate: no image metadata")
)

// Constraints describes acceptable artwork. Zero values disable a check.
type Constraints struct {
	MinWidth      int     `yaml:"min_width" json:"minWidth,omitempty"`
	MinHeight     int     `yaml:"min_height" json:"minHeight,omitempty"`
	MaxWidth      int     `yaml:"max_width" json:"maxWidth,omitempty"`
	MaxHeight     int     `yaml:"max_height" json:"maxHeight,omitempty"`
	RequireSquare bool    `yaml:"require_square" json:"requireSquare,omitempty"`
	MinDPI        float64 `yaml:"min_dpi" json:"minDPI,omitempty"`
}

// DefaultArtwork returns the constraints applied to release cover art.
func DefaultArtwork() Constraints {
	return Constraints{
		MinWidth:      1400,
		MinHeight:     1400,
		MaxWidth:      6000,
		MaxHeight:     6000,
		RequireSquare: true,
	}
}

// Violation is a single failed check.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Reason
}

// Error lists every violation found by Check.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "validate: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrConstraint) match.
func (e *Error) Is(target error) bool {
	return target == ErrConstraint
}

// Check reports every constraint md fails. Resolution is only checked when
// the file encodes one.
func (c Constraints) Check(md imghdr.Metadata) error {
	var vs []Violation
	add := func(field, format string, args ...any) {
		vs = append(vs, Violation{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.MinWidth > 0 && md.Width < c.MinWidth {
		add("width", "%d px is below the minimum of %d px", md.Width, c.MinWidth)
	}
	if c.MinHeight > 0 && md.Height < c.MinHeight {
		add("height", "%d px is below the minimum of %d px", md.Height, c.MinHeight)
	}
	if c.MaxWidth > 0 && md.Width > c.MaxWidth {
		add("width", "%d px exceeds the maximum of %d px", md.Width, c.MaxWidth)
	}
	if c.MaxHeight > 0 && md.Height > c.MaxHeight {
		add("height", "%d px exceeds the maximum of %d px", md.Height, c.MaxHeight)
	}
	if c.RequireSquare && md.Width != md.Height {
		add("aspect", "%dx%d is not square", md.Width, md.Height)
	}
	if c.MinDPI > 0 && md.HasDPI() {
		if dpi := math.Min(*md.DPIX, *md.DPIY); dpi < c.MinDPI {
			add("dpi", "%.2f is below the minimum of %.2f", dpi, c.MinDPI)
		}
	}

	if len(vs) == 0 {
		return nil
	}
	return &Error{Violations: vs}
}

// Image parses data as mimeType and checks the result against c.
func Image(data []byte, mimeType string, c Constraints) (imghdr.Metadata, error) {
	md, ok := imghdr.Parse(data, mimeType)
	if !ok {
		return imghdr.Metadata{}, fmt.Errorf("%w (%s)", ErrNoMetadata, mimeType)
	}
	return md, c.Check(md)
}
