package imghdr

import (
	"fmt"
	"io"
	"os"

	"imghdr/formats"
)

// MaxInputSize bounds how many bytes ParseReader and ParseFile will buffer.
const MaxInputSize = 64 << 20

// Parse reads pixel dimensions and resolution from an image held in memory
// without decoding pixel data.
//
// mimeType selects the parser: "image/png" or "image/jpeg". Any other value
// yields no result; the bytes are not sniffed. Malformed, truncated or
// unrecognized input also yields no result. Parse never panics and keeps no
// state, so it is safe to call concurrently.
//
// Example:
//
//	md, ok := imghdr.Parse(data, "image/png")
//	if !ok {
//		return // no metadata
//	}
//	fmt.Printf("Dimensions: %dx%d\n", md.Width, md.Height)
func Parse(data []byte, mimeType string) (Metadata, bool) {
	res, ok := formats.Extract(mimeType, data)
	if !ok {
		return Metadata{}, false
	}
	return Metadata{
		Width:  res.Width,
		Height: res.Height,
		DPIX:   res.DPIX,
		DPIY:   res.DPIY,
	}, true
}

// ParseReader buffers r and calls Parse. The error reports read failures and
// inputs larger than MaxInputSize; a readable but malformed image is reported
// through the boolean alone.
func ParseReader(r io.Reader, mimeType string) (Metadata, bool, error) {
	if r == nil {
		return Metadata{}, false, ErrInvalidSource
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return Metadata{}, false, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxInputSize {
		return Metadata{}, false, ErrTooLarge
	}

	md, ok := Parse(data, mimeType)
	return md, ok, nil
}

// ParseFile opens the file at path and parses it. When mimeType is empty the
// type is taken from the file extension.
func ParseFile(path, mimeType string) (Metadata, bool, error) {
	if mimeType == "" {
		mimeType = MIMEFromExtension(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Metadata{}, false, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file, mimeType)
}
