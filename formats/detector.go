package formats

import "bytes"

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Detect identifies the image format by examining the magic bytes.
// It returns the MIME type, or an empty string if the format is not one
// Extract understands.
func Detect(magicBytes []byte) string {
	// JPEG: FF D8 FF
	if len(magicBytes) >= 3 && magicBytes[0] == 0xFF && magicBytes[1] == 0xD8 && magicBytes[2] == 0xFF {
		return MIMEJPEG
	}

	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if bytes.HasPrefix(magicBytes, pngSignature) {
		return MIMEPNG
	}

	return ""
}
