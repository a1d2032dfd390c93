package formats

// MIME types accepted by Extract.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
)

// Extract dispatches to the appropriate format parser based on the declared
// MIME type. The bytes are never inspected to guess the format; any MIME type
// other than PNG or JPEG yields no result.
func Extract(mimeType string, data []byte) (Result, bool) {
	switch mimeType {
	case MIMEPNG:
		return ExtractPNG(data)
	case MIMEJPEG:
		return ExtractJPEG(data)
	default:
		return Result{}, false
	}
}
