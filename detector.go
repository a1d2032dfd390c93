package imghdr

import (
	"path/filepath"
	"strings"

	"imghdr/formats"
)

// DetectMIME identifies the image format by examining the magic bytes and
// returns its MIME type, or an empty string if the format is not PNG or JPEG.
//
// Parse never calls DetectMIME; it trusts the declared type. Use this only when
// the caller has no declared type to offer.
func DetectMIME(magicBytes []byte) string {
	return formats.Detect(magicBytes)
}

// MIMEFromExtension maps a file name's extension to a MIME type Parse
// understands. It returns an empty string for any other extension.
func MIMEFromExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return MIMEPNG
	case ".jpg", ".jpeg", ".jpe", ".jfif":
		return MIMEJPEG
	}
	return ""
}
