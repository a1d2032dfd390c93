package formats

import (
	"bytes"
	"encoding/binary"
)

// JPEG marker codes, the byte following 0xFF.
const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerTEM  = 0x01
	markerRST0 = 0xD0
	markerRST7 = 0xD7
	markerAPP0 = 0xE0
)

const (
	cmPerInch = 2.54

	// JFIF density units.
	jfifUnitInch       = 1
	jfifUnitCentimeter = 2

	// minimum APP0 segment length (including the length field) holding a JFIF density record
	jfifMinSegment = 14
	// minimum SOF payload: precision, height, width, component count, first component id
	sofMinPayload = 7
)

var jfifTag = []byte("JFIF\x00")

// isSOF reports whether marker starts a frame whose header carries dimensions.
// C4 (DHT), C8 (JPG) and CC (DAC) share the range but are not frame headers.
func isSOF(marker byte) bool {
	switch marker {
	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7, 0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	}
	return false
}

// ExtractJPEG reads width, height and resolution from a JPEG file held in memory.
//
// It walks marker segments from the start of the file until the first frame
// header. Resolution comes from an APP0 JFIF segment seen before that. The walk
// stops at SOS or EOI, and at any segment that would run past the end of data.
func ExtractJPEG(data []byte) (Result, bool) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI {
		return Result{}, false
	}

	var res Result
	off := 2

	// Read through JPEG segments
	for off < len(data) {
		if data[off] != 0xFF {
			break
		}

		// Skip fill bytes (0xFF)
		for off < len(data) && data[off] == 0xFF {
			off++
		}
		if off >= len(data) {
			break
		}
		marker := data[off]
		off++

		if marker == markerEOI || marker == markerSOS {
			break
		}

		// TEM and restart markers have no length
		if marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7) {
			continue
		}

		if len(data)-off < 2 {
			break
		}
		length := int(binary.BigEndian.Uint16(data[off : off+2]))
		if length < 2 || length > len(data)-off {
			break
		}
		payload := data[off+2 : off+length]

		switch {
		case marker == markerAPP0:
			if length >= jfifMinSegment && bytes.HasPrefix(payload, jfifTag) {
				units := payload[7]
				x := float64(binary.BigEndian.Uint16(payload[8:10]))
				y := float64(binary.BigEndian.Uint16(payload[10:12]))
				switch units {
				case jfifUnitInch:
					res.setDPI(x, y)
				case jfifUnitCentimeter:
					res.setDPI(x*cmPerInch, y*cmPerInch)
				}
			}

		case isSOF(marker):
			if len(payload) >= sofMinPayload {
				// payload[0] is sample precision
				res.Height = int(binary.BigEndian.Uint16(payload[1:3]))
				res.Width = int(binary.BigEndian.Uint16(payload[3:5]))
				if res.valid() {
					return res, true
				}
			}
		}

		off += length
	}

	if !res.valid() {
		return Result{}, false
	}
	return res, true
}
