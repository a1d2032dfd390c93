// Package testimg builds minimal PNG and JPEG byte streams for tests.
//
// The streams carry valid structure (signature, chunk and segment framing)
// but dummy CRCs and no pixel data.
package testimg

import "encoding/binary"

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk is a PNG chunk without its length and CRC.
type Chunk struct {
	Type string
	Data []byte
}

// Bytes frames the chunk as [length][type][data][crc].
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, 12+len(c.Data))
	out = binary.BigEndian.AppendUint32(out, uint32(len(c.Data)))
	out = append(out, c.Type...)
	out = append(out, c.Data...)
	return append(out, 0x00, 0x00, 0x00, 0x00) // CRC (dummy)
}

// IHDR returns an 8-bit RGB image header chunk.
func IHDR(width, height uint32) Chunk {
	data := make([]byte, 0, 13)
	data = binary.BigEndian.AppendUint32(data, width)
	data = binary.BigEndian.AppendUint32(data, height)
	data = append(data,
		0x08, // Bit depth
		0x02, // Color type (RGB)
		0x00, // Compression
		0x00, // Filter
		0x00, // Interlace
	)
	return Chunk{Type: "IHDR", Data: data}
}

// PHYs returns a physical pixel dimensions chunk.
func PHYs(ppuX, ppuY uint32, unit byte) Chunk {
	data := make([]byte, 0, 9)
	data = binary.BigEndian.AppendUint32(data, ppuX)
	data = binary.BigEndian.AppendUint32(data, ppuY)
	return Chunk{Type: "pHYs", Data: append(data, unit)}
}

// PNGSignature returns a copy of the 8-byte PNG signature.
func PNGSignature() []byte {
	return append([]byte(nil), pngSignature...)
}

// PNG assembles signature, IHDR, the given chunks and IEND.
func PNG(width, height uint32, chunks ...Chunk) []byte {
	out := PNGSignature()
	out = append(out, IHDR(width, height).Bytes()...)
	for _, c := range chunks {
		out = append(out, c.Bytes()...)
	}
	return append(out, Chunk{Type: "IEND"}.Bytes()...)
}

// Segment frames a JPEG marker segment as [0xFF][marker][length][payload].
func Segment(marker byte, payload []byte) []byte {
	out := []byte{0xFF, marker}
	out = binary.BigEndian.AppendUint16(out, uint16(len(payload)+2))
	return append(out, payload...)
}

// JFIF returns an APP0 segment with the given density units and values.
func JFIF(units byte, xDensity, yDensity uint16) []byte {
	payload := []byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, units}
	payload = binary.BigEndian.AppendUint16(payload, xDensity)
	payload = binary.BigEndian.AppendUint16(payload, yDensity)
	payload = append(payload, 0x00, 0x00) // no thumbnail
	return Segment(0xE0, payload)
}

// SOF returns a three-component frame header segment for marker (0xC0 for baseline).
func SOF(marker byte, height, width uint16) []byte {
	payload := []byte{0x08} // Precision
	payload = binary.BigEndian.AppendUint16(payload, height)
	payload = binary.BigEndian.AppendUint16(payload, width)
	payload = append(payload,
		0x03,             // Components
		0x01, 0x22, 0x00, // Y
		0x02, 0x11, 0x01, // Cb
		0x03, 0x11, 0x01, // Cr
	)
	return Segment(marker, payload)
}

// JPEG assembles SOI, the given byte runs and EOI.
func JPEG(parts ...[]byte) []byte {
	out := []byte{0xFF, 0xD8}
	for _, p := range parts {
		out = append(out, p...)
	}
	return append(out, 0xFF, 0xD9)
}
