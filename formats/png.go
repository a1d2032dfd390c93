package formats

import (
	"bytes"
	"encoding/binary"
)

const (
	// pngHeaderSize covers the signature plus the IHDR length, type, width and height.
	pngHeaderSize = 24

	metersPerInch = 0.0254

	// pHYs unit specifier for pixels per meter.
	pngUnitMeter = 1
)

var (
	chunkPHYs = []byte("pHYs")
	chunkIEND = []byte("IEND")
)

// ExtractPNG reads width, height and resolution from a PNG file held in memory.
//
// Width and height come from the IHDR chunk, whose position is fixed right
// after the signature. Resolution is taken from the first pHYs chunk when its
// unit is meters. A chunk whose declared length runs past the end of data
// ends the walk; whatever was already read is returned.
func ExtractPNG(data []byte) (Result, bool) {
	if len(data) < pngHeaderSize {
		return Result{}, false
	}

	// Verify PNG signature
	if !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return Result{}, false
	}

	res := Result{
		Width:  int(binary.BigEndian.Uint32(data[16:20])),
		Height: int(binary.BigEndian.Uint32(data[20:24])),
	}

	// Read chunks: [length][type][data][crc]
	off := len(pngSignature)
	for len(data)-off >= 8 {
		length := uint64(binary.BigEndian.Uint32(data[off : off+4]))
		chunkType := data[off+4 : off+8]
		start := off + 8
		if length > uint64(len(data)-start) {
			break
		}
		chunk := data[start : start+int(length)]

		if bytes.Equal(chunkType, chunkPHYs) {
			if len(chunk) >= 9 {
				ppuX := binary.BigEndian.Uint32(chunk[0:4])
				ppuY := binary.BigEndian.Uint32(chunk[4:8])
				if chunk[8] == pngUnitMeter {
					res.setDPI(float64(ppuX)*metersPerInch, float64(ppuY)*metersPerInch)
				}
			}
			break
		}

		if bytes.Equal(chunkType, chunkIEND) {
			break
		}

		// Skip data and CRC
		off = start + int(length) + 4
	}

	if !res.valid() {
		return Result{}, false
	}
	return res, true
}
