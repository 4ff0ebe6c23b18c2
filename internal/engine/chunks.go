package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// metadataChunks are the chunk types removed by -strip all. Other ancillary
// chunks describe how pixels are rendered and are kept.
var metadataChunks = map[string]bool{
	"tEXt": true,
	"zTXt": true,
	"iTXt": true,
	"tIME": true,
	"eXIf": true,
}

// chunk locates one chunk, including its length, type and CRC fields,
// inside a PNG stream.
type chunk struct {
	typ        string
	start, end int
}

func (c chunk) ancillary() bool {
	return c.typ[0]&0x20 != 0
}

// readChunks walks the chunk structure of a PNG stream up to IEND.
func readChunks(data []byte) ([]chunk, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, ErrNotPNG
	}

	var chunks []chunk
	pos := len(pngSignature)
	for pos < len(data) {
		if len(data)-pos < 12 {
			return nil, fmt.Errorf("%w: truncated chunk at offset %d", ErrMalformed, pos)
		}
		length := binary.BigEndian.Uint32(data[pos:])
		if length > 1<<31-1 || uint64(length) > uint64(len(data)-pos-12) {
			return nil, fmt.Errorf("%w: chunk length %d at offset %d exceeds the stream", ErrMalformed, length, pos)
		}
		c := chunk{
			typ:   string(data[pos+4 : pos+8]),
			start: pos,
			end:   pos + 12 + int(length),
		}
		chunks = append(chunks, c)
		pos = c.end
		if c.typ == "IEND" {
			break
		}
	}

	if len(chunks) == 0 || chunks[0].typ != "IHDR" || chunks[0].end-chunks[0].start != 12+13 {
		return nil, fmt.Errorf("%w: missing IHDR", ErrMalformed)
	}
	if chunks[len(chunks)-1].typ != "IEND" {
		return nil, fmt.Errorf("%w: missing IEND", ErrMalformed)
	}
	return chunks, nil
}

// interlaced reports the interlace method recorded in IHDR.
func interlaced(data []byte, chunks []chunk) bool {
	ihdr := chunks[0]
	return data[ihdr.start+8+12] != 0
}

// stripMetadata rebuilds the stream without metadata chunks. Anything after
// IEND is dropped as well.
func stripMetadata(data []byte, chunks []chunk) []byte {
	out := make([]byte, 0, len(data))
	out = append(out, pngSignature...)
	for _, c := range chunks {
		if metadataChunks[c.typ] {
			continue
		}
		out = append(out, data[c.start:c.end]...)
	}
	return out
}

// blockingChunk returns the first ancillary chunk type the standard encoder
// would not reproduce, or "" when re-encoding loses nothing. Transparency is
// decoded into the pixels and written back by the encoder.
func blockingChunk(chunks []chunk) string {
	for _, c := range chunks {
		if c.ancillary() && c.typ != "tRNS" {
			return c.typ
		}
	}
	return ""
}
