package clipboard

// maxChunk caps a single INCR chunk even when the server accepts larger
// requests.
const maxChunk = 256 << 10

// chunkSize returns the largest property payload that fits in one
// ChangeProperty request for a server whose maximum request length is
// maxRequest 4-byte units. The ChangeProperty header takes 24 bytes.
func chunkSize(maxRequest uint16) int {
	n := int(maxRequest)*4 - 24
	if n > maxChunk {
		n = maxChunk
	}
	if n < 1024 {
		n = 1024
	}
	return n
}

// incrTransfer walks a payload through the INCR protocol: each time the
// requestor deletes the property, the next chunk is written, and a final
// empty chunk ends the transfer.
type incrTransfer struct {
	data   []byte
	offset int
	chunk  int
}

// next returns the chunk to write and whether it is the terminating empty
// chunk.
func (t *incrTransfer) next() ([]byte, bool) {
	if t.offset >= len(t.data) {
		return nil, true
	}
	end := min(t.offset+t.chunk, len(t.data))
	part := t.data[t.offset:end]
	t.offset = end
	return part, false
}
