package clipboard

import (
	"bytes"
	"testing"
)

func TestChunkSizeBounds(t *testing.T) {
	if got := chunkSize(65535); got != maxChunk {
		t.Fatalf("large server chunk = %d", got)
	}
	if got := chunkSize(4096); got != 4096*4-24 {
		t.Fatalf("chunk = %d", got)
	}
	if got := chunkSize(10); got != 1024 {
		t.Fatalf("tiny server chunk = %d", got)
	}
}

func TestIncrTransferChunks(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 1000)
	tr := &incrTransfer{data: data, chunk: 1024}
	var got []byte
	parts := 0
	for {
		part, last := tr.next()
		if last {
			if len(part) != 0 {
				t.Fatalf("terminating chunk has %d bytes", len(part))
			}
			break
		}
		if len(part) == 0 || len(part) > 1024 {
			t.Fatalf("chunk %d has %d bytes", parts, len(part))
		}
		got = append(got, part...)
		parts++
	}
	if parts != 3 || !bytes.Equal(got, data) {
		t.Fatalf("reassembled %d bytes in %d chunks", len(got), parts)
	}
}
