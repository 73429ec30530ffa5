package memo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/matchgo/codec"
)

// Snapshot format: a magic line, a plain-JSON header line naming the codec
// and compression, then the compressed codec-encoded entry list. The header
// is always standard JSON so a file can be opened without knowing its codec
// up front.

const snapshotMagic = "matchgo-memo v1"

// Compression selects the snapshot payload compression.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// SaveOptions configure Save.
type SaveOptions struct {
	// Codec encodes the entry list. Defaults to codec.Default.
	Codec codec.Codec
	// Compression compresses the encoded payload. Defaults to CompressionZstd.
	Compression Compression
}

type snapshotHeader struct {
	Codec       string `json:"codec"`
	Compression string `json:"compression"`
	Entries     int    `json:"entries"`
}

type snapshotEntry struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Dist int    `json:"dist"`
}

// Save writes all cached entries to w so a later Load can warm a fresh memo
// without recomputation.
func (m *EditMemo) Save(w io.Writer, optFns ...func(*SaveOptions)) error {
	opts := SaveOptions{
		Codec:       codec.Default,
		Compression: CompressionZstd,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	m.mu.Lock()
	entries := make([]snapshotEntry, 0, m.lru.Len())
	for el := m.lru.Back(); el != nil; el = el.Prev() {
		e := el.Value.(*memoEntry)
		entries = append(entries, snapshotEntry{A: e.key.A, B: e.key.B, Dist: e.dist})
	}
	m.mu.Unlock()

	header, err := json.Marshal(snapshotHeader{
		Codec:       opts.Codec.Name(),
		Compression: string(opts.Compression),
		Entries:     len(entries),
	})
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", snapshotMagic, header); err != nil {
		return err
	}

	payload, err := opts.Codec.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return writeCompressed(w, payload, opts.Compression)
}

// Load reads a snapshot written by Save and returns a memo warmed with its
// entries. Options apply to the new memo; a max-entries cap below the
// snapshot size keeps only the most recently saved entries.
func Load(r io.Reader, optFns ...Option) (*EditMemo, error) {
	br := bufio.NewReader(r)

	magic, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if magic != snapshotMagic+"\n" {
		return nil, fmt.Errorf("not a memo snapshot: %q", magic)
	}

	headerLine, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var header snapshotHeader
	if err := json.Unmarshal([]byte(headerLine), &header); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	c, ok := codec.ByName(header.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", header.Codec)
	}
	payload, err := readCompressed(br, Compression(header.Compression))
	if err != nil {
		return nil, err
	}

	var entries []snapshotEntry
	if err := c.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	if len(entries) != header.Entries {
		return nil, fmt.Errorf("snapshot entry count mismatch: header %d, payload %d", header.Entries, len(entries))
	}

	m := New(optFns...)
	m.mu.Lock()
	for _, e := range entries {
		m.store(pairKey{A: e.A, B: e.B}, e.Dist)
	}
	m.mu.Unlock()
	return m, nil
}

func writeCompressed(w io.Writer, payload []byte, compression Compression) error {
	switch compression {
	case CompressionNone, "":
		_, err := w.Write(payload)
		return err
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		if _, err := lw.Write(payload); err != nil {
			lw.Close()
			return err
		}
		return lw.Close()
	default:
		return fmt.Errorf("unknown compression %q", compression)
	}
}

func readCompressed(r io.Reader, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone, "":
		return io.ReadAll(r)
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(r))
	default:
		return nil, fmt.Errorf("unknown compression %q", compression)
	}
}
