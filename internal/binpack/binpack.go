// Package binpack reads and writes the binary artifact container used for
// tokenizer and rules payloads. The layout is an 8-byte little-endian
// header length, a JSON section table mapping names to [start, end) byte
// offsets within the payload, then the raw section bytes.
//
// Files are opened through a read-only memory mapping, so large artifacts
// never need a full upfront read; in-memory payloads are wrapped as-is.
package binpack

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/edsrzf/mmap-go"
)

// ErrMalformed marks a payload that is not a valid container.
var ErrMalformed = errors.New("binpack: malformed container")

const headerLenSize = 8

// maxHeaderLen guards against reading an absurd header length from a
// corrupt or hostile payload.
const maxHeaderLen = 64 << 20

// Archive is a read-only view over a container. It is not safe to use
// after Close when backed by a memory mapping.
type Archive struct {
	raw      []byte
	sections map[string][2]int
	names    []string
	mm       mmap.MMap
	file     *os.File
}

// Open memory-maps the container at path.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("binpack: open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("binpack: stat %s: %w", path, err)
	}
	if fi.Size() == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformed, path)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("binpack: mmap %s: %w", path, err)
	}

	a, err := FromBytes(mm)
	if err != nil {
		_ = mm.Unmap()
		_ = f.Close()
		return nil, err
	}
	a.mm = mm
	a.file = f
	return a, nil
}

// FromBytes parses a container held in memory. The archive aliases data;
// the caller must keep it alive while the archive is in use.
func FromBytes(data []byte) (*Archive, error) {
	if len(data) < headerLenSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a header", ErrMalformed, len(data))
	}

	headerLen := binary.LittleEndian.Uint64(data[:headerLenSize])
	if headerLen > maxHeaderLen || headerLenSize+headerLen > uint64(len(data)) {
		return nil, fmt.Errorf("%w: header length %d exceeds payload", ErrMalformed, headerLen)
	}

	var table map[string][2]int
	headerEnd := headerLenSize + int(headerLen)
	if err := json.Unmarshal(data[headerLenSize:headerEnd], &table); err != nil {
		return nil, fmt.Errorf("%w: decode section table: %v", ErrMalformed, err)
	}

	payload := data[headerEnd:]
	names := make([]string, 0, len(table))
	for name, span := range table {
		if span[0] < 0 || span[1] < span[0] || span[1] > len(payload) {
			return nil, fmt.Errorf("%w: section %q has offsets %v outside payload of %d bytes",
				ErrMalformed, name, span, len(payload))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return &Archive{raw: payload, sections: table, names: names}, nil
}

// Names returns the section names in sorted order.
func (a *Archive) Names() []string { return a.names }

// Section returns the raw bytes of the named section. The slice aliases
// the archive's backing memory.
func (a *Archive) Section(name string) ([]byte, error) {
	span, ok := a.sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing section %q", ErrMalformed, name)
	}
	return a.raw[span[0]:span[1]], nil
}

// Close releases the memory mapping, if any. Archives built with FromBytes
// have nothing to release.
func (a *Archive) Close() error {
	var err error
	if a.mm != nil {
		err = a.mm.Unmap()
		a.mm = nil
	}
	if a.file != nil {
		if cerr := a.file.Close(); err == nil {
			err = cerr
		}
		a.file = nil
	}
	a.raw = nil
	return err
}

// Writer builds a container section by section.
type Writer struct {
	names    []string
	payloads [][]byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Add appends a named section. Adding the same name twice keeps the last
// payload.
func (w *Writer) Add(name string, payload []byte) {
	for i, n := range w.names {
		if n == name {
			w.payloads[i] = payload
			return
		}
	}
	w.names = append(w.names, name)
	w.payloads = append(w.payloads, payload)
}

// Bytes encodes the container.
func (w *Writer) Bytes() ([]byte, error) {
	table := make(map[string][2]int, len(w.names))
	offset := 0
	for i, name := range w.names {
		table[name] = [2]int{offset, offset + len(w.payloads[i])}
		offset += len(w.payloads[i])
	}

	header, err := json.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("binpack: encode section table: %w", err)
	}

	out := make([]byte, 0, headerLenSize+len(header)+offset)
	var lenBuf [headerLenSize]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(header)))
	out = append(out, lenBuf[:]...)
	out = append(out, header...)
	for _, p := range w.payloads {
		out = append(out, p...)
	}
	return out, nil
}
