package binpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Add("meta", []byte(`{"schema":1}`))
	w.Add("tagger", []byte("tagger-bytes"))
	w.Add("rules", []byte(""))

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	a, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	if got := a.Names(); !reflect.DeepEqual(got, []string{"meta", "rules", "tagger"}) {
		t.Errorf("Names = %v, want sorted [meta rules tagger]", got)
	}

	for name, want := range map[string][]byte{
		"meta":   []byte(`{"schema":1}`),
		"tagger": []byte("tagger-bytes"),
		"rules":  {},
	} {
		got, err := a.Section(name)
		if err != nil {
			t.Errorf("Section(%s): %v", name, err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Section(%s) = %q, want %q", name, got, want)
		}
	}
}

func TestWriterAddReplacesDuplicate(t *testing.T) {
	w := NewWriter()
	w.Add("s", []byte("old"))
	w.Add("s", []byte("new"))

	data, err := w.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	a, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := a.Section("s")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("Section(s) = %q, want %q", got, "new")
	}
}

func TestOpenMmapsFile(t *testing.T) {
	w := NewWriter()
	w.Add("payload", []byte("hello"))
	data, err := w.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "artifact.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, err := a.Section("payload")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("Section(payload) = %q, want hello", got)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestMissingSection(t *testing.T) {
	data, err := NewWriter().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	a, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Section("nope"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Section(nope) error = %v, want ErrMalformed", err)
	}
}

func TestFromBytesMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", []byte{1, 2, 3}},
		{"header length beyond payload", func() []byte {
			b := make([]byte, 8)
			binary.LittleEndian.PutUint64(b, 1000)
			return b
		}()},
		{"header not json", append(make([]byte, 8), 0)},
		{"section outside payload", func() []byte {
			header := []byte(`{"x":[0,99]}`)
			b := make([]byte, 8)
			binary.LittleEndian.PutUint64(b, uint64(len(header)))
			return append(b, header...)
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBytes(tt.data); !errors.Is(err, ErrMalformed) {
				t.Errorf("FromBytes error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Error("Open of missing file succeeded")
	}
}
