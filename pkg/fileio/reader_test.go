package fileio

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/matzehuels/structkit/pkg/errors"
)

func TestReadWholeFile(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.txt":    {Data: []byte("one\ntwo\nthree")},
		"trailing.txt": {Data: []byte("one\ntwo\n")},
		"crlf.txt":     {Data: []byte("one\r\ntwo\r\n")},
		"blank.txt":    {Data: []byte("one\n\ntwo")},
		"empty.txt":    {Data: nil},
		"nl.txt":       {Data: []byte("\n")},
	}

	tests := []struct {
		name string
		file string
		want string
	}{
		{"plain", "plain.txt", "one\ntwo\nthree"},
		{"trailing newline dropped", "trailing.txt", "one\ntwo"},
		{"crlf normalized", "crlf.txt", "one\ntwo"},
		{"blank line kept", "blank.txt", "one\n\ntwo"},
		{"empty", "empty.txt", ""},
		{"single newline", "nl.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadWholeFile(fsys, tt.file)
			if err != nil {
				t.Fatalf("ReadWholeFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadWholeFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadWholeFile_DirFS(t *testing.T) {
	got, err := ReadWholeFile(os.DirFS("testdata"), "sample.txt")
	if err != nil {
		t.Fatalf("ReadWholeFile() error = %v", err)
	}
	want := "Hello, world!\nThe quick brown fox\njumps over the lazy dog."
	if got != want {
		t.Errorf("ReadWholeFile() = %q, want %q", got, want)
	}
}

func TestReadWholeFile_Missing(t *testing.T) {
	_, err := ReadWholeFile(fstest.MapFS{}, "absent.txt")
	if !errors.Is(err, errors.ErrCodeResourceAccess) {
		t.Fatalf("error = %v, want %v", err, errors.ErrCodeResourceAccess)
	}
	var e *errors.Error
	if !asError(err, &e) || e.Cause == nil {
		t.Error("RESOURCE_ACCESS error should preserve the cause")
	}
}

func TestReadWholeFile_InvalidName(t *testing.T) {
	for _, name := range []string{"", "../secret", "/etc/passwd"} {
		if _, err := ReadWholeFile(fstest.MapFS{}, name); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("ReadWholeFile(%q) error = %v, want %v", name, err, errors.ErrCodeInvalidArgument)
		}
	}
}
