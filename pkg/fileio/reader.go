package fileio

import (
	"bufio"
	"io/fs"
	"strings"

	"github.com/matzehuels/structkit/pkg/errors"
)

// maxLineSize bounds a single line; longer lines fail the read.
const maxLineSize = 1 << 20

// ReadWholeFile returns the text of the named resource with its lines joined
// by "\n". Line terminators ("\n" or "\r\n") are normalized and a trailing
// terminator is dropped, so an empty file and a file holding only a newline
// both read as "".
func ReadWholeFile(fsys fs.FS, name string) (string, error) {
	lines, err := readLines(fsys, name)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func readLines(fsys fs.FS, name string) ([]string, error) {
	if err := errors.ValidateResourceName(name); err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "cannot open resource %q", name)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "cannot read resource %q", name)
	}
	return lines, nil
}
