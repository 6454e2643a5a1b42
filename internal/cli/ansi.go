package cli

// ABOUTME: ANSI escape sequence stripping for `gopager cat --strip-ansi`.

import (
	"bufio"
	"errors"
	"io"
	"regexp"
)

// ansiPattern matches ANSI escape sequences: CSI (colors, cursor, erase),
// OSC (title setting), and character set selection.
var ansiPattern = regexp.MustCompile(`\x1b(?:\[[0-9;?]*[A-Za-z]|\][^\x07]*\x07|[()][AB012])`)

// stripANSI copies src to dst with ANSI escape sequences removed. Input is
// handled a line at a time so sequences never straddle a read boundary; a
// missing final newline stays missing.
func stripANSI(dst io.Writer, src io.Reader) error {
	r := bufio.NewReader(src)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := dst.Write(ansiPattern.ReplaceAll(line, nil)); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
