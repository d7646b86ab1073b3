/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package kanjifile reads KANJIDIC source files from disk and hands the
// decoded text lines to the parser. The distributed file is EUC-JP encoded;
// decoding happens here so that the parser only ever sees decoded text.
package kanjifile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Encoding selects the on-disk character encoding of a dictionary file.
type Encoding string

const (
	// EncodingEUCJP is the encoding of the distributed KANJIDIC file and
	// the default.
	EncodingEUCJP Encoding = "euc-jp"

	// EncodingUTF8 covers pre-converted copies of the file.
	EncodingUTF8 Encoding = "utf-8"
)

// maxLineSize bounds a single dictionary line; real lines stay well under it.
const maxLineSize = 1024 * 1024

// ReadLines reads a dictionary file and returns its decoded text lines.
func ReadLines(path string, enc Encoding) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary file: %w", err)
	}
	defer f.Close()

	lines, err := DecodeLines(f, enc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// DecodeLines decodes a dictionary stream in the given encoding and splits
// it into lines. An empty Encoding means EncodingEUCJP.
func DecodeLines(r io.Reader, enc Encoding) ([]string, error) {
	var src io.Reader
	switch enc {
	case EncodingEUCJP, "":
		src = transform.NewReader(r, japanese.EUCJP.NewDecoder())
	case EncodingUTF8:
		src = r
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}

	var lines []string
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decode dictionary stream: %w", err)
	}
	return lines, nil
}
