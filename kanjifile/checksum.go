/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjifile

import (
	"encoding/base64"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// Checksum returns a content digest of the dictionary file, usable to tell
// apart KANJIDIC releases and to key caches of parsed dictionaries.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return "xxh3:" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}
