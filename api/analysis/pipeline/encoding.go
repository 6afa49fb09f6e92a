package pipeline

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText decodes a raw statement blob trying UTF-8, then Latin-1, then
// CP-1252. The first decode that succeeds wins.
func DecodeText(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		if out, err := cm.NewDecoder().Bytes(b); err == nil {
			return string(out), nil
		}
	}
	return "", Errorf(KindEncoding, "no candidate encoding decoded the file")
}
