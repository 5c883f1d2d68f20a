package dictionary

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encodings accepted by WithEncoding. Word lists are UTF-8 by default; the
// single byte code pages cover older dictionary dumps.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// decoder wraps r so that it yields UTF-8 for the named encoding.
func decoder(r io.Reader, name string) (io.Reader, error) {
	switch normalizeEncoding(name) {
	case EncodingUTF8:
		return r, nil
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("unsupported dictionary encoding %q", name)
	}
}

// normalizeEncoding maps common spellings onto the canonical names.
func normalizeEncoding(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return EncodingUTF8
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1
	case "windows-1252", "cp1252":
		return EncodingWindows1252
	default:
		return name
	}
}

// ValidEncoding reports whether name is accepted by WithEncoding.
func ValidEncoding(name string) bool {
	switch normalizeEncoding(name) {
	case EncodingUTF8, EncodingLatin1, EncodingWindows1252:
		return true
	}
	return false
}
