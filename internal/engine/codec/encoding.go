package codec

import "strings"

// Encoding identifies the byte-level encoding of a file.
type Encoding uint8

const (
	// UTF8 is UTF-8 without a byte order mark. It is the default for new documents.
	UTF8 Encoding = iota

	// UTF16LE is UTF-16 little endian, written with an FF FE byte order mark.
	UTF16LE

	// UTF16BE is UTF-16 big endian, written with an FE FF byte order mark.
	UTF16BE

	// Latin1 is ISO-8859-1, the single-byte "ANSI" fallback.
	Latin1
)

// String returns the display tag of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16 LE"
	case UTF16BE:
		return "UTF-16 BE"
	case Latin1:
		return "Latin1"
	default:
		return "UTF-8"
	}
}

// ParseEncoding maps a display tag back to an Encoding.
// "ANSI" is accepted as an alias of Latin1. Unknown tags map to UTF8.
func ParseEncoding(tag string) Encoding {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "UTF-16 LE", "UTF-16LE", "UTF16LE":
		return UTF16LE
	case "UTF-16 BE", "UTF-16BE", "UTF16BE":
		return UTF16BE
	case "LATIN1", "LATIN-1", "ISO-8859-1", "ANSI":
		return Latin1
	default:
		return UTF8
	}
}
