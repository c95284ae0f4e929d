package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when a byte order mark promises UTF-16 but
// the remaining bytes are not well-formed UTF-16.
var ErrInvalidEncoding = errors.New("invalid encoding")

// Byte order marks.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// latin1Replacement is written for characters that ISO-8859-1 cannot represent.
const latin1Replacement = '?'

// Decode detects the encoding of data and returns the decoded text.
// It fails only for malformed UTF-16; UTF-8 and Latin-1 input always decodes.
func Decode(data []byte) (string, Encoding, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		text, err := decodeUTF16(data[len(bomUTF16LE):], UTF16LE)
		if err != nil {
			return "", UTF16LE, err
		}
		return text, UTF16LE, nil

	case bytes.HasPrefix(data, bomUTF16BE):
		text, err := decodeUTF16(data[len(bomUTF16BE):], UTF16BE)
		if err != nil {
			return "", UTF16BE, err
		}
		return text, UTF16BE, nil

	case bytes.HasPrefix(data, bomUTF8):
		return decodeUTF8Lossy(data[len(bomUTF8):]), UTF8, nil
	}

	if utf8.Valid(data) {
		return string(data), UTF8, nil
	}
	return decodeLatin1(data), Latin1, nil
}

// Encode converts text to bytes in the given encoding.
// UTF-16 output starts with the matching byte order mark; UTF-8 output never does.
func Encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF16LE:
		return encodeUTF16(text, bomUTF16LE, unicode.LittleEndian)
	case UTF16BE:
		return encodeUTF16(text, bomUTF16BE, unicode.BigEndian)
	case Latin1:
		return encodeLatin1(text), nil
	default:
		return []byte(text), nil
	}
}

// decodeUTF16 validates payload as UTF-16 in the byte order of enc and decodes it.
func decodeUTF16(payload []byte, enc Encoding) (string, error) {
	if err := validateUTF16(payload, enc); err != nil {
		return "", err
	}

	endian := unicode.LittleEndian
	if enc == UTF16BE {
		endian = unicode.BigEndian
	}
	out, err := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, enc, err)
	}
	return string(out), nil
}

// validateUTF16 rejects odd-length input and unpaired surrogates.
// The x/text decoder would silently substitute U+FFFD for both.
func validateUTF16(payload []byte, enc Encoding) error {
	if len(payload)%2 != 0 {
		return fmt.Errorf("%w: %s: odd number of bytes", ErrInvalidEncoding, enc)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if enc == UTF16BE {
		order = binary.BigEndian
	}

	for i := 0; i < len(payload); i += 2 {
		unit := rune(order.Uint16(payload[i:]))
		if !utf16.IsSurrogate(unit) {
			continue
		}
		if unit >= 0xDC00 {
			return fmt.Errorf("%w: %s: unpaired low surrogate at byte %d", ErrInvalidEncoding, enc, i)
		}
		if i+2 >= len(payload) {
			return fmt.Errorf("%w: %s: unpaired high surrogate at byte %d", ErrInvalidEncoding, enc, i)
		}
		next := rune(order.Uint16(payload[i+2:]))
		if next < 0xDC00 || next > 0xDFFF {
			return fmt.Errorf("%w: %s: unpaired high surrogate at byte %d", ErrInvalidEncoding, enc, i)
		}
		i += 2
	}
	return nil
}

// decodeUTF8Lossy decodes payload as UTF-8, replacing invalid sequences with U+FFFD.
func decodeUTF8Lossy(payload []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(payload)
	if err != nil {
		return strings.ToValidUTF8(string(payload), string(utf8.RuneError))
	}
	return string(out)
}

// decodeLatin1 maps every byte to the code point of the same value.
func decodeLatin1(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for _, b := range data {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(b))
	}
	return sb.String()
}

// encodeUTF16 writes bom followed by text as UTF-16 code units.
func encodeUTF16(text string, bom []byte, endian unicode.Endianness) ([]byte, error) {
	body, err := unicode.UTF16(endian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(bom)+len(body))
	out = append(out, bom...)
	return append(out, body...), nil
}

// encodeLatin1 writes one byte per character, '?' for anything above U+00FF.
func encodeLatin1(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = latin1Replacement
		}
		out = append(out, b)
	}
	return out
}
