// Package codec converts between raw file bytes and document text.
//
// Decoding runs a fixed detection cascade over the raw bytes:
//
//  1. FF FE prefix: UTF-16 little endian (strict)
//  2. FE FF prefix: UTF-16 big endian (strict)
//  3. EF BB BF prefix: UTF-8, invalid sequences replaced with U+FFFD
//  4. valid UTF-8 without a byte order mark
//  5. Latin-1, which accepts every byte sequence
//
// Byte order marks always win over content sniffing. The detected Encoding is
// returned alongside the text so the same encoding can be used when the text
// is written back:
//
//	text, enc, err := codec.Decode(data)
//	...
//	out, err := codec.Encode(text, enc)
//
// Decode(Encode(t, e)) == (t, e) holds for UTF16LE and UTF16BE, and for
// UTF8 unless t starts with U+FEFF: UTF-8 is written without a byte order
// mark, so a leading U+FEFF comes back as EF BB BF and is read as one, and
// the character is dropped. Latin1 is lossy: characters above U+00FF are
// written as '?'.
package codec
