package format

import "strings"

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Base64Encode encodes s as standard base64 (RFC 4648) with '=' padding
// and no line wrapping. Input bytes are packed three at a time into a
// 24-bit group and emitted as four 6-bit symbols; a short final group is
// padded with one or two '=' characters.
func Base64Encode(s string) string {
	data := []byte(s)

	var b strings.Builder
	b.Grow((len(data) + 2) / 3 * 4)

	for i := 0; i < len(data); i += 3 {
		var chunk [3]byte
		n := copy(chunk[:], data[i:])

		group := uint32(chunk[0])<<16 | uint32(chunk[1])<<8 | uint32(chunk[2])

		b.WriteByte(base64Alphabet[group>>18&63])
		b.WriteByte(base64Alphabet[group>>12&63])
		if n > 1 {
			b.WriteByte(base64Alphabet[group>>6&63])
		} else {
			b.WriteByte('=')
		}
		if n > 2 {
			b.WriteByte(base64Alphabet[group&63])
		} else {
			b.WriteByte('=')
		}
	}

	return b.String()
}
