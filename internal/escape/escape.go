// Package escape converts byte sequences into bodies of C string literals.
//
// Printable ASCII other than backslash and double quote is copied as is.
// Every other byte becomes a three digit octal escape, so the output never
// depends on locale or on the bytes around it.
package escape

import (
	"fmt"
	"strings"
)

const (
	firstPrintable = 32
	lastPrintable  = 127 // exclusive
)

// String escapes the UTF-8 bytes of s.
func String(s string) string {
	return Bytes([]byte(s))
}

// Bytes escapes b.
func Bytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if needsEscape(c) {
			sb.WriteString(charcode(int(c)))
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func needsEscape(c byte) bool {
	return c < firstPrintable || c >= lastPrintable || c == '\\' || c == '"'
}

// charcode renders one value as octal escapes, one triplet per base-256 digit,
// most significant first. Values from a byte slice never exceed 255, so only
// the last triplet is ever produced from Bytes.
func charcode(c int) string {
	var rev []string
	for c >= 256 {
		low := c % 256
		c /= 256
		rev = append(rev, fmt.Sprintf("\\%03o", low))
	}
	rev = append(rev, fmt.Sprintf("\\%03o", c))

	var sb strings.Builder
	for i := len(rev) - 1; i >= 0; i-- {
		sb.WriteString(rev[i])
	}
	return sb.String()
}

// Decode reverses Bytes. Sequences other than a backslash followed by
// three octal digits up to \377 are copied unchanged.
func Decode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] >= '0' && s[i+1] <= '3' && isOctal(s[i+2]) && isOctal(s[i+3]) {
			sb.WriteByte((s[i+1]-'0')<<6 | (s[i+2]-'0')<<3 | (s[i+3] - '0'))
			i += 3
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
