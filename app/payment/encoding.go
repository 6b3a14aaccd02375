package payment

import "strings"

const upperHex = "0123456789ABCDEF"

// Encode trims value and percent-encodes it the way the gateway expects: every byte
// outside A-Z a-z 0-9 - _ . ! ~ * ' ( ) becomes %XX with uppercase hex, and spaces become '+'.
func Encode(value string) string {
	return escape(strings.TrimSpace(value))
}

func escape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
