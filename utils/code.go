package utils

import (
	"math/rand"
	"strings"
)

// codeChars excludes I/O/0/1 so codes read unambiguously on a party screen
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of a session join code
const CodeLength = 5

// GenerateSessionCode returns a random join code of CodeLength characters
func GenerateSessionCode() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < CodeLength; i++ {
		b.WriteByte(codeChars[rand.Intn(len(codeChars))])
	}
	return b.String()
}

// NormalizeSessionCode upper-cases a join code so lookups are case-insensitive
func NormalizeSessionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
