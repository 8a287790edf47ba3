package id

import "crypto/rand"

const (
	chars  = "abcdefghijklmnopqrstuvwxyz0123456789"
	length = 12
)

// GenerateID creates a short alphanumeric ID for words and word sets.
// Sessions use UUIDs; these stay short because they show up in URLs and
// hand-edited import sheets.
func GenerateID() string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
