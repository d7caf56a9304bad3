package utils

import "crypto/rand"

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a random code of the given length, used
// for password reset. Reset codes guard account access, so the bytes
// come from crypto/rand.
func GenerateRandomToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; nothing sensible to hand back
		panic(err)
	}
	for i := range b {
		b[i] = tokenCharset[int(b[i])%len(tokenCharset)]
	}
	return string(b)
}
