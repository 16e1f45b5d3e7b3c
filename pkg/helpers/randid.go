package helpers

import "math/rand/v2"

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz"

// IDLength is the length of generated record ids.
const IDLength = 5

// RandomID generates an opaque id of n characters drawn uniformly from
// the 62-symbol alphanumeric charset. Collisions are not checked;
// acceptable at this scale.
func RandomID(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idCharset[rand.IntN(len(idCharset))]
	}
	return string(b)
}
