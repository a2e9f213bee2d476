package util

import (
	"math/rand/v2"
	"strings"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultIDLength is the identifier length used for files and albums.
const DefaultIDLength = 16

// GenerateUniqueID returns a random identifier drawn uniformly from uppercase
// letters and digits. Collisions are possible; callers detect them through the
// repository's duplicate-id error on insert.
func GenerateUniqueID(length int) string {
	if length <= 0 {
		length = DefaultIDLength
	}
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(idCharset[rand.IntN(len(idCharset))])
	}
	return b.String()
}
