package helpers

import (
	"strings"
	"testing"
)

func TestRandomID(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		id := RandomID(IDLength)
		if len(id) != IDLength {
			t.Fatalf("id %q has length %d, want %d", id, len(id), IDLength)
		}
		for _, r := range id {
			if !strings.ContainsRune(idCharset, r) {
				t.Fatalf("id %q contains %q outside the charset", id, r)
			}
		}
	}
}
