// Package slug generates URL-safe public identifiers. Every record gets one
// on first save and keeps it for life; it is the only identifier exposed for
// detail lookups.
package slug

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// New returns a fresh slug backed by UUID entropy. Collisions are left to the
// database unique constraint; with 122 bits of randomness they are not worth
// a retry loop.
func New() string {
	return Make(uuid.NewString())
}

// Make normalizes s into slug form: lowercase ASCII letters and digits,
// hyphen-separated. Any run of other characters collapses to a single hyphen;
// leading and trailing hyphens are stripped.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r < 128 && unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}
