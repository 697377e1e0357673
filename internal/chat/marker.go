package chat

import "github.com/khrees2412/cvexpress/internal/textnorm"

// containsMarker reports whether input contains the done marker, ignoring
// case and accents
func containsMarker(input, marker string) bool {
	if marker == "" {
		return false
	}
	return textnorm.Contains(input, marker)
}
