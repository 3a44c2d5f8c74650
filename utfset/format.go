package utfset

import "fmt"

// Format renders a rune in the usual U+0000 notation.
func Format(r rune) string {
	return fmt.Sprintf("U+%04X", uint32(r))
}
