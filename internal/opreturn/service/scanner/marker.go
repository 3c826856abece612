package scanner

import "strings"

// extractPayload reports whether asm starts with marker as a whole opcode and
// returns whatever follows the single separating space.
func extractPayload(asm, marker string) (string, bool) {
	if asm == marker {
		return "", true
	}
	payload, ok := strings.CutPrefix(asm, marker+" ")
	if !ok {
		return "", false
	}
	return payload, true
}
