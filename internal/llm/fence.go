package llm

import "strings"

// StripCodeFence removes a leading/trailing markdown code fence from a
// model response so the payload can be JSON-decoded. Handles ```json
// and bare ``` fences; input without a fence passes through unchanged
// apart from whitespace trimming. All JSON-expecting callers go through
// this one function rather than normalizing ad hoc.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine == "" || isFenceTag(firstLine) {
			s = s[idx+1:]
		}
	} else {
		// Single-line fence, e.g. ```json {...}```
		s = strings.TrimSpace(s)
		if rest, ok := strings.CutPrefix(s, "json"); ok {
			s = rest
		}
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
