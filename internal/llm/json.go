package llm

import "strings"

// ExtractJSON strips markdown code fences the model sometimes wraps around
// its output despite the "return only JSON" instruction, and trims
// surrounding whitespace. Schema validation still applies strictly to
// whatever remains.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
