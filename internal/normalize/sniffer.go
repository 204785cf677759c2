package normalize

import (
	"encoding/json"
	"strings"
)

// Sniffed is the result of format detection on raw model output.
// Exactly one branch is set: JSON holds a valid (fence-stripped) JSON
// document, otherwise Text holds the original input untouched.
type Sniffed struct {
	JSON json.RawMessage
	Text string
}

// IsJSON reports whether the input decoded as JSON
func (s Sniffed) IsJSON() bool {
	return s.JSON != nil
}

// Sniff decides whether raw model output is JSON or free text.
// A single wrapping code fence (with optional language tag) is removed
// before the JSON attempt. On any decode failure the original string
// is returned, not the stripped one, so nothing is lost if the fence
// detection was wrong.
func Sniff(raw string) Sniffed {
	candidate := stripFence(raw)
	if json.Valid([]byte(candidate)) && strings.TrimSpace(candidate) != "" {
		return Sniffed{JSON: json.RawMessage(candidate)}
	}
	return Sniffed{Text: raw}
}

// stripFence removes one leading ```lang marker and one trailing ```
// when both are present. Anything else is returned trimmed but intact.
func stripFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	rest := t[3:]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return t
	}
	body := rest[nl+1:]
	trimmed := strings.TrimRight(body, " \t\r\n")
	if !strings.HasSuffix(trimmed, "```") {
		return t
	}
	return strings.TrimSpace(strings.TrimSuffix(trimmed, "```"))
}
