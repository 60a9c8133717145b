package llm

import "strings"

// Sanitize normalizes raw model output into plain prose: markdown code
// fences are stripped and surrounding whitespace trimmed. Returns
// ErrEmptyOutput when nothing usable remains.
func Sanitize(raw string) (string, error) {
	cleaned := strings.TrimSpace(stripCodeFences(raw))
	if cleaned == "" {
		return "", ErrEmptyOutput
	}
	return cleaned, nil
}

// stripCodeFences removes markdown code fences (```text ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
