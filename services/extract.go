package services

import "strings"

// The gateway answers in free-form text that usually wraps the JSON we
// asked for in markdown fences or surrounding prose. These helpers cut
// the JSON span out before unmarshalling.

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```json"); i != -1 {
		s = s[i+len("```json"):]
	} else if i := strings.Index(s, "```"); i != -1 {
		s = s[i+len("```"):]
	}
	if i := strings.LastIndex(s, "```"); i != -1 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// ExtractJSONArray returns the first-'['-to-last-']' span of the text
// after fence stripping. Deliberately greedy rather than a bracket
// matcher: a response containing two separate arrays in prose comes
// back as one merged span. That matches how the app has always behaved
// and is pinned by a test.
func ExtractJSONArray(raw string) (string, error) {
	cleaned := stripCodeFences(raw)
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return "", &ParseError{Raw: cleaned}
	}
	return cleaned[start : end+1], nil
}

// ExtractJSONObject is the '{'...'}' analogue of ExtractJSONArray.
func ExtractJSONObject(raw string) (string, error) {
	cleaned := stripCodeFences(raw)
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &ParseError{Raw: cleaned}
	}
	return cleaned[start : end+1], nil
}
