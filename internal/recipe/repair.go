package recipe

import (
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

var (
	pairedFence   = regexp.MustCompile("(?s)```(.*?)```")
	bareKey       = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\b\s*:`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// Repair rewrites near-JSON into JSON and decodes it. It fixes the usual
// model mistakes: code fences, chatter around the object, single quotes,
// unquoted keys and trailing commas.
//
// Repair is lossy. Apostrophes inside values become quotes and words
// followed by a colon inside values get quoted, both of which can break
// otherwise valid text. Callers treat a false result as "try the next
// stage".
func Repair(text string) (domain.Value, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Value{}, false
	}

	t := pairedFence.ReplaceAllString(text, "${1}")
	t = braceSpan(t)
	t = singleToDoubleQuotes(t)
	t = bareKey.ReplaceAllString(t, `"${1}":`)
	t = trailingComma.ReplaceAllString(t, "${1}")

	return decodeObject(t)
}

// Salvage runs the brace span through a structural JSON repairer. It is
// the last attempt before prose extraction and only runs on text that has
// an opening brace.
func Salvage(text string) (domain.Value, bool) {
	if !strings.Contains(text, "{") {
		return domain.Value{}, false
	}

	t := pairedFence.ReplaceAllString(text, "${1}")
	repaired, err := jsonrepair.JSONRepair(braceSpan(t))
	if err != nil {
		return domain.Value{}, false
	}
	return decodeObject(repaired)
}

// braceSpan keeps the text from the first '{' to the last '}'. Without a
// closing brace after it, everything from the '{' on is kept.
func braceSpan(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return s
	}
	end := strings.LastIndex(s, "}")
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

// singleToDoubleQuotes replaces every single quote not preceded by a
// backslash.
func singleToDoubleQuotes(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	b := []byte(s)
	for i := range b {
		if b[i] == '\'' && (i == 0 || b[i-1] != '\\') {
			b[i] = '"'
		}
	}
	return string(b)
}
