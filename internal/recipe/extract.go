package recipe

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipestudio/internal/domain"
)

var (
	jsonFence = regexp.MustCompile("(?is)```json\\s*(\\{.*?\\})\\s*```")
	anyFence  = regexp.MustCompile("(?is)```\\s*(\\{.*?\\})\\s*```")
)

// Extract locates a JSON object embedded in text. It tries, in order, a
// ```json fenced block, any fenced block, every '{' paired with every later
// '}' (longest candidate first) and finally the whole text. Only objects
// are accepted.
func Extract(text string) (domain.Value, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Value{}, false
	}

	for _, re := range []*regexp.Regexp{jsonFence, anyFence} {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, ok := decodeObject(m[1]); ok {
				return v, true
			}
		}
	}

	if v, ok := scanObjects(text); ok {
		return v, true
	}

	return decodeObject(text)
}

// scanObjects brute-forces candidate spans. For each opening brace, left to
// right, it tries closing braces from the end of the text backward and
// returns the first span that decodes.
func scanObjects(text string) (domain.Value, bool) {
	var opens, closes []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			opens = append(opens, i)
		case '}':
			closes = append(closes, i)
		}
	}

	for _, s := range opens {
		for j := len(closes) - 1; j >= 0 && closes[j] > s; j-- {
			if v, ok := decodeObject(text[s : closes[j]+1]); ok {
				return v, true
			}
		}
	}
	return domain.Value{}, false
}
