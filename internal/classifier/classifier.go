// Package classifier infers a mood label from free-form entry text using
// the static mood lexicon. It is deliberately a deterministic keyword
// system, not a statistical model.
package classifier

import (
	"regexp"
	"strings"

	"github.com/mindwell/reframe-server/internal/lexicon"
)

// MinTextLength is the minimum raw text length before classification is
// attempted. Very short input produces spurious matches.
const MinTextLength = 20

var wordRegex = regexp.MustCompile(`[a-z']+`)

// Detect returns the first mood (in lexicon order) whose keyword set
// intersects the text's tokens. ok is false when the text is too short or
// no mood matches. A mood chosen by the user is authoritative; callers must
// not invoke Detect when one is already set.
func Detect(text string) (mood string, ok bool) {
	if len(strings.TrimSpace(text)) <= MinTextLength {
		return "", false
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return "", false
	}

	for _, entry := range lexicon.Moods {
		for _, kw := range entry.Keywords {
			if matches(tokens, text, kw) {
				return entry.Mood, true
			}
		}
	}
	return "", false
}

// tokenize lowercases the text and splits it into word tokens.
func tokenize(text string) map[string]bool {
	words := wordRegex.FindAllString(strings.ToLower(text), -1)
	tokens := make(map[string]bool, len(words))
	for _, w := range words {
		tokens[strings.Trim(w, "'")] = true
	}
	return tokens
}

// matches checks a single keyword against the token set. Multi-word
// keywords fall back to a substring check over the lowercased text.
func matches(tokens map[string]bool, text, keyword string) bool {
	if strings.ContainsRune(keyword, ' ') {
		return strings.Contains(strings.ToLower(text), keyword)
	}
	return tokens[keyword]
}
