// Package match links free-text archive speaker fields to canonical
// roster identities.
//
// Matching is deliberately crude: a roster name matches when one phrase
// extracted from the text contains both its given-name token and its
// family-name token as substrings. There is no edit-distance fuzziness,
// and several roster names may match the same text; callers decide what
// to do with collisions.
package match

import (
	"regexp"
	"strings"

	"github.com/labrota/rota/internal/domain"
)

var (
	// phrasePattern extracts candidate name phrases: runs of word
	// characters joined across single spaces, abbreviated middle
	// initials ("A.") and parenthesised chunks.
	phrasePattern = regexp.MustCompile(`\w+(?:\s|\w+\.|\(\w+\))*\w+`)
	tokenPattern  = regexp.MustCompile(`\w+`)
)

type nameTokens struct {
	given  string
	family string
}

// Matcher holds the tokenised roster names so repeated archive scans do
// not re-derive them per record.
type Matcher struct {
	names []nameTokens
}

func New(members []domain.Member) *Matcher {
	names := make([]nameTokens, len(members))
	for i, member := range members {
		tokens := tokenPattern.FindAllString(string(member.ID()), -1)
		if len(tokens) == 0 {
			continue
		}
		// Family name is the last alphanumeric token so multi-word
		// family names ("van Gogh") match on their final chunk.
		names[i] = nameTokens{given: tokens[0], family: tokens[len(tokens)-1]}
	}
	return &Matcher{names: names}
}

// Match returns the roster indices whose given and family tokens both
// appear inside a single phrase of text. Zero, one or several indices may
// be returned.
func (m *Matcher) Match(text string) []int {
	phrases := phrasePattern.FindAllString(text, -1)
	if len(phrases) == 0 {
		return nil
	}

	var hits []int
	for i, name := range m.names {
		if name.given == "" || name.family == "" {
			continue
		}
		for _, phrase := range phrases {
			if strings.Contains(phrase, name.family) && strings.Contains(phrase, name.given) {
				hits = append(hits, i)
				break
			}
		}
	}
	return hits
}
