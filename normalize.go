package main

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizedQuery is the cleaned form of a raw chat input: the whole cleaned
// string for substring matching plus the surviving search tokens for the
// token policies. Both may be empty, which signals "no actionable terms".
type NormalizedQuery struct {
	Text   string
	Tokens []string
}

// Normalizer cleans raw user text against a vocabulary: lower-casing,
// unicode normalization, contraction expansion, command-prefix stripping
// and filler-word removal.
type Normalizer struct {
	fillers      map[string]bool
	prefixes     []string
	contractions map[string]string
}

func NewNormalizer(vocab Vocabulary) *Normalizer {
	fillers := make(map[string]bool, len(vocab.FillerWords))
	for _, w := range vocab.FillerWords {
		fillers[w] = true
	}

	return &Normalizer{
		fillers:  fillers,
		prefixes: vocab.CommandPrefixes,
		contractions: map[string]string{
			"i'm": "i am", "i've": "i have", "i'll": "i will", "i'd": "i would",
			"can't": "cannot", "won't": "will not", "don't": "do not",
			"doesn't": "does not", "didn't": "did not", "isn't": "is not",
			"aren't": "are not", "wasn't": "was not", "weren't": "were not",
			"hasn't": "has not", "haven't": "have not", "hadn't": "had not",
			"wouldn't": "would not", "shouldn't": "should not", "couldn't": "could not",
			"you're": "you are", "you've": "you have", "you'll": "you will", "you'd": "you would",
			"he's": "he is", "she's": "she is", "it's": "it is", "that's": "that is",
			"what's": "what is", "where's": "where is", "who's": "who is",
			"there's": "there is", "we're": "we are", "we've": "we have",
			"they're": "they are", "they've": "they have",
		},
	}
}

// Normalize performs text normalization:
// - Unicode normalization
// - Lowercase conversion
// - Contraction expansion
// - Whitespace normalization
func (n *Normalizer) Normalize(text string) string {
	// Normalize unicode
	text = norm.NFKD.String(text)

	// Replace unicode spaces with regular spaces
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)

	// Convert to lowercase
	text = strings.ToLower(strings.TrimSpace(text))

	// Expand contractions
	words := strings.Fields(text)
	for i, word := range words {
		if expansion, ok := n.contractions[word]; ok {
			words[i] = expansion
		}
	}
	text = strings.Join(words, " ")

	return spaceRe.ReplaceAllString(text, " ")
}

// StripCommandPrefix removes the first matching command phrase from the
// front of already-normalized text. Prefixes are ordered longest first in
// the vocabulary, so "give me fni for" wins over "give me".
func (n *Normalizer) StripCommandPrefix(text string) string {
	for _, prefix := range n.prefixes {
		if text == prefix {
			return ""
		}
		if strings.HasPrefix(text, prefix+" ") {
			return strings.TrimSpace(text[len(prefix)+1:])
		}
	}
	return text
}

// Tokens splits normalized text into search tokens, dropping filler words
// and single-character leftovers. Filler removal only drops stand-alone
// tokens, so "clause" disappears but "guarantee agreement" after it stays.
func (n *Normalizer) Tokens(text string) []string {
	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if n.fillers[w] || len(w) <= 1 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Query builds the NormalizedQuery for a raw input. stripPrefix is set for
// fuzzy commands; plain keyword queries keep their full wording.
func (n *Normalizer) Query(raw string, stripPrefix bool) NormalizedQuery {
	text := n.Normalize(raw)
	if stripPrefix {
		text = n.StripCommandPrefix(text)
	}
	return NormalizedQuery{
		Text:   text,
		Tokens: n.Tokens(text),
	}
}
