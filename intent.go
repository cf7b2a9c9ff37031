package main

import "strings"

// Intent is the coarse classification of a raw chat input.
type Intent int

const (
	// IntentGreeting means the input contains a greeting phrase.
	IntentGreeting Intent = iota
	// IntentFuzzyCommand means the input starts with a natural-language
	// command keyword ("show me", "find", ...).
	IntentFuzzyCommand
	// IntentPlainQuery is everything else: a bare keyword/phrase search.
	IntentPlainQuery
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentFuzzyCommand:
		return "fuzzy_command"
	default:
		return "plain_query"
	}
}

// Classifier decides how a raw input should be handled. It is a pure
// function over the vocabulary; no state is kept between calls.
type Classifier struct {
	greetings []string
	commands  []string
}

func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{
		greetings: vocab.Greetings,
		commands:  vocab.CommandKeywords,
	}
}

// Classify checks intents in fixed precedence order:
// 1. Greeting (substring match anywhere in the input)
// 2. FuzzyCommand (input starts with a command keyword)
// 3. PlainQuery (no match found above)
// A greeting wins even when a command keyword is also present.
func (c *Classifier) Classify(raw string) Intent {
	text := strings.ToLower(strings.TrimSpace(raw))

	for _, g := range c.greetings {
		if strings.Contains(text, g) {
			return IntentGreeting
		}
	}

	for _, kw := range c.commands {
		if strings.HasPrefix(text, kw) {
			return IntentFuzzyCommand
		}
	}

	return IntentPlainQuery
}
