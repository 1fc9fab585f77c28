// Package chatbot picks scripted mentor replies for chat messages.
//
// Replies are selected from an ordered table of keyword rules. The first rule whose keywords match the lowercased
// message wins. When no rule matches, one of the general replies is picked at random.
package chatbot

import (
	"embed"
	"math/rand/v2"
	"strings"
)

//go:embed replies/*.txt
var replyFiles embed.FS

// TopicGeneral labels replies picked from the general pool.
const TopicGeneral = "general"

// Rule matches a message when it contains every keyword in All and, if Any is non-empty, at least one keyword in
// Any. Keywords are lowercase substrings.
type Rule struct {
	Topic string
	All   []string
	Any   []string
	Reply string
}

func (r Rule) matches(lowered string) bool {
	for _, keyword := range r.All {
		if !strings.Contains(lowered, keyword) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, keyword := range r.Any {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Reply is a selected answer together with the topic of the rule that produced it.
type Reply struct {
	Topic string
	Text  string
}

// Selector picks replies. The zero value is not usable, use New.
type Selector struct {
	rules    []Rule
	fallback []string
	intN     func(n int) int
}

type Option func(*Selector)

// WithRandom replaces the source of randomness used to pick a general reply. intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(s *Selector) {
		s.intN = intN
	}
}

// New creates a Selector with the built-in rule table and general replies.
func New(opts ...Option) *Selector {
	s := &Selector{
		rules: []Rule{
			{Topic: "dubai-real-estate", All: []string{"dubai", "real estate"}, Any: nil, Reply: mustReply("dubai-real-estate")},
			{Topic: "validation", All: []string{"validate", "business"}, Any: nil, Reply: mustReply("validation")},
			{Topic: "pricing", All: nil, Any: []string{"pricing", "price"}, Reply: mustReply("pricing")},
		},
		fallback: []string{
			mustReply("general-strategy"),
			mustReply("general-roadmap"),
			mustReply("general-framework"),
		},
		intN: rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply selects the answer for message. Matching is case-insensitive.
func (s *Selector) Reply(message string) Reply {
	lowered := strings.ToLower(message)
	for _, rule := range s.rules {
		if rule.matches(lowered) {
			return Reply{Topic: rule.Topic, Text: rule.Reply}
		}
	}
	return Reply{Topic: TopicGeneral, Text: s.fallback[s.intN(len(s.fallback))]}
}

// Topics lists every topic Reply can return.
func (s *Selector) Topics() []string {
	topics := make([]string, 0, len(s.rules)+1)
	for _, rule := range s.rules {
		topics = append(topics, rule.Topic)
	}
	return append(topics, TopicGeneral)
}

// GeneralReplies returns the pool of replies used when no rule matches.
func (s *Selector) GeneralReplies() []string {
	return append([]string(nil), s.fallback...)
}

// SuggestedQuestions are offered to start a conversation.
func SuggestedQuestions() []string {
	return []string{
		"How can I validate my business idea?",
		"What are the key metrics I should track?",
		"How do I identify my target market?",
		"What's the best way to price my product?",
	}
}

func mustReply(name string) string {
	b, err := replyFiles.ReadFile("replies/" + name + ".txt")
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(b))
}
