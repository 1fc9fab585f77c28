package chatbot_test

import (
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestSelector_Reply(t *testing.T) {
	s := chatbot.New()

	tests := []struct {
		name      string
		message   string
		wantTopic string
		wantStart string
	}{
		{
			name:      "dubai real estate",
			message:   "Should I invest in Dubai real estate?",
			wantTopic: "dubai-real-estate",
			wantStart: "Excellent question about Dubai real estate investment!",
		},
		{
			name:      "dubai real estate in any case",
			message:   "DUBAI REAL ESTATE",
			wantTopic: "dubai-real-estate",
			wantStart: "Excellent question about Dubai real estate investment!",
		},
		{
			name:      "validation",
			message:   "How can I validate my business idea?",
			wantTopic: "validation",
			wantStart: "Great question about business idea validation!",
		},
		{
			name:      "pricing",
			message:   "What's the best way to price my product?",
			wantTopic: "pricing",
			wantStart: "Excellent question about pricing strategy!",
		},
		{
			name:      "earlier rule wins over pricing",
			message:   "Dubai real estate price trends",
			wantTopic: "dubai-real-estate",
			wantStart: "Excellent question about Dubai real estate investment!",
		},
		{
			name:      "validate without business is not validation",
			message:   "how do I validate demand",
			wantTopic: chatbot.TopicGeneral,
			wantStart: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := s.Reply(tt.message)
			require.Equal(t, tt.wantTopic, reply.Topic)
			if tt.wantStart != "" {
				require.True(t, strings.HasPrefix(reply.Text, tt.wantStart), "unexpected reply: %s", reply.Text)
			}
		})
	}
}

func TestSelector_ReplyFallback(t *testing.T) {
	pool := chatbot.New().GeneralReplies()
	require.Len(t, pool, 3)

	for i := range pool {
		s := chatbot.New(chatbot.WithRandom(func(n int) int {
			require.Equal(t, len(pool), n)
			return i
		}))
		reply := s.Reply("What are the key metrics I should track?")
		require.Equal(t, chatbot.TopicGeneral, reply.Topic)
		require.Equal(t, pool[i], reply.Text)
	}

	// Real randomness always lands in the pool.
	s := chatbot.New()
	for range 20 {
		require.Contains(t, pool, s.Reply("hello").Text)
	}
}

func TestSelector_Topics(t *testing.T) {
	require.Equal(t,
		[]string{"dubai-real-estate", "validation", "pricing", chatbot.TopicGeneral},
		chatbot.New().Topics(),
	)
	require.Len(t, chatbot.SuggestedQuestions(), 4)
}
