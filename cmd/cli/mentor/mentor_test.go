package mentor_test

import (
	"bytes"
	"github.com/myrjola/ideacoach/cmd/cli/mentor"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantTopic string
	}{
		{"dubai", []string{"real", "estate", "in", "DUBAI?"}, "[dubai-real-estate]"},
		{"pricing", []string{"pricing", "tips"}, "[pricing]"},
		{"general", []string{"--seed", "7", "hello"}, "[general]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := mentor.NewAskCommand()
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
			require.Contains(t, out.String(), tt.wantTopic)
		})
	}

	t.Run("same seed same reply", func(t *testing.T) {
		replies := make([]string, 2)
		for i := range replies {
			var out bytes.Buffer
			cmd := mentor.NewAskCommand()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"--seed", "42", "what", "next?"})
			require.NoError(t, cmd.Execute())
			replies[i] = out.String()
		}
		require.Equal(t, replies[0], replies[1])
	})

	t.Run("message required", func(t *testing.T) {
		cmd := mentor.NewAskCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(nil)
		require.Error(t, cmd.Execute())
	})
}
