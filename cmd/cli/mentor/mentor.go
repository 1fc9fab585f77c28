package mentor

import (
	"fmt"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/spf13/cobra"
	"math/rand/v2"
	"strings"
)

var Group = &cobra.Group{
	ID:    "mentor",
	Title: "AI mentor",
}

// NewAskCommand creates the command that prints the reply the mentor would give to a chat message.
func NewAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ask [message]",
		GroupID: "mentor",
		Short:   "Ask the mentor",
		Long:    `Prints the topic and the text of the reply the AI mentor gives to the message`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []chatbot.Option
			if cmd.Flags().Changed("seed") {
				seed, err := cmd.Flags().GetUint64("seed")
				if err != nil {
					return err //nolint:wrapcheck // flag errors are self-explanatory
				}
				opts = append(opts, chatbot.WithRandom(rand.New(rand.NewPCG(seed, seed)).IntN)) //nolint:gosec // not security sensitive
			}

			reply := chatbot.New(opts...).Reply(strings.Join(args, " "))
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n\n%s\n", reply.Topic, reply.Text)
			return err //nolint:wrapcheck // nothing to add
		},
	}
	cmd.Flags().Uint64("seed", 0, "seed for picking among the general replies")
	return cmd
}
