package data

import (
	"fmt"
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/export"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"time"
)

var Group = &cobra.Group{
	ID:    "data",
	Title: "Data export",
}

// NewExportCommand creates the command that writes the export of a fresh workspace holding the demo data.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "data",
		Short:   "Export demo data",
		Long:    `Writes the JSON export of the demo user's data to stdout or to the file given with --out`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err //nolint:wrapcheck // flag errors are self-explanatory
			}

			now := time.Now()
			var encoded []byte
			if encoded, err = export.Encode(export.Build(appstate.Initial(), now)); err != nil {
				return errors.Wrap(err, "encode export")
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(append(encoded, '\n'))
				return err //nolint:wrapcheck // nothing to add
			}
			if out == "." {
				out = export.Filename(now)
			}
			if err = os.WriteFile(out, encoded, 0o600); err != nil { //nolint:mnd // owner read and write
				return errors.Wrap(err, "write export", slog.String("file", out))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err //nolint:wrapcheck // nothing to add
		},
	}
	cmd.Flags().String("out", "", "file to write, . picks the default download file name")
	return cmd
}

// NewValidateCommand creates the command that checks an export file against the export schema.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [file]",
		GroupID: "data",
		Short:   "Validate an export file",
		Long:    `Checks that the file is a well-formed data export`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read export", slog.String("file", args[0]))
			}
			var doc export.Document
			if doc, err = export.Decode(content); err != nil {
				return errors.Wrap(err, "decode export", slog.String("file", args[0]))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d ideas, %d feedback, %d milestones\n",
				args[0], len(doc.Ideas), len(doc.Feedback), len(doc.Milestones))
			return err //nolint:wrapcheck // nothing to add
		},
	}
}
