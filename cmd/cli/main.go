package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/ideacoach/cmd/cli/data"
	"github.com/myrjola/ideacoach/cmd/cli/mentor"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(mentor.Group)
	rootCmd.AddCommand(mentor.NewAskCommand())
	rootCmd.AddGroup(data.Group)
	rootCmd.AddCommand(data.NewExportCommand(), data.NewValidateCommand())
}

var rootCmd = &cobra.Command{
	Use:          "ideacoach-cli",
	Long:         `Command line utilities for the AI business coach`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
