package data_test

import (
	"bytes"
	"github.com/myrjola/ideacoach/cmd/cli/data"
	"github.com/myrjola/ideacoach/internal/export"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestExportAndValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "export.json")

	var out bytes.Buffer
	exportCmd := data.NewExportCommand()
	exportCmd.SetOut(&out)
	exportCmd.SetArgs([]string{"--out", file})
	require.NoError(t, exportCmd.Execute())
	require.Contains(t, out.String(), "wrote "+file)

	out.Reset()
	validateCmd := data.NewValidateCommand()
	validateCmd.SetOut(&out)
	validateCmd.SetArgs([]string{file})
	require.NoError(t, validateCmd.Execute())
	require.Contains(t, out.String(), "3 ideas, 2 feedback, 5 milestones")
}

func TestExportToStdout(t *testing.T) {
	var out bytes.Buffer
	cmd := data.NewExportCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	doc, err := export.Decode(out.Bytes())
	require.NoError(t, err)
	require.Equal(t, "Alex Morgan", doc.User.Name)
}

func TestValidate_invalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"user": null, "ideas": "nope"}`), 0o600))

	cmd := data.NewValidateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{file})
	err := cmd.Execute()
	require.ErrorIs(t, err, export.ErrInvalidDocument)
}
