package errors

import (
	"bytes"
	"fmt"
	"github.com/stretchr/testify/require"
	"log/slog"
	"slices"
	"testing"
)

func TestAnnotatedError(t *testing.T) {
	err := New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := NewSentinel("test error")
	require.NotErrorIs(t, err, NewSentinel("test error"))
	wrapped := err.Wrap(sentinel)
	require.ErrorIs(t, wrapped, sentinel)

	// Ensure log values are coming through.
	group := err.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.NotEqual(t, -1, sourceIdx)
	source := group[sourceIdx]
	require.Contains(t, source.Value.String(), "annotatederror_test.go")
}

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(nil, "nothing to wrap"))

	sentinel := NewSentinel("not found")
	inner := Wrap(sentinel, "lookup idea", slog.String("ideaID", "idea-1"))
	outer := Wrap(inner, "select idea", slog.String("workspaceID", "ws-1"))

	require.ErrorIs(t, outer, sentinel)
	require.Equal(t, "select idea: lookup idea: not found", outer.Error())

	var annotated AnnotatedError
	require.True(t, As(outer, &annotated))
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.String("workspaceID", "ws-1"))
	require.Contains(t, group, slog.String("ideaID", "idea-1"))
}

func TestSlogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Error("annotated", SlogError(Wrap(NewSentinel("boom"), "do work", slog.Int("attempt", 2))))
	require.Contains(t, buf.String(), "error.attempt=2")
	require.Contains(t, buf.String(), "annotatederror_test.go")

	buf.Reset()
	logger.Error("plain", SlogError(fmt.Errorf("plain failure")))
	require.Contains(t, buf.String(), `error="plain failure"`)
}
