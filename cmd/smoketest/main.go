package main

import (
	"context"
	"github.com/myrjola/ideacoach/internal/e2etest"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/export"
	"github.com/myrjola/ideacoach/internal/logging"
	"log/slog"
	neturl "net/url"
	"os"
	"strings"
	"time"
)

// TestJourney walks through sign in, idea submission, a chat question, the data export and sign out.
func TestJourney(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second) //nolint:mnd // 30 seconds
	defer cancel()
	var err error

	if _, err = client.GetDoc(ctx, "/"); err != nil {
		return errors.Wrap(err, "open home")
	}
	if _, err = client.Logout(ctx); err != nil {
		return errors.Wrap(err, "sign out demo user")
	}
	if _, err = client.Login(ctx, "Smoke Test", "smoketest@example.com"); err != nil {
		return errors.Wrap(err, "sign in")
	}
	if _, err = client.Navigate(ctx, "submit"); err != nil {
		return errors.Wrap(err, "open submit page")
	}
	doc, err := client.SubmitForm(ctx, "/", "/ideas", neturl.Values{
		"title":         {"Smoke test idea"},
		"description":   {"An idea submitted by the smoke test"},
		"category":      {"Other"},
		"targetMarket":  {"Operators"},
		"problem":       {"Deployments need verification"},
		"businessModel": {"None"},
	})
	if err != nil {
		return errors.Wrap(err, "submit idea")
	}
	if !strings.Contains(doc.Find(".current-idea").Text(), "Smoke test idea") {
		return errors.New("submitted idea not on dashboard")
	}
	if _, err = client.Navigate(ctx, "chat"); err != nil {
		return errors.Wrap(err, "open chat")
	}
	if _, err = client.Ask(ctx, "How should I validate my business?"); err != nil {
		return errors.Wrap(err, "ask mentor")
	}

	var body []byte
	if body, _, err = client.Export(ctx); err != nil {
		return errors.Wrap(err, "export data")
	}
	if err = export.Validate(body); err != nil {
		return errors.Wrap(err, "validate export")
	}

	if _, err = client.Logout(ctx); err != nil {
		return errors.Wrap(err, "sign out")
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestJourney(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing user journey", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
