package models

import (
	"github.com/myrjola/ideacoach/internal/errors"
	"log/slog"
)

// Page identifies one of the top level views of the application.
type Page string

const (
	PageHome      Page = "home"
	PageSubmit    Page = "submit"
	PageDashboard Page = "dashboard"
	PageChat      Page = "chat"
	PageResources Page = "resources"
	PageProfile   Page = "profile"
)

var ErrUnknownPage = errors.NewSentinel("unknown page")

// Pages lists the pages in bottom navigation order.
var Pages = []Page{ //nolint:gochecknoglobals // constant list
	PageHome,
	PageSubmit,
	PageDashboard,
	PageChat,
	PageResources,
	PageProfile,
}

// ParsePage returns ErrUnknownPage when s does not name a page.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.Wrap(ErrUnknownPage, "parse page", slog.String("page", s))
}

// Label is the human readable name shown in navigation.
func (p Page) Label() string {
	switch p {
	case PageHome:
		return "Home"
	case PageSubmit:
		return "Submit"
	case PageDashboard:
		return "Dashboard"
	case PageChat:
		return "Chat"
	case PageResources:
		return "Resources"
	case PageProfile:
		return "Profile"
	}
	return string(p)
}
