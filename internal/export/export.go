// Package export produces the downloadable JSON snapshot of a user's data.
package export

import (
	_ "embed"
	"encoding/json"
	"github.com/myrjola/ideacoach/internal/appstate"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/xeipuuv/gojsonschema"
	"log/slog"
	"strings"
	"time"
)

//go:embed schema.json
var schema string

var ErrInvalidDocument = errors.NewSentinel("invalid export document")

// Document is the exported data. Resources and the chat log are not part of it.
type Document struct {
	User       *models.User          `json:"user"`
	Ideas      []models.BusinessIdea `json:"ideas"`
	Feedback   []models.AIFeedback   `json:"feedback"`
	Milestones []models.Milestone    `json:"milestones"`
	ExportDate time.Time             `json:"exportDate"`
}

// Build creates the export document of s at now.
func Build(s appstate.State, now time.Time) Document {
	s = s.Clone()
	doc := Document{
		User:       s.User,
		Ideas:      s.Ideas,
		Feedback:   s.Feedback,
		Milestones: s.Milestones,
		ExportDate: now,
	}
	// Empty lists are exported as [] instead of null.
	if doc.Ideas == nil {
		doc.Ideas = []models.BusinessIdea{}
	}
	if doc.Feedback == nil {
		doc.Feedback = []models.AIFeedback{}
	}
	if doc.Milestones == nil {
		doc.Milestones = []models.Milestone{}
	}
	return doc
}

// Encode renders doc as JSON indented with two spaces.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal export document")
	}
	return data, nil
}

// Filename is the name of the downloaded file, e.g., business-coach-data-2024-01-31.json. The date is in UTC.
func Filename(now time.Time) string {
	return "business-coach-data-" + now.UTC().Format(time.DateOnly) + ".json"
}

// Validate checks data against the export JSON schema. A document that does not conform returns an error wrapping
// ErrInvalidDocument.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(ErrInvalidDocument, err.Error())
	}

	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return errors.Wrap(ErrInvalidDocument, "schema validation failed: "+strings.Join(problems, "; "),
			slog.Int("problemCount", len(problems)))
	}
	return nil
}

// Decode validates data and unmarshals it into a Document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := Validate(data); err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrap(err, "unmarshal export document")
	}
	return doc, nil
}
