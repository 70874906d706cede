package forks

import (
	"context"
	"errors"

	apperrors "github.com/altinukshini/gh-forks/internal/errors"
)

type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityDanger Severity = "danger"
)

const (
	InvalidRepoText = "Invalid GitHub repository! Format is <username>/<repo>"
	RateLimitText   = "Error: API Rate Limit Exceeded"

	logHint = ". Additional info in the log"
)

// Message is the single banner that replaces the table.
type Message struct {
	Text     string
	Severity Severity
}

func Info(text string) Message {
	return Message{Text: text, Severity: SeverityInfo}
}

func (m Message) IsZero() bool {
	return m.Text == ""
}

// MessageFor maps a lookup error to the banner shown to the user.
func MessageFor(err error) Message {
	switch {
	case err == nil:
		return Message{}
	case apperrors.Is(err, apperrors.ErrCodeInvalidInput):
		return Message{Text: InvalidRepoText, Severity: SeverityDanger}
	case apperrors.Is(err, apperrors.ErrCodeRateLimited):
		return Message{Text: RateLimitText + logHint, Severity: SeverityDanger}
	case errors.Is(err, context.Canceled):
		return Message{Text: "Request canceled", Severity: SeverityInfo}
	default:
		return Message{Text: "Error: " + apperrors.UserMessage(err) + logHint, Severity: SeverityDanger}
	}
}
