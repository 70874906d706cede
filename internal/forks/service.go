package forks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	apperrors "github.com/altinukshini/gh-forks/internal/errors"
	"github.com/altinukshini/gh-forks/internal/location"
	"github.com/altinukshini/gh-forks/internal/metrics"
	"github.com/altinukshini/gh-forks/internal/model"
)

// Source lists the forks of an "owner/name" repository.
type Source interface {
	ListForks(ctx context.Context, repo string) ([]model.Fork, error)
}

type Service struct {
	source   Source
	columns  Columns
	logger   *log.Logger
	recorder metrics.Recorder
}

type Result struct {
	Repo  string
	Forks []model.Fork
	Rows  []Row
}

func NewService(source Source, logger *log.Logger, recorder metrics.Recorder) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Service{
		source:   source,
		columns:  DefaultColumns(),
		logger:   logger,
		recorder: recorder,
	}
}

func (s *Service) Columns() Columns {
	return s.columns
}

// CleanInput drops all whitespace from user input and normalizes what is
// left to "owner/name".
func CleanInput(input string) string {
	return location.NormalizeRepo(strings.Join(strings.Fields(input), ""))
}

// Lookup validates input and, only when it is a well-formed repository,
// fetches its forks and builds the table rows. The returned Result always
// carries the cleaned repository name.
func (s *Service) Lookup(ctx context.Context, input string) (Result, error) {
	repo := CleanInput(input)
	res := Result{Repo: repo}

	if !location.ValidRepo(repo) {
		s.recorder.IncLookupOutcome(metrics.OutcomeInvalidInput)
		return res, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid repository %q", repo)
	}

	forks, err := s.source.ListForks(ctx, repo)
	if err != nil {
		s.recorder.IncLookupOutcome(outcomeOf(err))
		s.logger.Error("fork lookup failed", "repo", repo, "err", err)
		return res, fmt.Errorf("lookup %s: %w", repo, err)
	}

	res.Forks = forks
	res.Rows = Transform(forks, s.columns)
	s.recorder.IncLookupOutcome(metrics.OutcomeSuccess)
	s.logger.Info("forks loaded", "repo", repo, "count", len(forks))
	return res, nil
}

func outcomeOf(err error) metrics.Outcome {
	switch {
	case errors.Is(err, context.Canceled):
		return metrics.OutcomeCanceled
	case apperrors.Is(err, apperrors.ErrCodeRateLimited):
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeFailed
	}
}
