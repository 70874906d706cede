package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/browser"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/location"
	"github.com/altinukshini/gh-forks/internal/tui"
)

func (c *CLI) runTUI(ctx context.Context, raw string) error {
	logger := loggerFromContext(ctx)

	client, err := c.newClient(logger, nil)
	if err != nil {
		return err
	}
	if !client.Authenticated() {
		logger.Warn("no GitHub token found; unauthenticated requests are limited to 60 per hour")
	}
	service := forks.NewService(client, logger, nil)

	app := tui.NewApp(c.cfg, service, tui.Options{
		Context:  ctx,
		Limits:   client,
		Browser:  browser.New("", c.stdout, c.stderr),
		Logger:   logger,
		Location: location.Parse(raw),
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
