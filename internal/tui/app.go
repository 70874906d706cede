package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altinukshini/gh-forks/internal/api"
	"github.com/altinukshini/gh-forks/internal/config"
	apperrors "github.com/altinukshini/gh-forks/internal/errors"
	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/location"
	"github.com/altinukshini/gh-forks/internal/tui/forktable"
	"github.com/altinukshini/gh-forks/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusTable
)

// Browser opens a URL. *browser.Browser from go-gh satisfies it.
type Browser interface {
	Browse(url string) error
}

// RateLimiter reports the limits seen on the latest API response.
type RateLimiter interface {
	RateLimit() api.RateLimit
}

type Options struct {
	Context  context.Context
	Limits   RateLimiter
	Browser  Browser
	Logger   *log.Logger
	Location location.Location
}

type App struct {
	cfg     config.Config
	service *forks.Service
	limits  RateLimiter
	browser Browser
	logger  *log.Logger
	ctx     context.Context

	input   textinput.Model
	table   forktable.Model
	tracker *forks.Tracker
	history *location.History

	// State
	focus         focus
	repo          string
	message       forks.Message
	loading       bool
	status        string
	rateRemaining int
	rateLimit     int
	theme         ui.Theme
	width         int
	height        int
	showHelp      bool
}

func NewApp(cfg config.Config, service *forks.Service, opts Options) App {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := ResolveTheme(cfg.Theme)

	input := textinput.New()
	input.Prompt = "Repository: "
	input.Placeholder = "owner/name or https://github.com/owner/name"
	input.CharLimit = 200
	input.Width = 50

	cols := service.Columns()
	table := forktable.New(cols, theme)
	loc := opts.Location
	table.SetSort(forks.DefaultSort(loc.Sort(cols.StarsIndex())))

	initial := ""
	if loc.Repo != "" {
		initial = loc.Fragment()
	}

	a := App{
		cfg:     cfg,
		service: service,
		limits:  opts.Limits,
		browser: opts.Browser,
		logger:  logger,
		ctx:     ctx,
		input:   input,
		table:   table,
		tracker: &forks.Tracker{},
		history: location.NewHistory(initial),
		theme:   theme,
		status:  "Enter a repository and press enter",
	}

	if loc.Repo != "" {
		a.input.SetValue(loc.Repo)
		a.loading = true
		a.status = fmt.Sprintf("Loading forks of %s...", loc.Repo)
		a.setFocus(focusTable)
	} else {
		a.setFocus(focusInput)
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.loading {
		return a.lookup(a.input.Value())
	}
	return textinput.Blink
}

// lookup starts a request and tags its completion with a fresh token.
func (a App) lookup(input string) tea.Cmd {
	token := a.tracker.Begin()
	ctx := a.ctx
	return func() tea.Msg {
		res, err := a.service.Lookup(ctx, input)
		msg := ui.ForksLoadedMsg{Token: token, Result: res, Err: err}
		if a.limits != nil {
			msg.RateLimit = a.limits.RateLimit()
		}
		return msg
	}
}

// submit validates the input box. Invalid input shows the format banner and
// sends nothing; valid input is pushed onto the history and looked up.
func (a *App) submit() tea.Cmd {
	raw := a.input.Value()
	repo := forks.CleanInput(raw)
	if !location.ValidRepo(repo) {
		// a result still in flight must not replace the banner
		a.tracker.Begin()
		a.loading = false
		a.logger.Warn("invalid repository", "input", raw)
		a.showMessage(forks.MessageFor(apperrors.New(apperrors.ErrCodeInvalidInput, "invalid repository %q", raw)))
		return nil
	}

	a.input.SetValue(repo)
	a.history.PushRepo(repo)
	return a.load(repo)
}

func (a *App) load(repo string) tea.Cmd {
	a.loading = true
	a.status = fmt.Sprintf("Loading forks of %s...", repo)
	return a.lookup(repo)
}

func (a *App) showMessage(m forks.Message) {
	a.message = m
	a.status = ""
}

func (a *App) dismissMessage() {
	a.message = forks.Message{}
}

func (a *App) setFocus(f focus) {
	a.focus = f
	if f == focusInput {
		a.input.Focus()
		a.table.Blur()
		return
	}
	a.input.Blur()
	a.table.Focus()
}

func (a *App) setRateLimit(rl api.RateLimit) {
	if rl.Limit == 0 {
		return
	}
	a.rateRemaining = rl.Remaining
	a.rateLimit = rl.Limit
}

func (a App) openURL(url string) tea.Cmd {
	if a.browser == nil {
		return func() tea.Msg { return ui.StatusMsg{Text: url} }
	}
	b := a.browser
	return func() tea.Msg {
		return ui.BrowseDoneMsg{URL: url, Err: b.Browse(url)}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case ui.ForksLoadedMsg:
		a.handleLoaded(msg)
		return &a, nil

	case ui.BrowseDoneMsg:
		if msg.Err != nil {
			a.logger.Error("open browser", "url", msg.URL, "err", msg.Err)
			a.status = "Could not open browser: " + msg.Err.Error()
		} else {
			a.status = "Opened " + msg.URL
		}
		return &a, nil

	case ui.StatusMsg:
		a.status = msg.Text
		return &a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	if a.focus == focusInput {
		a.input, cmd = a.input.Update(msg)
	} else {
		a.table, cmd = a.table.Update(msg)
	}
	return &a, cmd
}

func (a *App) handleLoaded(msg ui.ForksLoadedMsg) {
	if !a.tracker.IsCurrent(msg.Token) {
		a.logger.Debug("dropping stale result", "repo", msg.Result.Repo, "token", msg.Token)
		return
	}
	a.loading = false
	a.setRateLimit(msg.RateLimit)

	// The table always belongs to the repository named in the header, so a
	// failed lookup empties it.
	a.repo = msg.Result.Repo
	if msg.Err != nil {
		a.table.SetRows(nil)
		a.showMessage(forks.MessageFor(msg.Err))
		return
	}

	a.dismissMessage()
	a.table.SetRows(msg.Result.Rows)
	a.status = fmt.Sprintf("%s of %s", text.Pluralize(len(msg.Result.Rows), "fork"), a.repo)
	a.setFocus(focusTable)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return &a, tea.Quit
	}
	if a.showHelp {
		a.showHelp = false
		return &a, nil
	}

	if a.focus == focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			cmd := a.submit()
			return &a, cmd
		case tea.KeyTab:
			a.setFocus(focusTable)
			return &a, nil
		case tea.KeyEsc:
			if !a.message.IsZero() {
				a.dismissMessage()
			} else {
				a.setFocus(focusTable)
			}
			return &a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return &a, cmd
	}

	// The search box owns the keyboard while open.
	if a.table.IsSearching() {
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(msg)
		return &a, cmd
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return &a, tea.Quit
	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return &a, nil
	case key.Matches(msg, ui.Keys.Tab):
		a.setFocus(focusInput)
		return &a, textinput.Blink
	case key.Matches(msg, ui.Keys.Dismiss):
		a.dismissMessage()
		return &a, nil
	case key.Matches(msg, ui.Keys.Back) && !a.message.IsZero():
		a.dismissMessage()
		return &a, nil
	case key.Matches(msg, ui.Keys.Theme):
		a.theme = a.theme.Toggle()
		a.table.SetTheme(a.theme)
		return &a, nil
	case key.Matches(msg, ui.Keys.Refresh):
		if a.repo == "" {
			return &a, nil
		}
		cmd := a.load(a.repo)
		return &a, cmd
	case key.Matches(msg, ui.Keys.History):
		frag, ok := a.history.Back()
		if !ok {
			a.status = "No earlier repository"
			return &a, nil
		}
		loc := location.Parse(frag)
		a.input.SetValue(loc.Repo)
		a.table.SetSort(forks.DefaultSort(loc.Sort(a.service.Columns().StarsIndex())))
		cmd := a.load(loc.Repo)
		return &a, cmd
	case key.Matches(msg, ui.Keys.Open):
		if row, ok := a.table.Selected(); ok && a.message.IsZero() {
			return &a, a.openURL(row.Record.URL())
		}
		return &a, nil
	}

	if !a.message.IsZero() {
		return &a, nil
	}
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return &a, cmd
}

func (a *App) propagateSize() {
	// header(1) + input pane(3) + status(1)
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}
	a.table.SetSize(a.width, contentH)

	w := a.width - lipgloss.Width(a.input.Prompt) - 6
	if w < 10 {
		w = 10
	}
	a.input.Width = w
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.repo, a.rateRemaining, a.rateLimit, a.width, a.theme)

	inputW := a.width - 2
	if inputW < 1 {
		inputW = 1
	}
	inputPane := a.theme.Pane(a.focus == focusInput).Width(inputW).Render(a.input.View())

	var content string
	switch {
	case a.showHelp:
		content = a.renderHelp()
	case !a.message.IsZero():
		content = RenderBanner(a.message, a.width)
	case a.loading && a.table.Len() == 0:
		content = renderPlaceholder("Loading forks...", a.width)
	case a.table.Len() == 0 && a.repo == "":
		content = renderPlaceholder("Type owner/name above and press enter.", a.width)
	case a.table.Len() == 0:
		content = renderPlaceholder("No forks of "+a.repo+". Press r to reload.", a.width)
	default:
		content = a.table.View()
	}

	statusBar := RenderStatusBar(a.status, a.contextHints(), a.width, a.theme)

	// header(1) + input pane(3) + statusbar(1) = 5 lines of chrome.
	maxContentLines := a.height - 5
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + inputPane + "\n" + content + "\n" + statusBar
}

func (a App) contextHints() string {
	switch {
	case a.focus == focusInput:
		return "enter:look up  tab:table  esc:dismiss  ctrl+c:quit"
	case a.table.IsSearching():
		return "enter:apply  esc:clear"
	case !a.message.IsZero():
		return "x:dismiss  tab:input  t:theme  ?:help  q:quit"
	}
	return "s/S:sort  o:order  /:search  w:open  r:refresh  tab:input  ?:help"
}

func (a App) renderHelp() string {
	contentH := a.height - 5
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(a.theme.Foreground)

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Lookup") + "\n\n")
	b.WriteString(row("enter", "Look up forks of the repository in the input"))
	b.WriteString(row("tab", "Switch between input and table"))
	b.WriteString(row("r", "Reload the current repository"))
	b.WriteString(row("ctrl+o", "Go back to the previous repository"))
	b.WriteString(row("x / esc", "Dismiss message"))

	b.WriteString("\n" + bold.Render("  Table") + "\n\n")
	b.WriteString(row("j / k", "Move down / up"))
	b.WriteString(row("g / G", "Top / bottom"))
	b.WriteString(row("s / S", "Next / previous sort column"))
	b.WriteString(row("o", "Reverse sort order"))
	b.WriteString(row("/", "Search rows (text, /regex, stars:>10)"))
	b.WriteString(row("w", "Open fork in browser"))

	b.WriteString("\n" + bold.Render("  General") + "\n\n")
	b.WriteString(row("t", "Toggle dark / light theme"))
	b.WriteString(row("q / ctrl+c", "Quit"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := a.theme.Pane(true).Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
