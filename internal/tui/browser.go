// Package tui is an interactive feed browser. The feed grows as the
// viewport nears its bottom.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/formatter"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/paginator"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(1)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// chrome is the number of lines around the viewport: title, status, help
const chrome = 3

// Options configures a browser
type Options struct {
	Title string
	// Threshold is the scroll proximity, in lines, that triggers loading
	// the next page.
	Threshold int
}

type pageLoadedMsg struct {
	initial bool
	fetched bool
	err     error
}

// Model is the bubbletea model of the feed browser
type Model struct {
	ctx       context.Context
	pages     *paginator.Paginator
	title     string
	threshold int

	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     KeyMap

	loading bool
	err     error
	width   int
	height  int
}

// NewModel creates a browser over an idle paginator. The paginator is
// closed when the browser quits.
func NewModel(ctx context.Context, p *paginator.Paginator, opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

	title := opts.Title
	if title == "" {
		title = "Sense"
	}

	return &Model{
		ctx:       ctx,
		pages:     p,
		title:     title,
		threshold: opts.Threshold,
		viewport:  vp,
		spinner:   s,
		help:      help.New(),
		keys:      DefaultKeyMap(),
	}
}

// Run starts the browser full-screen and blocks until it quits
func Run(ctx context.Context, p *paginator.Paginator, opts Options) error {
	m := NewModel(ctx, p, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m *Model) loadCmd() tea.Cmd {
	p, ctx := m.pages, m.ctx
	return func() tea.Msg {
		err := p.Load(ctx)
		return pageLoadedMsg{initial: true, fetched: err == nil, err: err}
	}
}

func (m *Model) loadMoreCmd() tea.Cmd {
	p, ctx := m.pages, m.ctx
	return func() tea.Msg {
		fetched, err := p.LoadMore(ctx)
		return pageLoadedMsg{fetched: fetched, err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.pages.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.pages.Reset()
			m.err = nil
			m.loading = true
			m.render()
			m.viewport.GotoTop()
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.help.Width = msg.Width
		m.render()

	case pageLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			logger.Warn("Feed page failed", "initial", msg.initial, "error", msg.err)
		}
		if msg.fetched {
			m.render()
		}
		if msg.err != nil {
			return m, nil
		}
		// A short first page may not fill the screen.
		return m, m.maybeLoadMore()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	if _, ok := msg.(tea.KeyMsg); ok {
		if more := m.maybeLoadMore(); more != nil {
			cmds = append(cmds, more)
		}
	}

	return m, tea.Batch(cmds...)
}

// maybeLoadMore returns a load-more command when the viewport is within
// threshold lines of the bottom and nothing is in flight.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.loading || m.viewport.Height == 0 {
		return nil
	}
	if m.pages.State() != paginator.Ready || !m.pages.HasMore() {
		return nil
	}
	metrics := paginator.ScrollMetrics{
		ContentHeight:  m.viewport.TotalLineCount(),
		ScrollPosition: m.viewport.YOffset,
		ViewportHeight: m.viewport.Height,
	}
	if !paginator.NearBottom(metrics, m.threshold) {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadMoreCmd())
}

// render rebuilds the viewport content from the paginator, keeping the
// scroll position.
func (m *Model) render() {
	feed := m.pages.Snapshot()
	if len(feed.Items) == 0 {
		m.viewport.SetContent("")
		return
	}

	width := m.viewport.Width - 2
	if width < 10 {
		width = 10
	}
	rule := ruleStyle.Render(strings.Repeat("─", width))

	cards := make([]string, 0, len(feed.Items))
	for _, p := range feed.Items {
		cards = append(cards, strings.TrimRight(card(p, width), "\n"))
	}

	offset := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(cards, "\n"+rule+"\n"))
	m.viewport.SetYOffset(offset)
}

func card(p api.Publication, width int) string {
	return lipgloss.NewStyle().Width(width).Render(formatter.Publication(p))
}

func (m *Model) status() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("error: " + m.err.Error() + " (r to retry)")
	case m.loading:
		return statusStyle.Render(m.spinner.View() + " loading")
	case m.pages.State() == paginator.Exhausted:
		return statusStyle.Render("end of feed")
	case m.pages.Len() == 0 && m.pages.State() != paginator.Idle:
		return statusStyle.Render("nothing here yet")
	}
	return ""
}

func (m *Model) View() string {
	header := titleStyle.Render(m.title) + " " +
		countStyle.Render(fmt.Sprintf("%d loaded", m.pages.Len()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.status(),
		m.help.View(&m.keys),
	)
}
