// Package tui implements the interactive terminal front-end: a text input,
// a scrolling list of words containing what has been typed so far, and a
// footer with the match count.
//
// Every keystroke dispatches a lookup as a tea.Cmd tagged with a sequence
// number. Only the result carrying the latest sequence number is shown, so a
// slow lookup for an older query can never overwrite a newer one.
package tui

import (
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	title      = "Interactive Dictionary Search"
	subtitle   = "It's free (and we don't spy on you, honestly!)"
	chromeRows = 4 // header, input, blank line, footer
)

// resultsMsg carries the outcome of one dispatched lookup.
type resultsMsg struct {
	seq     int
	query   string
	matches []search.Match
	total   int
}

// Model is the bubbletea model for the search screen.
type Model struct {
	searcher  search.Searcher
	showLimit int

	input   textinput.Model
	results viewport.Model

	seq     int // sequence number of the latest dispatched lookup
	query   string
	total   int
	loading bool
	width   int
}

// NewModel creates the search screen over searcher. At most showLimit
// results are rendered; larger result sets only report their size.
func NewModel(searcher search.Searcher, showLimit, maxQueryLen int) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a string, e.g. squire"
	ti.Prompt = "> "
	ti.CharLimit = maxQueryLen
	ti.Focus()

	return &Model{
		searcher:  searcher,
		showLimit: showLimit,
		input:     ti,
		results:   viewport.New(80, 20),
		width:     80,
	}
}

// Init initializes the model and returns the initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.results.Width = msg.Width
		m.results.Height = max(msg.Height-chromeRows, 1)
		return m, nil

	case resultsMsg:
		m.applyResults(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.results.LineUp(1)
			return m, nil
		case "down":
			m.results.LineDown(1)
			return m, nil
		case "pgup":
			m.results.ViewUp()
			return m, nil
		case "pgdown":
			m.results.ViewDown()
			return m, nil
		}
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		return m, tea.Batch(inputCmd, m.setQuery(value))
	}
	return m, inputCmd
}

// setQuery supersedes any lookup in flight and, for a non-empty query,
// returns the command that runs the new one.
func (m *Model) setQuery(query string) tea.Cmd {
	m.seq++
	m.query = query
	m.total = 0

	if query == "" {
		m.loading = false
		m.results.SetContent("")
		return nil
	}
	m.loading = true

	seq, searcher, limit := m.seq, m.searcher, m.showLimit
	return func() tea.Msg {
		matches, total := searcher.Matches(query, limit)
		return resultsMsg{seq: seq, query: query, matches: matches, total: total}
	}
}

// applyResults shows msg unless a newer query has been dispatched since.
func (m *Model) applyResults(msg resultsMsg) {
	if msg.seq != m.seq {
		return
	}
	m.loading = false
	m.total = msg.total
	if msg.total > m.showLimit {
		m.results.SetContent("")
	} else {
		m.results.SetContent(renderMatches(msg.matches, msg.query))
	}
	m.results.GotoTop()
}

// View renders the screen
func (m *Model) View() string {
	return m.renderHeader() + "\n" +
		m.input.View() + "\n\n" +
		m.results.View() + "\n" +
		m.renderFooter()
}
