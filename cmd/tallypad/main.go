package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tallycalc/tally"
	"github.com/tallycalc/tally/internal/history"
)

const recentShown = 8

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(34).
			Align(lipgloss.Right)

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(36).
			Align(lipgloss.Right)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Width(36).
			Align(lipgloss.Right)

	historyTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	historyItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type model struct {
	session *tally.Session
	store   *history.Store
	recent  []history.Entry
	err     error
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", "=":
		before := m.session.Text()
		m.session.Equals()
		m.record(before)
	case "backspace":
		m.session.Backspace()
	case "c", "esc":
		m.session.Clear()
	case "s":
		m.session.ToggleSign()
	case "r":
		m.session.Operator('√')
	case "(":
		m.session.OpenParen()
	case ")":
		m.session.CloseParen()
	default:
		if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
			break
		}
		switch r := key.Runes[0]; r {
		case '+', '-', '*', '/', '^', '%', '×', '÷', '√':
			m.session.Operator(r)
		default:
			m.session.Digit(r)
		}
	}
	return m, nil
}

// record appends a successful equals to the history store. Failed or trivial
// evaluations are not recorded.
func (m *model) record(expr string) {
	if m.store == nil || expr == "" || expr == m.session.Text() || m.session.LiveResult() != "" {
		return
	}
	if err := m.store.Add(expr, m.session.Text()); err != nil {
		m.err = err
		return
	}
	recent, err := m.store.Recent(recentShown)
	if err != nil {
		m.err = err
		return
	}
	m.recent = recent
	m.err = nil
}

func (m *model) View() string {
	text := m.session.Text()
	if text == "" {
		text = "0"
	}
	lines := []string{displayStyle.Render(text)}
	switch live := m.session.LiveResult(); live {
	case "":
		lines = append(lines, liveStyle.Render(" "))
	case "Error":
		lines = append(lines, errorStyle.Render(live))
	default:
		lines = append(lines, liveStyle.Render("= "+live))
	}
	if m.store != nil {
		lines = append(lines, "", historyTitleStyle.Render("History"))
		if len(m.recent) == 0 {
			lines = append(lines, historyItemStyle.Render("(empty)"))
		}
		for _, e := range m.recent {
			lines = append(lines, historyItemStyle.Render(fmt.Sprintf("%s = %s", e.Expr, e.Result)))
		}
	}
	if m.err != nil {
		lines = append(lines, errorStyle.Render(m.err.Error()))
	}
	lines = append(lines, "", helpStyle.Render(strings.Join([]string{
		"0-9 . + - * / ^ % ( )",
		"r √   s ±   enter =   backspace",
		"c clear   q quit",
	}, "\n")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func main() {
	log.SetFlags(0)
	var (
		histPath string
		noHist   bool
	)
	flag.StringVar(&histPath, "history", "", "history database path (default under the user config dir)")
	flag.BoolVar(&noHist, "no-history", false, "do not record calculations")
	flag.Parse()

	m := &model{session: tally.NewSession()}
	if !noHist {
		path := histPath
		if path == "" {
			if dir, err := os.UserConfigDir(); err == nil {
				path = filepath.Join(dir, "tallypad", "history.db")
			}
		}
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				log.Fatal(err)
			}
			store, err := history.Open(path)
			if err != nil {
				log.Fatal(err)
			}
			defer store.Close()
			m.store = store
			if recent, err := store.Recent(recentShown); err == nil {
				m.recent = recent
			}
		}
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
