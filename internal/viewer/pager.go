package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

type pagerModel struct {
	title    string
	body     string
	ready    bool
	viewport viewport.Model
}

func newPagerModel(title, body string) pagerModel {
	return pagerModel{title: title, body: body}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.body)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m pagerModel) headerView() string {
	return titleStyle.Render(m.title)
}

func (m pagerModel) footerView() string {
	pct := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	return footerStyle.Render(pct + strings.Repeat(" ", 2) + "q to close")
}
