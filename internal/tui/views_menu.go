package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankmotion/internal/nav"
)

func (m *Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(nav.Main.Title()))
	b.WriteString("\n")

	for i, id := range nav.Demos() {
		b.WriteString(m.renderButton(id.Title(), i == m.menuCursor))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	demos := nav.Demos()

	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m.quit()
	case key.Matches(msg, m.menuKeys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.menuKeys.Down):
		if m.menuCursor < len(demos)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.menuKeys.Select):
		return m, m.navigate(demos[m.menuCursor])
	case key.Matches(msg, m.menuKeys.Jump):
		idx := int(msg.Runes[0] - '1')
		m.menuCursor = idx
		return m, m.navigate(demos[idx])
	}
	return m, nil
}
