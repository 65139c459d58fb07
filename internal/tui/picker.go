package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-keepass-http/models"
)

type pickerModel struct {
	items []models.Credential
	idx   int

	status     string
	confirmed  bool
	quitByUser bool
}

func newPickerModel(items []models.Credential) pickerModel {
	return pickerModel{items: items}
}

func (m pickerModel) current() (models.Credential, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			return m, nil
		}
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.copy):
		return m.copyToClipboard(func(c models.Credential) string { return c.Password }, "Пароль скопирован")

	case key.Matches(keyMsg, keys.copyUser):
		return m.copyToClipboard(func(c models.Credential) string { return c.Username }, "Логин скопирован")
	}

	return m, nil
}

func (m pickerModel) copyToClipboard(field func(models.Credential) string, okStatus string) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(field(item)); err != nil {
		m.status = fmt.Sprintf("Ошибка копирования: %v", err)
		return m, nil
	}
	m.status = okStatus
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Найденные записи"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("Нет записей\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		label := item.Name
		if label == "" {
			label = item.UUID
		}
		fmt.Fprintf(&b, "%s%s  (%s)\n", cursor, label, item.Username)
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("c пароль  u логин  enter выбрать  q выход"))
	return appStyle.Render(b.String())
}
