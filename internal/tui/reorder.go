// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Reorderer is the local order the reorder screen edits. Moves are saved in
// the background by the implementation.
type Reorderer interface {
	Order() []string
	MoveUp(name string) error
	MoveDown(name string) error
	MoveBefore(name, anchor string) error
	Pending() bool
	Flush(ctx context.Context) error
}

type flushDoneMsg struct {
	err error
}

type reorderModel struct {
	ctx     context.Context
	session Reorderer
	names   map[string]string

	order   []string
	idx     int
	spinner spinner.Model
	status  string
	err     error
}

func newReorderModel(ctx context.Context, items []models.DisplayItem, session Reorderer) reorderModel {
	names := make(map[string]string, len(items))
	for _, item := range items {
		names[item.File.Name] = item.DisplayName
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return reorderModel{
		ctx:     ctx,
		session: session,
		names:   names,
		order:   session.Order(),
		spinner: s,
	}
}

func (m reorderModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m reorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case flushDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = "Order saved"
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m reorderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.order)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.moveUp):
		m = m.move(m.session.MoveUp)
	case key.Matches(msg, keys.moveDown):
		m = m.move(m.session.MoveDown)
	case key.Matches(msg, keys.toTop):
		if len(m.order) > 0 {
			first := m.order[0]
			m = m.move(func(name string) error { return m.session.MoveBefore(name, first) })
		}
	case key.Matches(msg, keys.toBottom):
		m = m.move(func(name string) error { return m.session.MoveBefore(name, "") })
	case key.Matches(msg, keys.save):
		ctx, session := m.ctx, m.session
		m.status = "Saving..."
		return m, func() tea.Msg {
			return flushDoneMsg{err: session.Flush(ctx)}
		}
	}
	return m, nil
}

// move applies fn to the selected item and keeps the cursor on it.
func (m reorderModel) move(fn func(name string) error) reorderModel {
	name, ok := m.selected()
	if !ok {
		return m
	}
	if err := fn(name); err != nil {
		m.err = err
		return m
	}

	m.err = nil
	m.status = ""
	m.order = m.session.Order()
	if i := slices.Index(m.order, name); i >= 0 {
		m.idx = i
	}
	return m
}

func (m reorderModel) selected() (string, bool) {
	if m.idx < 0 || m.idx >= len(m.order) {
		return "", false
	}
	return m.order[m.idx], true
}

func (m reorderModel) View() string {
	var b strings.Builder

	header := "Reorder catalog"
	if m.session.Pending() {
		header += "  " + m.spinner.View() + " unsaved"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.order) == 0 {
		b.WriteString("No products yet\n")
	}
	for i, name := range m.order {
		label := m.names[name]
		if label == "" {
			label = name
		}
		line := fmt.Sprintf("%s %s %s", positionStyle.Render(fmt.Sprintf("%d.", i+1)), label, helpStyle.Render(name))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("j/k select  J/K move  g/G top/bottom  s save  q quit"))
	return appStyle.Render(b.String())
}
