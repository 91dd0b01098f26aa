// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	moveUp   key.Binding
	moveDown key.Binding
	toTop    key.Binding
	toBottom key.Binding
	save     key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	moveUp:   key.NewBinding(key.WithKeys("shift+up", "K")),
	moveDown: key.NewBinding(key.WithKeys("shift+down", "J")),
	toTop:    key.NewBinding(key.WithKeys("home", "g")),
	toBottom: key.NewBinding(key.WithKeys("end", "G")),
	save:     key.NewBinding(key.WithKeys("s")),
	quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}
