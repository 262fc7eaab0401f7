package main

import (
	"fmt"
	"strings"

	"dropedit/internal/hud"
	"dropedit/internal/inventory"
	"dropedit/internal/item"
	"dropedit/internal/ui/menu"
	"dropedit/internal/ui/widget"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl32"
)

const cellWidth = 13

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().
			Width(cellWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555"))
	glowBorder = lipgloss.Color("#66dd66")
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
)

func render(s *hud.ChanceScreen) string {
	size := s.Editor.Size()

	var rows []string
	rows = append(rows, titleStyle.Render(s.Title()))
	for start := 0; start < size; start += inventory.RowWidth {
		cells := make([]string, 0, inventory.RowWidth)
		for slot := start; slot < start+inventory.RowWidth; slot++ {
			cells = append(cells, renderCell(s, slot))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, titleStyle.Render("Inventory"))
	for start := 0; start < 4*inventory.RowWidth; start += inventory.RowWidth {
		cells := make([]string, 0, inventory.RowWidth)
		for i := start; i < start+inventory.RowWidth; i++ {
			index := size + i
			cells = append(cells, renderStack(index, s.Container.GetSlot(index).GetStack(), widget.ItemColor, false))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if c := s.Container.CursorStack; c != nil {
		rows = append(rows, fmt.Sprintf("holding %dx %s", c.Count, c.DisplayName()))
	}
	if n := s.Editor.Edits(); n > 0 {
		rows = append(rows, dimStyle.Render(fmt.Sprintf("%d unsaved chance edits", n)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(s *hud.ChanceScreen, slot int) string {
	v := s.Visual(slot)
	switch v.Kind {
	case widget.KindFiller:
		return cellStyle.Render(dimStyle.Render(fmt.Sprintf("%d\n\n", slot)))
	case widget.KindControl:
		return renderStack(slot, v.Item, v.Tint, v.Glow)
	case widget.KindAnnotated:
		w, _ := s.Editor.Weight(slot)
		return renderStack(slot, v.Item, v.Tint, v.Glow, menu.FormatPercent(w))
	}
	return renderStack(slot, v.Item, v.Tint, v.Glow)
}

func renderStack(index int, st *item.Stack, tint mgl32.Vec3, glow bool, extra ...string) string {
	lines := []string{fmt.Sprintf("%d", index)}
	if !item.IsEmpty(st) {
		name := st.DisplayName()
		if st.Count > 1 {
			name = fmt.Sprintf("%dx %s", st.Count, name)
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(hexColor(tint)).Render(truncate(name, cellWidth)))
	}
	lines = append(lines, extra...)
	for len(lines) < 3 {
		lines = append(lines, "")
	}

	style := cellStyle
	if glow {
		style = style.BorderForeground(glowBorder)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func hexColor(c mgl32.Vec3) lipgloss.Color {
	channel := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1) * 255)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", channel(c.X()), channel(c.Y()), channel(c.Z())))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
