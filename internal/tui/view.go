package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/filter"
	"github.com/runegrid/runegrid/internal/tui/keymap"
	"github.com/runegrid/runegrid/internal/tui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.mode {
	case keymap.ModeHelp:
		b.WriteString(m.renderHelp())
	case keymap.ModeDraw:
		b.WriteString(m.renderCanvas())
	case keymap.ModeDetail:
		b.WriteString(m.renderDetail())
	default:
		b.WriteString(m.renderBody())
	}

	if m.mode == keymap.ModeSearch {
		b.WriteString("\n")
		b.WriteString(m.renderSearchBar())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m *Model) renderHeader() string {
	title := "Runegrid"
	if m.starsOK {
		title = fmt.Sprintf("Runegrid  %s", styles.Muted.Render(fmt.Sprintf("★ %d", m.stars)))
	}
	return styles.Header.Render(title)
}

func (m *Model) renderBody() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderGrid())
}

// renderSidebar lists categories with the active one highlighted. The
// list is windowed around the active entry so it fits the viewport.
func (m *Model) renderSidebar() string {
	rows := m.gridRows()
	var lines []string

	lines = append(lines, styles.SidebarTitle.Render("Categories"))

	entries := make([]string, 0, len(codepoint.Categories)+1)
	entries = append(entries, "All")
	for _, cat := range codepoint.Categories {
		entries = append(entries, cat.Name)
	}

	active := m.catIndex + 1 // entry 0 is "All"
	start := 0
	window := rows - 1
	if window < 1 {
		window = 1
	}
	if active >= window {
		start = active - window + 1
	}
	end := start + window
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		style := styles.SidebarItem
		if i == active {
			style = styles.SidebarItemActive
		}
		lines = append(lines, style.Render(entries[i]))
	}

	return styles.Sidebar.Render(strings.Join(lines, "\n"))
}

// renderGrid paints the visible window of the glyph grid.
func (m *Model) renderGrid() string {
	vis := m.visible()
	if len(vis) == 0 {
		return styles.Muted.Render("\n  no characters match the current filters")
	}

	rows := m.gridRows()
	var lines []string

	for row := m.topRow; row < m.topRow+rows; row++ {
		start := row * m.columns
		if start >= len(vis) {
			break
		}
		end := start + m.columns
		if end > len(vis) {
			end = len(vis)
		}

		var cells []string
		for i := start; i < end; i++ {
			rec := vis[i]
			style := styles.Cell
			selected := m.selection.Contains(rec.Rune)
			switch {
			case i == m.cursor && selected:
				style = styles.CellSelectedCursor
			case i == m.cursor:
				style = styles.CellCursor
			case selected:
				style = styles.CellSelected
			}
			cells = append(cells, style.Render(rec.Glyph))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderSearchBar() string {
	return styles.SearchBar.Render(
		styles.SearchPrompt.Render("/ ") + m.searchInput.View(),
	)
}

// renderCanvas paints the draw-mode cell canvas with the pen position.
func (m *Model) renderCanvas() string {
	cells := m.canvas.Cells()
	penX, penY := m.canvas.Pen()

	var lines []string
	for y, row := range cells {
		var b strings.Builder
		for x, on := range row {
			ch := "·"
			if on {
				ch = "█"
			}
			switch {
			case x == penX && y == penY:
				b.WriteString(styles.CanvasPen.Render(ch))
			case on:
				b.WriteString(styles.CanvasInk.Render(ch))
			default:
				b.WriteString(styles.Muted.Render(ch))
			}
		}
		lines = append(lines, b.String())
	}

	status := "draw a glyph, then press enter to recognize it"
	if m.recognizing {
		status = "recognizing..."
	}
	if m.recog == nil {
		status = styles.ErrorMsg.Render("recognition service not configured")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.CanvasBox.Render(strings.Join(lines, "\n")),
		styles.Muted.Render(status),
	)
}

// renderDetail paints the character detail panel.
func (m *Model) renderDetail() string {
	rec := m.detail

	row := func(label, value string) string {
		return styles.DetailLabel.Render(fmt.Sprintf("%-12s", label)) +
			styles.DetailValue.Render(value)
	}

	lines := []string{
		styles.DetailGlyph.Render(fmt.Sprintf("  %s  ", rec.Glyph)),
		row("Code point", rec.Hex),
		row("Decimal", fmt.Sprintf("%d", rec.Decimal)),
		row("Name", rec.Name),
	}
	if rec.CommonName != "" {
		lines = append(lines, row("Unicode name", rec.CommonName))
	}
	lines = append(lines,
		row("Category", rec.CategoryName),
		row("HTML entity", rec.HTMLEntity),
		row("CSS escape", rec.CSSEscape),
	)

	if m.articleKnown && m.articleExists {
		lines = append(lines, row("Article", "available"))
	}

	switch {
	case !m.similarLoaded:
		lines = append(lines, styles.SimilarStrip.Render("similar: ..."))
	case len(m.similarRecs) == 0:
		lines = append(lines, styles.SimilarStrip.Render("similar: none found"))
	default:
		glyphs := make([]string, 0, len(m.similarRecs))
		for _, s := range m.similarRecs {
			glyphs = append(glyphs, s.Glyph)
		}
		lines = append(lines, styles.SimilarStrip.Render("similar: "+strings.Join(glyphs, " ")))
	}

	return styles.DetailBox.Render(strings.Join(lines, "\n"))
}

// renderStatusBar summarizes mode, type filters, counts and selection.
func (m *Model) renderStatusBar() string {
	var parts []string

	parts = append(parts, strings.ToUpper(string(m.mode)))

	for _, t := range filter.Types {
		style := styles.FilterToggleOff
		if m.filters.TypeIDs[t.ID] {
			style = styles.FilterToggleOn
		}
		parts = append(parts, style.Render(t.Label))
	}

	parts = append(parts, fmt.Sprintf("%d/%d", m.renderer.VisibleCount(), m.renderer.TotalCount()))

	if m.filters.Query != "" {
		parts = append(parts, fmt.Sprintf("search:%q", m.filters.Query))
	}
	if n := len(m.filters.Drawn); n > 0 {
		parts = append(parts, fmt.Sprintf("drawn:%d", n))
	}
	if n := m.selection.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("selected:%d", n))
	}
	if m.status != "" {
		parts = append(parts, styles.SuccessMsg.Render(m.status))
	}
	if m.err != nil {
		parts = append(parts, styles.ErrorMsg.Render(m.err.Error()))
	}

	return styles.StatusBar.Render(strings.Join(parts, "  "))
}

// renderHelpBar shows a one-line hint for the current mode. The copy keys
// come from the live keymap so a future custom keymap stays truthful here.
func (m *Model) renderHelpBar() string {
	var hints string
	switch m.mode {
	case keymap.ModeSearch:
		hints = "enter confirm • esc cancel"
	case keymap.ModeDraw:
		hints = "hjkl pen • HJKL drag • space ink • enter recognize • x clear • esc back"
	case keymap.ModeDetail:
		hints = fmt.Sprintf("←/→ browse • s similar • %s/%s/%s/%s copy • e/E export • esc close",
			m.keyFor(keymap.CmdDetailCopyGlyph),
			m.keyFor(keymap.CmdDetailCopyHex),
			m.keyFor(keymap.CmdDetailCopyEntity),
			m.keyFor(keymap.CmdDetailCopyCSS))
	case keymap.ModeHelp:
		hints = "esc close"
	default:
		hints = "hjkl move • / search • d draw • enter detail • space select • y copy • ? help • q quit"
	}
	return styles.HelpBar.Render(hints)
}

// keyFor returns the display name of the first key bound to cmd in the
// current mode.
func (m *Model) keyFor(cmd keymap.Command) string {
	bindings := m.keys.GetBindingsForCommand(cmd, m.mode)
	if len(bindings) == 0 {
		return "?"
	}
	return bindings[0].String()
}

// renderHelp paints the full key binding reference, grouped by category.
func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Key bindings"))
	b.WriteString("\n")

	for _, mode := range []keymap.Mode{keymap.ModeNormal, keymap.ModeSearch, keymap.ModeDraw, keymap.ModeDetail} {
		b.WriteString(styles.Subtitle.Render(string(mode)))
		b.WriteString("\n")
		seen := make(map[keymap.Command]bool)
		for _, kb := range m.keys.GetModeBindings(mode) {
			if seen[kb.Command] || kb.Description == "" {
				continue
			}
			seen[kb.Command] = true
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.HelpKey.Render(fmt.Sprintf("%-10s", kb.String())),
				kb.Description,
			))
		}
	}
	return b.String()
}
