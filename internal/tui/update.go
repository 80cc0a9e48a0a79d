package tui

import (
	"fmt"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/filter"
	"github.com/runegrid/runegrid/internal/tui/keymap"
	"github.com/runegrid/runegrid/internal/tui/msg"
)

// Update implements tea.Model.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.clampViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(v)

	case msg.ScrollSettledMsg:
		m.renderer.SettleGrowth()
		return m, nil

	case msg.SimilarResultMsg:
		return m.handleSimilarResult(v)

	case msg.DrawRecognizedMsg:
		return m.handleDrawRecognized(v)

	case msg.ArticleMsg:
		if m.detailOpen && v.ForRune == m.detail.Rune {
			m.articleKnown = true
			m.articleExists = v.Exists
		}
		return m, nil

	case msg.StarsMsg:
		m.stars = v.Count
		m.starsOK = v.OK
		return m, nil

	case msg.ExportDoneMsg:
		if v.Err != nil {
			m.status = ""
			m.err = v.Err
		} else {
			m.err = nil
			m.status = fmt.Sprintf("exported %d file(s) to %s", len(v.Paths), m.cfg.Export.Dir)
		}
		return m, nil

	case msg.ErrMsg:
		m.err = v.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(key, m.mode)
	if !ok {
		return m, nil
	}

	// A keypress consumes any transient status line
	m.status = ""

	switch m.mode {
	case keymap.ModeSearch:
		return m.handleSearchCommand(cmd, key)
	case keymap.ModeDraw:
		return m.handleDrawCommand(cmd)
	case keymap.ModeDetail:
		return m.handleDetailCommand(cmd)
	case keymap.ModeHelp:
		if cmd == keymap.CmdCloseHelp {
			m.mode = m.prevMode
		}
		return m, nil
	default:
		return m.handleNormalCommand(cmd)
	}
}

func (m *Model) handleNormalCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	// Grid navigation; downward movement may grow the grid
	case keymap.CmdCursorLeft:
		m.moveCursor(-1)
	case keymap.CmdCursorRight:
		m.moveCursor(1)
		return m, m.maybeGrow()
	case keymap.CmdCursorUp:
		m.moveCursor(-m.columns)
	case keymap.CmdCursorDown:
		m.moveCursor(m.columns)
		return m, m.maybeGrow()
	case keymap.CmdPageUp:
		m.moveCursor(-m.gridRows() * m.columns)
	case keymap.CmdPageDown:
		m.moveCursor(m.gridRows() * m.columns)
		return m, m.maybeGrow()
	case keymap.CmdJumpTop:
		m.cursor = 0
		m.clampViewport()
	case keymap.CmdJumpBottom:
		m.cursor = m.renderer.VisibleCount() - 1
		m.clampViewport()
		return m, m.maybeGrow()

	// Category navigation
	case keymap.CmdNextCategory:
		m.cycleCategory(1)
	case keymap.CmdPrevCategory:
		m.cycleCategory(-1)

	// Type filter toggles
	case keymap.CmdToggleCharacters:
		m.filters.ToggleType(filter.TypeCharacters)
		m.applyFilters()
	case keymap.CmdToggleSymbols:
		m.filters.ToggleType(filter.TypeSymbols)
		m.applyFilters()
	case keymap.CmdToggleNumbers:
		m.filters.ToggleType(filter.TypeNumbers)
		m.applyFilters()
	case keymap.CmdToggleEmojis:
		m.filters.ToggleType(filter.TypeEmojis)
		m.applyFilters()
	case keymap.CmdClearFilters:
		m.filters = filter.NewState()
		m.searchInput.SetValue("")
		m.catIndex = -1
		m.applyFilters()

	// Selection
	case keymap.CmdToggleSelect:
		if rec, ok := m.cursorRecord(); ok {
			m.selection.Toggle(rec.Rune)
		}
	case keymap.CmdSelectAll:
		m.selection.SelectAll(m.visible())
	case keymap.CmdClearSelection:
		m.selection.Clear()

	// Export
	case keymap.CmdExportSVG, keymap.CmdExportPNG:
		records := m.selection.Records()
		if len(records) == 0 {
			if rec, ok := m.cursorRecord(); ok {
				records = append(records, rec)
			}
		}
		m.status = "exporting..."
		return m, msg.ExportBulkAsync(m.exporter, records)

	case keymap.CmdCopySelection:
		glyphs := string(m.selection.Runes())
		if glyphs == "" {
			if rec, ok := m.cursorRecord(); ok {
				glyphs = rec.Glyph
			}
		}
		return m, m.copyToClipboard(glyphs, "glyphs")

	// Mode entry
	case keymap.CmdEnterSearchMode:
		m.mode = keymap.ModeSearch
		m.searchInput.SetValue(m.filters.Query)
		m.searchInput.Focus()
		return m, textinput.Blink
	case keymap.CmdEnterDrawMode:
		m.mode = keymap.ModeDraw
	case keymap.CmdOpenDetail:
		if rec, ok := m.cursorRecord(); ok {
			return m, m.openDetail(rec)
		}
	case keymap.CmdToggleHelp:
		m.prevMode = m.mode
		m.mode = keymap.ModeHelp

	case keymap.CmdQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleSearchCommand(cmd keymap.Command, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdCancelSearch:
		m.mode = keymap.ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filters.Query = ""
		m.applyFilters()
		return m, nil

	case keymap.CmdExecuteSearch:
		m.mode = keymap.ModeNormal
		m.searchInput.Blur()
		return m, nil

	case keymap.CmdDeleteBack, keymap.CmdInsertSpace, keymap.CmdInsertChar:
		// Let the text input handle editing, then re-run the search
		// live on every keystroke.
		var inputCmd tea.Cmd
		m.searchInput, inputCmd = m.searchInput.Update(key)
		query := strings.TrimSpace(m.searchInput.Value())
		if query != m.filters.Query {
			m.filters.Query = query
			// A new query invalidates prior drawn-glyph results
			m.filters.ClearDrawn()
			m.applyFilters()
		}
		return m, inputCmd
	}
	return m, nil
}

func (m *Model) handleDrawCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdPenLeft:
		m.canvas.MovePen(-1, 0)
	case keymap.CmdPenRight:
		m.canvas.MovePen(1, 0)
	case keymap.CmdPenUp:
		m.canvas.MovePen(0, -1)
	case keymap.CmdPenDown:
		m.canvas.MovePen(0, 1)
	case keymap.CmdPenDragLeft:
		m.dragPen(-1, 0)
	case keymap.CmdPenDragRight:
		m.dragPen(1, 0)
	case keymap.CmdPenDragUp:
		m.dragPen(0, -1)
	case keymap.CmdPenDragDown:
		m.dragPen(0, 1)
	case keymap.CmdPenToggle:
		m.canvas.Toggle()
	case keymap.CmdCanvasClear:
		m.canvas.Clear()
		m.drawToken++
		m.recognizing = false
	case keymap.CmdCanvasSubmit:
		if m.recog == nil {
			m.status = "no recognition service configured"
			return m, nil
		}
		if m.canvas.IsEmpty() {
			return m, nil
		}
		m.drawToken++
		m.recognizing = true
		return m, msg.RecognizeCanvasAsync(m.recog, m.canvas.Cells(), m.drawToken)
	case keymap.CmdExitDraw:
		m.mode = keymap.ModeNormal
		m.recognizing = false
	}
	return m, nil
}

func (m *Model) handleDetailCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdDetailClose:
		m.detailOpen = false
		m.mode = keymap.ModeNormal

	case keymap.CmdDetailPrev:
		if m.cursor > 0 {
			m.moveCursor(-1)
			if rec, ok := m.cursorRecord(); ok {
				return m, m.openDetail(rec)
			}
		}
	case keymap.CmdDetailNext:
		if m.cursor < m.renderer.VisibleCount()-1 {
			m.moveCursor(1)
			if rec, ok := m.cursorRecord(); ok {
				return m, m.openDetail(rec)
			}
		}

	case keymap.CmdDetailSimilar:
		m.similarLoaded = false
		return m, msg.ResolveSimilarAsync(m.resolver, m.detail, true)

	case keymap.CmdDetailExportSVG:
		m.status = "exporting..."
		return m, msg.ExportOneAsync(m.exporter, m.detail, "svg")
	case keymap.CmdDetailExportPNG:
		m.status = "exporting..."
		return m, msg.ExportOneAsync(m.exporter, m.detail, "png")

	case keymap.CmdDetailCopyGlyph:
		return m, m.copyToClipboard(m.detail.Glyph, "glyph")
	case keymap.CmdDetailCopyHex:
		return m, m.copyToClipboard(m.detail.Hex, "code point")
	case keymap.CmdDetailCopyEntity:
		return m, m.copyToClipboard(m.detail.HTMLEntity, "HTML entity")
	case keymap.CmdDetailCopyCSS:
		return m, m.copyToClipboard(m.detail.CSSEscape, "CSS escape")
	}
	return m, nil
}

// copyToClipboard writes value to the system clipboard over OSC 52. The
// write is fire and forget: a terminal that ignores OSC 52 drops it
// without an acknowledgement, so failures are logged, never surfaced.
func (m *Model) copyToClipboard(value, what string) tea.Cmd {
	if value == "" {
		m.log.Warn("clipboard copy skipped, nothing to copy", "field", what)
		return nil
	}
	m.log.Debug("clipboard write", "field", what, "bytes", len(value))
	m.status = fmt.Sprintf("copied %s", what)
	log := m.log
	return func() tea.Msg {
		if _, err := osc52.New(value).WriteTo(os.Stderr); err != nil {
			log.Warn("clipboard write failed", "field", what, "error", err)
		}
		return nil
	}
}

// dragPen moves the pen and inks the cell it lands on, so a held shifted
// movement key paints a stroke instead of toggling cell by cell.
func (m *Model) dragPen(dx, dy int) {
	m.canvas.MovePen(dx, dy)
	m.canvas.Ink()
}

func (m *Model) handleSimilarResult(v msg.SimilarResultMsg) (tea.Model, tea.Cmd) {
	// Last-requested-character wins: answers for an older detail view
	// (or resolver-declared stale results) are dropped.
	if !m.detailOpen || v.ForRune != m.detail.Rune || v.Err != nil {
		return m, nil
	}
	m.similarRecs = v.Records
	m.similarLoaded = true
	return m, nil
}

func (m *Model) handleDrawRecognized(v msg.DrawRecognizedMsg) (tea.Model, tea.Cmd) {
	if v.Token != m.drawToken {
		// Canvas was cleared or resubmitted while this was in flight
		return m, nil
	}
	m.recognizing = false

	if v.Err != nil || len(v.Candidates) == 0 {
		// Recognition degrades silently; the sketch just stays put
		m.log.Warn("canvas recognition failed", "error", v.Err)
		m.status = "no character recognized"
		return m, nil
	}

	// The best candidate joins the drawn-character list, which takes
	// precedence over search and category filters.
	best := v.Candidates[0]
	m.filters.Drawn = append(m.filters.Drawn, best.Rune)
	m.canvas.Clear()
	m.mode = keymap.ModeNormal
	m.status = fmt.Sprintf("recognized %s %s", best.Glyph, best.Hex)
	m.applyFilters()
	return m, nil
}

// openDetail switches to the detail panel for rec and kicks off the
// similar-character and article lookups.
func (m *Model) openDetail(rec codepoint.Record) tea.Cmd {
	m.detail = rec
	m.detailOpen = true
	m.mode = keymap.ModeDetail
	m.similarRecs = nil
	m.similarLoaded = false
	m.articleKnown = false
	m.articleExists = false

	m.resolver.SetCurrent(rec.Rune)
	cmds := []tea.Cmd{msg.ResolveSimilarAsync(m.resolver, rec, false)}
	if m.meta != nil && m.cfg.Meta.ArticleURL != "" {
		cmds = append(cmds, msg.CheckArticleAsync(m.meta, rec))
	}
	return tea.Batch(cmds...)
}

// moveCursor shifts the cursor by delta records, clamped, and may
// trigger grid growth when it lands near the bottom.
func (m *Model) moveCursor(delta int) {
	vis := m.renderer.VisibleCount()
	if vis == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, vis-1)
	m.clampViewport()
}

// cycleCategory steps through "all" plus every category in table order.
func (m *Model) cycleCategory(step int) {
	// catIndex ranges over [-1, len); -1 is "all categories"
	n := len(codepoint.Categories)
	idx := m.catIndex + step
	if idx < -1 {
		idx = n - 1
	}
	if idx >= n {
		idx = -1
	}
	m.setCategory(idx)
}
