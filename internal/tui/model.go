// Package tui implements the interactive Runegrid terminal UI: a
// scrollable glyph grid with category browsing, live search, type
// filters, freehand glyph drawing, a character detail panel, and
// selection-based image export.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/config"
	"github.com/runegrid/runegrid/internal/export"
	"github.com/runegrid/runegrid/internal/filter"
	"github.com/runegrid/runegrid/internal/grid"
	"github.com/runegrid/runegrid/internal/logging"
	"github.com/runegrid/runegrid/internal/meta"
	"github.com/runegrid/runegrid/internal/recognition"
	"github.com/runegrid/runegrid/internal/search"
	"github.com/runegrid/runegrid/internal/selection"
	"github.com/runegrid/runegrid/internal/similar"
	"github.com/runegrid/runegrid/internal/tui/keymap"
	"github.com/runegrid/runegrid/internal/tui/msg"
	"github.com/runegrid/runegrid/internal/tui/styles"
)

// Model is the top-level Bubble Tea model for the explorer.
type Model struct {
	cfg  *config.Config
	log  *logging.Logger
	keys *keymap.Keymap

	mode     keymap.Mode
	prevMode keymap.Mode

	index     *search.Index
	filters   filter.State
	renderer  *grid.Renderer
	selection *selection.Set
	resolver  *similar.Resolver
	recog     *recognition.Client
	exporter  *export.Exporter
	meta      *meta.Client

	searchInput textinput.Model
	canvas      *Canvas
	drawToken   int
	recognizing bool

	// Grid cursor and viewport, both in record indices over the
	// renderer's visible slice.
	cursor  int
	topRow  int
	columns int
	width   int
	height  int

	// catIndex cycles through codepoint.Categories; -1 means all.
	catIndex int

	detail        codepoint.Record
	detailOpen    bool
	similarRecs   []codepoint.Record
	similarLoaded bool
	articleKnown  bool
	articleExists bool

	stars   int
	starsOK bool

	status string
	err    error
}

// NewModel constructs the explorer model and all of its collaborators
// from configuration.
func NewModel(cfg *config.Config, log *logging.Logger) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NopLogger()
	}
	log = log.WithComponent("tui")

	if cfg.TUI.Theme == "mono" {
		styles.UseMonochrome()
	}

	var recog *recognition.Client
	var recognizer similar.Recognizer
	if cfg.Recognition.URL != "" {
		recog = recognition.NewClient(
			cfg.Recognition.URL,
			time.Duration(cfg.Recognition.TimeoutMs)*time.Millisecond,
			log,
		)
		recognizer = recog
	}

	var metaClient *meta.Client
	if cfg.Meta.ArticleURL != "" || cfg.Meta.RepoAPIURL != "" {
		metaClient = meta.NewClient(
			cfg.Meta.ArticleURL,
			cfg.Meta.RepoAPIURL,
			time.Duration(cfg.Meta.TimeoutMs)*time.Millisecond,
			log,
		)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "name, glyph, hex or decimal"
	input.CharLimit = 64

	m := &Model{
		cfg:  cfg,
		log:  log,
		keys: keymap.DefaultKeymap(),
		mode: keymap.ModeNormal,

		index:   search.NewIndex(),
		filters: filter.NewState(),
		renderer: grid.NewRenderer(grid.Config{
			BatchSize:         cfg.Grid.BatchSize,
			BottomMargin:      cfg.Grid.BottomMargin,
			FilterChangeRatio: cfg.Grid.FilterChangeRatio,
			OffsetThreshold:   cfg.Grid.ScrollOffsetThreshold,
		}),
		selection: selection.NewSet(),
		resolver:  similar.NewResolver(recognizer, log),
		recog:     recog,
		exporter:  export.New(cfg.Export.Dir, cfg.Export.Font, log),
		meta:      metaClient,

		searchInput: input,
		canvas:      NewCanvas(cfg.TUI.CanvasSize),
		columns:     cfg.TUI.GridColumns,
		catIndex:    -1,
	}
	m.applyFilters()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.meta != nil && m.cfg.Meta.RepoAPIURL != "" {
		return msg.FetchStarsAsync(m.meta)
	}
	return nil
}

// visible returns the records the grid currently renders.
func (m *Model) visible() []codepoint.Record {
	return m.renderer.Visible()
}

// cursorRecord returns the record under the cursor, if any.
func (m *Model) cursorRecord() (codepoint.Record, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return codepoint.Record{}, false
	}
	return vis[m.cursor], true
}

// applyFilters reruns the filter pipeline and hands the result to the
// incremental renderer, restoring or resetting the cursor according to
// the transition kind.
func (m *Model) applyFilters() {
	candidates := filter.Apply(m.filters, m.index, m.selection.Records())
	transition, restoreOffset := m.renderer.SetCandidates(candidates)

	vis := m.renderer.VisibleCount()
	switch transition {
	case grid.TransitionFilterChange:
		// Restore the scroll window and pull the cursor into it.
		m.topRow = restoreOffset / m.columns
		maxTop := (vis - 1) / m.columns
		m.topRow = clamp(m.topRow, 0, maxTop)
		m.cursor = clamp(m.cursor, m.topRow*m.columns, vis-1)
	default:
		m.cursor = 0
		m.topRow = 0
	}
	if vis == 0 {
		m.cursor = 0
		m.topRow = 0
	}
}

// gridRows returns how many grid rows fit the current viewport.
func (m *Model) gridRows() int {
	// Header, status bar and help bar eat a fixed number of lines.
	rows := m.height - 7
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampViewport keeps the cursor inside the visible window, scrolling
// the window as needed and reporting scroll positions to the renderer.
func (m *Model) clampViewport() {
	vis := m.renderer.VisibleCount()
	if vis == 0 {
		return
	}
	m.cursor = clamp(m.cursor, 0, vis-1)

	rows := m.gridRows()
	cursorRow := m.cursor / m.columns
	if cursorRow < m.topRow {
		m.topRow = cursorRow
	}
	if cursorRow >= m.topRow+rows {
		m.topRow = cursorRow - rows + 1
	}
	m.renderer.RecordScroll(m.topRow * m.columns)
}

// maybeGrow asks the renderer whether scrolling came close enough to
// the bottom to append another batch. Growth is debounced: the actual
// append happens when the settle message arrives.
func (m *Model) maybeGrow() tea.Cmd {
	rows := m.gridRows()
	offset := m.topRow * m.columns
	viewport := rows * m.columns
	if m.renderer.HandleScroll(offset, viewport, m.renderer.VisibleCount()) {
		return msg.SettleScroll()
	}
	return nil
}

// setCategory selects exactly one category by index into
// codepoint.Categories, or all categories for -1.
func (m *Model) setCategory(idx int) {
	m.catIndex = idx
	m.filters.CategoryIDs = make(map[string]bool)
	if idx >= 0 && idx < len(codepoint.Categories) {
		m.filters.CategoryIDs[codepoint.Categories[idx].ID] = true
	}
	m.applyFilters()
}
