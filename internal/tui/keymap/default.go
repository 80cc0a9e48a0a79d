package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default key binding configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default Runegrid key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeSearch: defaultSearchBindings(),
			ModeDraw:   defaultDrawBindings(),
			ModeDetail: defaultDetailBindings(),
			ModeHelp:   defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Grid navigation
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdCursorLeft, Description: "Move left", Category: "Navigation"},
			{KeyType: tea.KeyLeft, Command: CmdCursorLeft, Description: "Move left", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdCursorRight, Description: "Move right", Category: "Navigation"},
			{KeyType: tea.KeyRight, Command: CmdCursorRight, Description: "Move right", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Move up", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Move down", Category: "Navigation"},
			{KeyType: tea.KeyPgUp, Command: CmdPageUp, Description: "Page up", Category: "Navigation"},
			{KeyType: tea.KeyCtrlB, Command: CmdPageUp, Description: "Page up", Category: "Navigation"},
			{KeyType: tea.KeyPgDown, Command: CmdPageDown, Description: "Page down", Category: "Navigation"},
			{KeyType: tea.KeyCtrlF, Command: CmdPageDown, Description: "Page down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdJumpTop, Description: "Go to top", Category: "Navigation"},
			{KeyType: tea.KeyHome, Command: CmdJumpTop, Description: "Go to top", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdJumpBottom, Description: "Go to bottom", Category: "Navigation"},
			{KeyType: tea.KeyEnd, Command: CmdJumpBottom, Description: "Go to bottom", Category: "Navigation"},

			// Category navigation
			{KeyType: tea.KeyTab, Command: CmdNextCategory, Description: "Next category", Category: "Categories"},
			{KeyType: tea.KeyRunes, Rune: ']', Command: CmdNextCategory, Description: "Next category", Category: "Categories"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevCategory, Description: "Previous category", Category: "Categories"},
			{KeyType: tea.KeyRunes, Rune: '[', Command: CmdPrevCategory, Description: "Previous category", Category: "Categories"},

			// Type filter toggles
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdToggleCharacters, Description: "Toggle characters", Category: "Filters"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdToggleSymbols, Description: "Toggle symbols", Category: "Filters"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdToggleNumbers, Description: "Toggle numbers", Category: "Filters"},
			{KeyType: tea.KeyRunes, Rune: '4', Command: CmdToggleEmojis, Description: "Toggle emoji", Category: "Filters"},
			{KeyType: tea.KeyEsc, Command: CmdClearFilters, Description: "Clear filters", Category: "Filters"},

			// Selection
			{KeyType: tea.KeySpace, Command: CmdToggleSelect, Description: "Select character", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdSelectAll, Description: "Select all visible", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdClearSelection, Description: "Clear selection", Category: "Selection"},

			// Export and clipboard
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdExportSVG, Description: "Export selection as SVG", Category: "Export"},
			{KeyType: tea.KeyRunes, Rune: 'E', Command: CmdExportPNG, Description: "Export selection as PNG", Category: "Export"},
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdCopySelection, Description: "Copy selected glyphs", Category: "Export"},

			// Mode entry
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterSearchMode, Description: "Search", Category: "Modes"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdEnterDrawMode, Description: "Draw a glyph", Category: "Modes"},
			{KeyType: tea.KeyEnter, Command: CmdOpenDetail, Description: "Character detail", Category: "Modes"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Modes"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultSearchBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSearch,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdCancelSearch, Description: "Cancel search", Category: "Control"},
			{KeyType: tea.KeyEnter, Command: CmdExecuteSearch, Description: "Confirm search", Category: "Control"},
			{KeyType: tea.KeyBackspace, Command: CmdDeleteBack, Description: "Delete character (live search)", Category: "Editing"},
			{KeyType: tea.KeySpace, Command: CmdInsertSpace, Description: "Add space", Category: "Editing"},
			{KeyType: tea.KeyRunes, Command: CmdInsertChar, Description: "Add character (live search)", Category: "Editing"},
		},
	}
}

func defaultDrawBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeDraw,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPenLeft, Description: "Pen left", Category: "Canvas"},
			{KeyType: tea.KeyLeft, Command: CmdPenLeft, Description: "Pen left", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdPenRight, Description: "Pen right", Category: "Canvas"},
			{KeyType: tea.KeyRight, Command: CmdPenRight, Description: "Pen right", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdPenUp, Description: "Pen up", Category: "Canvas"},
			{KeyType: tea.KeyUp, Command: CmdPenUp, Description: "Pen up", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdPenDown, Description: "Pen down", Category: "Canvas"},
			{KeyType: tea.KeyDown, Command: CmdPenDown, Description: "Pen down", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'H', Command: CmdPenDragLeft, Description: "Drag pen left, inking", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'L', Command: CmdPenDragRight, Description: "Drag pen right, inking", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'K', Command: CmdPenDragUp, Description: "Drag pen up, inking", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'J', Command: CmdPenDragDown, Description: "Drag pen down, inking", Category: "Canvas"},
			{KeyType: tea.KeySpace, Command: CmdPenToggle, Description: "Toggle cell", Category: "Canvas"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdCanvasClear, Description: "Clear canvas", Category: "Canvas"},
			{KeyType: tea.KeyEnter, Command: CmdCanvasSubmit, Description: "Recognize drawing", Category: "Canvas"},
			{KeyType: tea.KeyEsc, Command: CmdExitDraw, Description: "Exit draw mode", Category: "Control"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdExitDraw, Description: "Exit draw mode", Category: "Control"},
		},
	}
}

func defaultDetailBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeDetail,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdDetailClose, Description: "Close detail", Category: "Control"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdDetailClose, Description: "Close detail", Category: "Control"},
			{KeyType: tea.KeyEnter, Command: CmdDetailClose, Description: "Close detail", Category: "Control"},
			{KeyType: tea.KeyLeft, Command: CmdDetailPrev, Description: "Previous character", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdDetailPrev, Description: "Previous character", Category: "Navigation"},
			{KeyType: tea.KeyRight, Command: CmdDetailNext, Description: "Next character", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdDetailNext, Description: "Next character", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdDetailSimilar, Description: "Find similar (online)", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdDetailExportSVG, Description: "Export as SVG", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'E', Command: CmdDetailExportPNG, Description: "Export as PNG", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdDetailCopyGlyph, Description: "Copy glyph", Category: "Clipboard"},
			{KeyType: tea.KeyRunes, Rune: 'Y', Command: CmdDetailCopyHex, Description: "Copy code point", Category: "Clipboard"},
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdDetailCopyEntity, Description: "Copy HTML entity", Category: "Clipboard"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdDetailCopyCSS, Description: "Copy CSS escape", Category: "Clipboard"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdCloseHelp, Description: "Close help", Category: "Control"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCloseHelp, Description: "Close help", Category: "Control"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdCloseHelp, Description: "Close help", Category: "Control"},
		},
	}
}
