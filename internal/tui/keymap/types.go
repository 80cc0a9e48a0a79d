// Package keymap provides key binding definitions and lookup for the TUI.
// It keeps key handling out of the model's Update method by expressing
// bindings as a declarative, mode-aware configuration.
package keymap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal Mode = "normal" // Browsing the glyph grid
	ModeSearch Mode = "search" // Typing a search query (after /)
	ModeDraw   Mode = "draw"   // Sketching a glyph on the cell canvas
	ModeDetail Mode = "detail" // Character detail panel open
	ModeHelp   Mode = "help"   // Help overlay open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Grid navigation
	CmdCursorLeft  Command = "cursor_left"
	CmdCursorRight Command = "cursor_right"
	CmdCursorUp    Command = "cursor_up"
	CmdCursorDown  Command = "cursor_down"
	CmdPageUp      Command = "page_up"
	CmdPageDown    Command = "page_down"
	CmdJumpTop     Command = "jump_top"
	CmdJumpBottom  Command = "jump_bottom"

	// Category navigation
	CmdNextCategory Command = "next_category"
	CmdPrevCategory Command = "prev_category"

	// Type filter toggles
	CmdToggleCharacters Command = "toggle_characters"
	CmdToggleSymbols    Command = "toggle_symbols"
	CmdToggleNumbers    Command = "toggle_numbers"
	CmdToggleEmojis     Command = "toggle_emojis"
	CmdClearFilters     Command = "clear_filters"

	// Selection
	CmdToggleSelect   Command = "toggle_select"
	CmdSelectAll      Command = "select_all"
	CmdClearSelection Command = "clear_selection"

	// Export and clipboard
	CmdExportSVG     Command = "export_svg"
	CmdExportPNG     Command = "export_png"
	CmdCopySelection Command = "copy_selection"

	// Mode entry
	CmdEnterSearchMode Command = "enter_search_mode"
	CmdEnterDrawMode   Command = "enter_draw_mode"
	CmdOpenDetail      Command = "open_detail"
	CmdToggleHelp      Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// Search mode commands (text editing)
const (
	CmdCancelSearch  Command = "cancel_search"
	CmdExecuteSearch Command = "execute_search"
	CmdDeleteBack    Command = "delete_back"
	CmdInsertSpace   Command = "insert_space"
	CmdInsertChar    Command = "insert_char"
)

// Draw mode commands
const (
	CmdPenLeft      Command = "pen_left"
	CmdPenRight     Command = "pen_right"
	CmdPenUp        Command = "pen_up"
	CmdPenDown      Command = "pen_down"
	CmdPenDragLeft  Command = "pen_drag_left"
	CmdPenDragRight Command = "pen_drag_right"
	CmdPenDragUp    Command = "pen_drag_up"
	CmdPenDragDown  Command = "pen_drag_down"
	CmdPenToggle    Command = "pen_toggle"
	CmdCanvasClear  Command = "canvas_clear"
	CmdCanvasSubmit Command = "canvas_submit"
	CmdExitDraw     Command = "exit_draw"
)

// Detail panel commands
const (
	CmdDetailClose      Command = "detail_close"
	CmdDetailPrev       Command = "detail_prev"
	CmdDetailNext       Command = "detail_next"
	CmdDetailSimilar    Command = "detail_similar"
	CmdDetailExportSVG  Command = "detail_export_svg"
	CmdDetailExportPNG  Command = "detail_export_png"
	CmdDetailCopyGlyph  Command = "detail_copy_glyph"
	CmdDetailCopyHex    Command = "detail_copy_hex"
	CmdDetailCopyEntity Command = "detail_copy_entity"
	CmdDetailCopyCSS    Command = "detail_copy_css"
)

// Help overlay commands
const (
	CmdCloseHelp Command = "close_help"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For special keys, use tea.KeyType constants (e.g., tea.KeyEnter).
	// For rune keys, use tea.KeyRunes and set Rune field.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	// A zero Rune is a catch-all that matches any rune.
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// If Rune is 0, this is a catch-all binding for any rune
	if kb.Rune == 0 {
		return true
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	case 0:
		return prefix + "any"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Bindings are checked in order; the first match wins.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap (e.g., "default").
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
// Useful for displaying "Press X or Y to do Z" in help.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetBindingsByCategory returns bindings grouped by category for a mode.
func (km *Keymap) GetBindingsByCategory(mode Mode) map[string][]KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	result := make(map[string][]KeyBinding)
	for _, binding := range mb.Bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and
// Modifiers. Examples: "ctrl+r", "j", "enter", "alt+left"
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := spec
	for {
		switch {
		case len(remaining) > 5 && remaining[:5] == "ctrl+":
			mods |= ModCtrl
			remaining = remaining[5:]
		case len(remaining) > 4 && remaining[:4] == "alt+":
			mods |= ModAlt
			remaining = remaining[4:]
		case len(remaining) > 6 && remaining[:6] == "shift+":
			mods |= ModShift
			remaining = remaining[6:]
		default:
			goto parseKey
		}
	}

parseKey:
	switch remaining {
	case "enter":
		return tea.KeyEnter, 0, mods, nil
	case "tab":
		if mods&ModShift != 0 {
			return tea.KeyShiftTab, 0, mods &^ ModShift, nil
		}
		return tea.KeyTab, 0, mods, nil
	case "esc", "escape":
		return tea.KeyEsc, 0, mods, nil
	case "space":
		return tea.KeySpace, 0, mods, nil
	case "backspace":
		return tea.KeyBackspace, 0, mods, nil
	case "delete":
		return tea.KeyDelete, 0, mods, nil
	case "up":
		return tea.KeyUp, 0, mods, nil
	case "down":
		return tea.KeyDown, 0, mods, nil
	case "left":
		return tea.KeyLeft, 0, mods, nil
	case "right":
		return tea.KeyRight, 0, mods, nil
	case "home":
		return tea.KeyHome, 0, mods, nil
	case "end":
		return tea.KeyEnd, 0, mods, nil
	case "pgup", "pageup":
		return tea.KeyPgUp, 0, mods, nil
	case "pgdown", "pagedown":
		return tea.KeyPgDown, 0, mods, nil
	}

	// Handle ctrl+letter combinations
	if mods&ModCtrl != 0 && len(remaining) == 1 {
		ch := remaining[0]
		if ch >= 'a' && ch <= 'z' {
			ctrlKey := tea.KeyCtrlA + tea.KeyType(ch-'a')
			return ctrlKey, 0, mods &^ ModCtrl, nil
		}
	}

	// Single character - it's a rune
	if len(remaining) == 1 {
		return tea.KeyRunes, rune(remaining[0]), mods, nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
}
