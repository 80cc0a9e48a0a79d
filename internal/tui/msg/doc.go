// Package msg defines the Bubble Tea message types exchanged by the
// Runegrid TUI, plus the command factories that produce them.
//
// All slow work (recognition requests, metadata lookups, image export)
// runs inside tea.Cmd closures so the event loop never blocks. Results
// carry enough identity (the rune or a token) for the model to discard
// answers that arrive after the question changed.
package msg
