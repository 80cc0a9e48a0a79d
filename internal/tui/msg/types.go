package msg

import (
	"github.com/runegrid/runegrid/internal/codepoint"
)

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// SimilarResultMsg carries resolved look-alike characters for one rune.
// ForRune identifies the request; the model drops the message if the
// detail panel has moved on to a different character.
type SimilarResultMsg struct {
	ForRune rune
	Records []codepoint.Record
	Err     error
}

// DrawRecognizedMsg carries recognition candidates for a canvas sketch.
// Token identifies the submission; a stale token means the canvas was
// cleared or redrawn while the request was in flight.
type DrawRecognizedMsg struct {
	Token      int
	Candidates []codepoint.Record
	Err        error
}

// ArticleMsg reports whether a reference article exists for a rune.
type ArticleMsg struct {
	ForRune rune
	Exists  bool
}

// StarsMsg carries the project star count. OK is false when the lookup
// failed; the UI then simply omits the counter.
type StarsMsg struct {
	Count int
	OK    bool
}

// ExportDoneMsg reports the outcome of an export run.
type ExportDoneMsg struct {
	Paths []string
	Err   error
}

// ScrollSettledMsg fires after the scroll debounce interval so the grid
// can grow at most once per burst of scroll events.
type ScrollSettledMsg struct{}
