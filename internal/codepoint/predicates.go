package codepoint

import "unicode"

// emojiTable covers the pictographic blocks the explorer treats as emoji.
// Emoji is an orthogonal axis: a code point can satisfy IsEmoji and still
// fail the other three predicates, and the filter pipeline gives the emoji
// axis priority over them.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // Miscellaneous Symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // Dingbats
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1}, // heavy arrows used as emoji
		{Lo: 0x2B50, Hi: 0x2B55, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // extended pictographs
	},
}

// IsCharacter reports whether r is a letter, combining mark, or letter
// number. Letter numbers (Nl, the roman numerals) read as characters even
// though IsNumber claims them too; the predicates are independent axes.
func IsCharacter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.Is(unicode.Nl, r)
}

// IsSymbol reports whether r is a symbol or punctuation code point.
func IsSymbol(r rune) bool {
	return unicode.IsSymbol(r) || unicode.IsPunct(r)
}

// IsNumber reports whether r is a numeric code point.
func IsNumber(r rune) bool {
	return unicode.IsNumber(r)
}

// IsEmoji reports whether r belongs to one of the emoji blocks.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}
