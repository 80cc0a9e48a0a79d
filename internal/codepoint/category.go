package codepoint

// Range is an inclusive code point range.
type Range struct {
	Lo rune
	Hi rune
}

// Category is a named set of code point ranges with a stable identifier.
// The table below is loaded once and read-only for the session; categories
// are mutually exclusive by convention, not by construction, so Classify
// resolves overlaps by table order.
type Category struct {
	// ID is the stable internal identifier (e.g., "arrows").
	ID string
	// Name is the human-readable display name (e.g., "Arrows").
	Name string
	// Ranges are the inclusive code point ranges belonging to the category.
	Ranges []Range
}

// Contains reports whether r falls inside one of the category's ranges.
func (c Category) Contains(r rune) bool {
	for _, rg := range c.Ranges {
		if r >= rg.Lo && r <= rg.Hi {
			return true
		}
	}
	return false
}

// Categories is the static category table, in display order. Enumeration
// order of the explorer grid follows this table.
var Categories = []Category{
	{ID: "basic-latin", Name: "Basic Latin", Ranges: []Range{{0x0020, 0x007E}}},
	{ID: "latin-1", Name: "Latin-1 Supplement", Ranges: []Range{{0x00A0, 0x00FF}}},
	{ID: "latin-extended", Name: "Latin Extended", Ranges: []Range{{0x0100, 0x024F}}},
	{ID: "ipa", Name: "IPA Extensions", Ranges: []Range{{0x0250, 0x02AF}}},
	{ID: "greek", Name: "Greek and Coptic", Ranges: []Range{{0x0370, 0x03FF}}},
	{ID: "cyrillic", Name: "Cyrillic", Ranges: []Range{{0x0400, 0x04FF}}},
	{ID: "hebrew", Name: "Hebrew", Ranges: []Range{{0x0590, 0x05FF}}},
	{ID: "arabic", Name: "Arabic", Ranges: []Range{{0x0600, 0x06FF}}},
	{ID: "devanagari", Name: "Devanagari", Ranges: []Range{{0x0900, 0x097F}}},
	{ID: "thai", Name: "Thai", Ranges: []Range{{0x0E00, 0x0E7F}}},
	{ID: "punctuation", Name: "General Punctuation", Ranges: []Range{{0x2000, 0x206F}}},
	{ID: "super-sub", Name: "Superscripts and Subscripts", Ranges: []Range{{0x2070, 0x209F}}},
	{ID: "currency", Name: "Currency Symbols", Ranges: []Range{{0x20A0, 0x20BF}}},
	{ID: "letterlike", Name: "Letterlike Symbols", Ranges: []Range{{0x2100, 0x214F}}},
	{ID: "number-forms", Name: "Number Forms", Ranges: []Range{{0x2150, 0x218B}}},
	{ID: "arrows", Name: "Arrows", Ranges: []Range{{0x2190, 0x21FF}, {0x27F0, 0x27FF}, {0x2900, 0x297F}}},
	{ID: "math", Name: "Mathematical Operators", Ranges: []Range{{0x2200, 0x22FF}, {0x2A00, 0x2AFF}}},
	{ID: "technical", Name: "Miscellaneous Technical", Ranges: []Range{{0x2300, 0x23FF}}},
	{ID: "enclosed", Name: "Enclosed Alphanumerics", Ranges: []Range{{0x2460, 0x24FF}}},
	{ID: "box-drawing", Name: "Box Drawing", Ranges: []Range{{0x2500, 0x257F}}},
	{ID: "blocks", Name: "Block Elements", Ranges: []Range{{0x2580, 0x259F}}},
	{ID: "shapes", Name: "Geometric Shapes", Ranges: []Range{{0x25A0, 0x25FF}}},
	{ID: "misc-symbols", Name: "Miscellaneous Symbols", Ranges: []Range{{0x2600, 0x26FF}}},
	{ID: "dingbats", Name: "Dingbats", Ranges: []Range{{0x2700, 0x27BF}}},
	{ID: "braille", Name: "Braille Patterns", Ranges: []Range{{0x2800, 0x28FF}}},
	{ID: "hiragana", Name: "Hiragana", Ranges: []Range{{0x3040, 0x309F}}},
	{ID: "katakana", Name: "Katakana", Ranges: []Range{{0x30A0, 0x30FF}}},
	{ID: "cjk", Name: "CJK Unified Ideographs", Ranges: []Range{{0x4E00, 0x9FFF}}},
	{ID: "hangul", Name: "Hangul Syllables", Ranges: []Range{{0xAC00, 0xD7A3}}},
	{ID: "fullwidth", Name: "Halfwidth and Fullwidth Forms", Ranges: []Range{{0xFF00, 0xFFEF}}},
	{ID: "emoticons", Name: "Emoticons", Ranges: []Range{{0x1F600, 0x1F64F}}},
	{ID: "misc-pictographs", Name: "Miscellaneous Symbols and Pictographs", Ranges: []Range{{0x1F300, 0x1F5FF}}},
	{ID: "transport", Name: "Transport and Map Symbols", Ranges: []Range{{0x1F680, 0x1F6FF}}},
	{ID: "supplemental-symbols", Name: "Supplemental Symbols and Pictographs", Ranges: []Range{{0x1F900, 0x1F9FF}}},
	{ID: "symbols-extended", Name: "Symbols and Pictographs Extended-A", Ranges: []Range{{0x1FA70, 0x1FAFF}}},
}

// Classify returns the first category in the table whose ranges contain
// r, or false if no category claims it. Callers are responsible for
// excluding invalid code points before calling.
func Classify(r rune) (Category, bool) {
	for _, c := range Categories {
		if c.Contains(r) {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByID looks up a category by its stable identifier.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
