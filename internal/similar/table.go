package similar

// precomputed maps a code point to code points that render confusably
// close to it, ranked by similarity. Lookups that miss this table fall
// back to the recognition service.
var precomputed = map[rune][]rune{
	'0':     {'O', 'o', 0x039F, 0x041E, 0x2B58},
	'1':     {'l', 'I', '|', 0x0661},
	'A':     {0x0391, 0x0410, 0x13AA, 0x15C5},
	'B':     {0x0392, 0x0412, 0x13F4, 0x0299},
	'C':     {0x03F9, 0x0421, 0x13DF, 0x216D},
	'E':     {0x0395, 0x0415, 0x13AC, 0x2130},
	'H':     {0x0397, 0x041D, 0x13BB, 0x210B},
	'I':     {'l', '1', '|', 0x0399, 0x0406},
	'K':     {0x039A, 0x041A, 0x13E6, 0x212A},
	'M':     {0x039C, 0x041C, 0x13B7, 0x2133},
	'O':     {'0', 0x039F, 0x041E, 0x2B58, 0x25CB},
	'P':     {0x03A1, 0x0420, 0x13E2, 0x2119},
	'S':     {0x0405, 0x13D5, 0x10BD},
	'T':     {0x03A4, 0x0422, 0x13A2},
	'X':     {0x03A7, 0x0425, 0x2169, 0x2573},
	'l':     {'1', 'I', '|', 0x0406, 0x04C0},
	'o':     {'0', 0x03BF, 0x043E, 0x0D20},
	'|':     {'l', '1', 'I', 0x01C0, 0x2223},
	'-':     {0x2010, 0x2012, 0x2013, 0x2212},
	0x00D7:  {'x', 0x2715, 0x2A2F},       // multiplication sign
	0x2013:  {'-', 0x2014, 0x2212},       // en dash
	0x2019:  {'\'', 0x0060, 0x00B4},      // right single quote
	0x2022:  {0x00B7, 0x2219, 0x25CF},    // bullet
	0x2192:  {0x279C, 0x27F6, 0x21D2},    // rightwards arrow
	0x25A0:  {0x25AA, 0x2B1B, 0x220E},    // black square
	0x25CF:  {0x2B24, 0x26AB, 0x2022},    // black circle
	0x2605:  {0x2606, 0x2729, 0x2B50},    // black star
	0x2713:  {0x2714, 0x1F5F8},           // check mark
	0x1F600: {0x1F601, 0x1F603, 0x1F604}, // grinning face
	0x1F642: {0x1F60A, 0x263A, 0x1F600},  // slightly smiling face
}

// Precomputed returns the static similar-character list for r and whether
// the table has an entry.
func Precomputed(r rune) ([]rune, bool) {
	similar, ok := precomputed[r]
	return similar, ok
}
