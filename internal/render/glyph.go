package render

// glyph is a 3x5 bitmap: five rows, each row's three low bits are columns
// left-to-right (bit 2 = leftmost column). This table is the canonical source for the
// preview-rendering contract (§6): any independent consumer reproducing framebuffers
// pixel-for-pixel from a LayoutPayload must use this exact table.
type glyph [5]uint8

const glyphWidth = 3
const glyphAdvance = glyphWidth + 1 // 1px spacing between characters

var glyphs = map[rune]glyph{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b010, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b111, 0b100, 0b111},
	'F': {0b111, 0b100, 0b111, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b111},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b111, 0b101},
	'O': {0b111, 0b101, 0b101, 0b101, 0b111},
	'P': {0b111, 0b101, 0b111, 0b100, 0b100},
	'Q': {0b111, 0b101, 0b101, 0b111, 0b001},
	'R': {0b111, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b111, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'%': {0b101, 0b001, 0b010, 0b100, 0b101},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
}

// lowercase a-z share the uppercase glyphs: the 3x5 grid has no room for distinct case,
// the way small pixel fonts commonly fold case (see spec §4.2's "[0-9 A-Z a-z %:/- ]").
func init() {
	for r := rune('a'); r <= 'z'; r++ {
		glyphs[r] = glyphs[r-32]
	}
}

// glyphFor returns the bitmap for r, and whether r is a known glyph. Unknown runes
// still advance the cursor by glyphAdvance but draw nothing (§4.2).
func glyphFor(r rune) (glyph, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// TextWidth returns the pixel width text would occupy when drawn with DrawText.
func TextWidth(text string) int {
	if len(text) == 0 {
		return 0
	}
	return len(text)*glyphAdvance - 1 // no trailing spacing after the last glyph
}
