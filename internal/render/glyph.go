package render

import "fmt"

// Glyph - символ клетки и его цвет в одном uint32:
//
//	[0:8]  - ASCII символ
//	[8:32] - RGB-цвет 0xRRGGBB
type Glyph uint32

const (
	bitsChar   = 8
	bitsColor  = 24
	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph упаковывает цвет (младшие 24 бита) и символ
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// ANSI возвращает символ в 24-битной ANSI-раскраске для терминала
func (g Glyph) ANSI() string {
	c := g.Color()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c\x1b[0m", c>>16&0xFF, c>>8&0xFF, c&0xFF, g.Char())
}

// String - формат "Glyph{char='A', color=#FFA500}", непечатаемые символы в hex
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=#%06X}", charStr, g.Color())
}
