package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDeepBlue
	ColorTeal
	ColorPink
)

// paletteRGB holds the approximate RGB value of each named color.
// Used to map scene hex colors onto the terminal palette.
var paletteRGB = []struct {
	color   Color
	r, g, b int
}{
	{ColorRed, 0xcc, 0x22, 0x22},
	{ColorGreen, 0x33, 0x99, 0x33},
	{ColorYellow, 0xcc, 0xaa, 0x00},
	{ColorBlue, 0x33, 0x66, 0xcc},
	{ColorMagenta, 0xcc, 0x33, 0x99},
	{ColorCyan, 0x00, 0xaa, 0xaa},
	{ColorWhite, 0xcc, 0xcc, 0xcc},
	{ColorBrightRed, 0xff, 0x44, 0x44},
	{ColorBrightGreen, 0x66, 0xff, 0x66},
	{ColorBrightYellow, 0xff, 0xee, 0x44},
	{ColorBrightBlue, 0x66, 0x99, 0xff},
	{ColorBrightMagenta, 0xff, 0x66, 0xff},
	{ColorBrightCyan, 0x44, 0xff, 0xff},
	{ColorBrightWhite, 0xff, 0xff, 0xff},
	{ColorOrange, 0xff, 0x88, 0x00},
	{ColorGray, 0x88, 0x88, 0x88},
	{ColorDeepBlue, 0x00, 0x33, 0x66},
	{ColorTeal, 0x00, 0x88, 0x88},
	{ColorPink, 0xff, 0x99, 0xcc},
}

// ColorFromHex returns the palette color closest to a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	r := int(hex>>16) & 0xff
	g := int(hex>>8) & 0xff
	b := int(hex) & 0xff

	best := ColorDefault
	bestDist := -1
	for _, p := range paletteRGB {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best = p.color
			bestDist = dist
		}
	}
	return best
}
