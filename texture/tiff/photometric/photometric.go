// Package photometric names the TIFF photometric interpretation codes.
package photometric

const (
	WhiteIsZero = 0
	BlackIsZero = 1
	RGB         = 2
	Palette     = 3
)
