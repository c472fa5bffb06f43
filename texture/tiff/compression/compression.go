// Package compression names the TIFF compression scheme codes.
package compression

const (
	None     = 1
	LZW      = 5
	Deflate  = 8
	PackBits = 32773
)
