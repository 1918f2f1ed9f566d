// Package parallel runs per-row post-processing of a frame on a pool of
// goroutines.
//
// A frame is split into horizontal bands of whole rows. Each band is owned
// by exactly one task, so tasks never write the same pixel and need no
// synchronization beyond waiting for the batch to finish.
package parallel

// MinBandRows is the smallest band Bands produces, unless the frame itself
// is shorter.
const MinBandRows = 8

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Index int
	Y0    int
	Y1    int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into at most n contiguous bands of nearly equal
// size, none shorter than MinBandRows (except when height is). The bands
// cover [0, height) exactly once and are returned top to bottom.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height/MinBandRows))
	bands := make([]Band, n)
	base, extra := height/n, height%n
	y := 0
	for i := range bands {
		rows := base
		if i < extra {
			rows++
		}
		bands[i] = Band{Index: i, Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}
