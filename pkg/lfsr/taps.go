package lfsr

// primitiveTaps maps register width to the feedback tap mask of a primitive
// polynomial, guaranteeing a maximal period of 2^width − 1. Mask bit k marks
// register bit k as a feedback tap. Indices 0-2 are unused placeholders.
var primitiveTaps = [17]uint16{
	0x0000, // width 0 (unused)
	0x0000, // width 1 (unused)
	0x0000, // width 2 (unused)
	0x0003, // width 3:  taps 1, 0
	0x0009, // width 4:  taps 3, 0
	0x0012, // width 5:  taps 4, 1
	0x0021, // width 6:  taps 5, 0
	0x0041, // width 7:  taps 6, 0
	0x008E, // width 8:  taps 7, 3, 2, 1
	0x0108, // width 9:  taps 8, 3
	0x0204, // width 10: taps 9, 2
	0x0402, // width 11: taps 10, 1
	0x0829, // width 12: taps 11, 5, 3, 0
	0x100D, // width 13: taps 12, 3, 2, 0
	0x2015, // width 14: taps 13, 4, 2, 0
	0x4001, // width 15: taps 14, 0
	0x8016, // width 16: taps 15, 4, 2, 1
}

// MinWidth and MaxWidth bound the supported register sizes. The tap table
// ships entries for exactly this range.
const (
	MinWidth = 3
	MaxWidth = 16
)

// TapsForWidth returns the shipped primitive tap mask for the given width,
// or false if the width is unsupported.
func TapsForWidth(width int) (uint16, bool) {
	if width < MinWidth || width > MaxWidth {
		return 0, false
	}
	return primitiveTaps[width], true
}
