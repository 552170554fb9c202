package fat

// synthesizeNull zero-fills up to maxCount sectors and reports how many it
// produced. It is the only synthesizer that advertises contiguous
// multi-sector production (spec.md §4.C "Null synthesizer"); every other
// synthesizer produces exactly one sector per call.
func synthesizeNull(buf []byte, sectorSize uint16, maxCount int) int {
	n := maxCount
	if avail := len(buf) / int(sectorSize); avail < n {
		n = avail
	}
	total := n * int(sectorSize)
	for i := 0; i < total; i++ {
		buf[i] = 0
	}
	return n
}
