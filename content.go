package fat

import "log/slog"

// synthesizeContent calls through to the routed file's [ContentGenerator]
// (spec.md §4.C "User content generator"). A nil generator (declared but
// contentless file, e.g. a zero-length file whose cache range is empty in
// practice) falls back to zero-filling one sector.
func (d *Disk) synthesizeContent(relative uint32, maxCount int, buf []byte) int {
	gen := d.cache.contents
	if gen == nil {
		d.trace("content:nil-generator", slog.Int("relative", int(relative)))
		return synthesizeNull(buf, d.sectorSize, 1)
	}
	n := gen(d.cache.reference, int(relative), maxCount, buf[:maxCount*int(d.sectorSize)])
	if n <= 0 {
		d.warn("content:empty", slog.Int("relative", int(relative)))
	}
	return n
}
