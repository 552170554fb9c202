package fat

// Attr holds the FAT directory-entry attribute bits (spec.md §3, dirAttrOff).
type Attr uint8

const (
	AttrReadOnly Attr = 1 << iota
	AttrHidden
	AttrSystem
	AttrVolumeLabel
	AttrDirectory
	AttrArchive
)

// PackedDateTime is the project's own 32-bit packed timestamp (spec.md §6):
//
//	bit 31 .. 26  year, offset from 2000 (6 bits)
//	bit 25 .. 22  month                  (4 bits)
//	bit 21 .. 17  day                    (5 bits)
//	bit 16 .. 12  hour                   (5 bits)
//	bit 11 .. 6   minute                 (6 bits)
//	bit  5 .. 0   second                 (6 bits)
//
// FileInfo.Created/Modified/Accessed are expressed in this format, not the
// FAT on-wire format; the reserved and directory synthesizers convert to
// the wire format when they write a sector.
type PackedDateTime uint32

// NewPackedDateTime packs a calendar date and time of day into the project's
// internal 32-bit timestamp. Years before 2000 or after 2063 saturate to the
// nearest representable value; seconds are truncated to an even value
// (matching the FAT on-wire 2-second resolution) only when converted with
// [PackedDateTime.fatTime], not here.
func NewPackedDateTime(year, month, day, hour, minute, second int) PackedDateTime {
	y := year - 2000
	if y < 0 {
		y = 0
	} else if y > 63 {
		y = 63
	}
	return PackedDateTime(
		uint32(y&0x3F)<<26 |
			uint32(month&0xF)<<22 |
			uint32(day&0x1F)<<17 |
			uint32(hour&0x1F)<<12 |
			uint32(minute&0x3F)<<6 |
			uint32(second&0x3F),
	)
}

func (dt PackedDateTime) year() int   { return int(dt>>26&0x3F) + 2000 }
func (dt PackedDateTime) month() int  { return int(dt >> 22 & 0xF) }
func (dt PackedDateTime) day() int    { return int(dt >> 17 & 0x1F) }
func (dt PackedDateTime) hour() int   { return int(dt >> 12 & 0x1F) }
func (dt PackedDateTime) minute() int { return int(dt >> 6 & 0x3F) }
func (dt PackedDateTime) second() int { return int(dt & 0x3F) }

// fatDate returns the FAT on-wire date word: [y-1980(7):m(4):d(5)].
// Converting year-2000 to year-1980 is "add 20" per spec.md §4.C.
func (dt PackedDateTime) fatDate() uint16 {
	yearSince1980 := dt.year() - 1980
	if yearSince1980 < 0 {
		yearSince1980 = 0
	}
	return uint16(yearSince1980&0x7F)<<9 | uint16(dt.month()&0xF)<<5 | uint16(dt.day()&0x1F)
}

// fatTime returns the FAT on-wire time word: [h(5):m(6):s/2(5)].
func (dt PackedDateTime) fatTime() uint16 {
	return uint16(dt.hour()&0x1F)<<11 | uint16(dt.minute()&0x3F)<<5 | uint16(dt.second()/2&0x1F)
}

// fatTimeTenth returns the fine creation-tick byte written at dirCrtTime10Off:
// 100 when the packed second is odd, 0 otherwise (spec.md §4.C).
func (dt PackedDateTime) fatTimeTenth() byte {
	if dt.second()&1 != 0 {
		return 100
	}
	return 0
}

// ContentGenerator fills sectors of a file's data region lazily. It receives
// the file's opaque reference, the sector index relative to the file's first
// sector, the number of sectors remaining to be read, and the destination
// buffer (maxCount*sectorSize bytes). It returns the number of whole sectors
// it filled, 1..maxCount. It must be idempotent and pure with respect to its
// inputs: the engine may invoke it for any subset of a file's sectors, in any
// order, any number of times (spec.md §4.C "User content generator").
type ContentGenerator func(reference any, relativeSector, maxCount int, buf []byte) (sectorsProduced int)

// FileInfo describes one virtual file, as populated by a [FileProvider] call.
// Size, Attr, and the three timestamps are caller-supplied metadata; Contents
// is invoked lazily, only when the data region owning this file is actually
// read, and may be nil for a zero-length file.
type FileInfo struct {
	ID        uint32
	Filename  string // 8.3, case-insensitive; '.' splits stem from extension.
	Size      int64
	Attr      Attr
	Created   PackedDateTime
	Modified  PackedDateTime
	Accessed  PackedDateTime
	Contents  ContentGenerator
	Reference any
}

// FileProvider answers "what is file i?" for increasing, dense, nonnegative
// ids starting at 0. It populates fi and returns true, or returns false to
// end enumeration (spec.md §4.B, §6). Ids are not required to be contiguous
// in the caller's own namespace, only in what this callback reports: the
// first id for which it returns false terminates the virtual directory,
// even if the provider would have answered a later id (spec.md §9, "File-id
// monotonicity").
type FileProvider func(id uint32, fi *FileInfo) bool
