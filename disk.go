package fat

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// slogLevelTrace is one tick below [slog.LevelDebug], used for the very
// high-frequency per-sector trace logging the router and synthesizers emit.
const slogLevelTrace = slog.LevelDebug - 2

// NMax is the maximum number of primary partitions a [Disk] can hold
// (spec.md §1 Non-goals: no extended partitions, no more than 4 primary).
const NMax = 4

// Disk is a read-only virtual block device that synthesizes a FAT-formatted
// image on demand. It owns a sector size, a total sector count, up to
// [NMax] partitions, and a single cached router decision (spec.md §3). Its
// zero value is not usable; construct one with [NewDisk].
//
// A Disk is mutated by every call to [Disk.ReadSectors] (the router cache and
// each partition's file enumerator cursor move). Concurrent readers must
// either serialize their calls or use one Disk per reader (spec.md §5);
// geometry is cheap to share by value if a caller wants to build several
// Disks from the same partition layout.
type Disk struct {
	sectorSize  uint16
	sectorCount uint32
	partitions  []Partition

	cache routeCache

	log *slog.Logger
}

// Partition is one entry of a [Disk]'s partition table, plus the geometry
// derived from it and the single file enumerator that walks its virtual
// files (spec.md §3).
type Partition struct {
	fatType FATType

	sectorsPerCluster uint16
	countDataClusters uint32
	rootDirEntries    uint16
	numFAT            uint8

	sectorsReserved uint32
	sectorsFat0     uint32
	sectorsRootDir  uint32
	regionData      uint32

	partitionStartSector uint32
	partitionSizeSectors uint32

	volumeID uint32

	enum fileEnumerator
}

// AddPartitionConfig configures one call to [Disk.AddPartition]. It plays
// the role the teacher's `FormatConfig` (format.go) plays for an on-disk
// formatter: the knobs needed to lay out one FAT volume, minus anything this
// engine hardcodes (the BPB volume label is always "NO NAME    ", spec.md §4.C).
type AddPartitionConfig struct {
	// SectorsPerCluster must be a power of two in [1,128].
	SectorsPerCluster uint16
	// DataClusters is the number of clusters in the partition's data region;
	// it (not an absolute byte size) is what selects the FAT variant.
	DataClusters uint32
	// RootDirEntries is the number of 32-byte slots in the root directory.
	RootDirEntries uint16
	// NumFATs is 1 or 2; 0 defaults to 2.
	NumFATs uint8
	// VolumeID is the 32-bit volume serial number written into the BPB.
	VolumeID uint32
	// Provider answers "what is file i?" for this partition's root directory.
	Provider FileProvider
}

// NewDisk creates a Disk with the given sector size (must be >=512 and a
// power of two, spec.md §3) and no partitions. The returned Disk's sector
// count is 1: the MBR sector alone.
func NewDisk(sectorSize uint16, log *slog.Logger) (*Disk, error) {
	if sectorSize < 512 || sectorSize&(sectorSize-1) != 0 {
		return nil, errBadSectorSize
	}
	return &Disk{
		sectorSize:  sectorSize,
		sectorCount: 1,
		log:         log,
	}, nil
}

// SectorSize returns the disk's sector size in bytes.
func (d *Disk) SectorSize() uint16 { return d.sectorSize }

// SectorCount returns the total number of sectors the disk occupies.
func (d *Disk) SectorCount() uint32 { return d.sectorCount }

// Partitions returns the disk's partition table, in the order partitions
// were added.
func (d *Disk) Partitions() []Partition { return d.partitions }

func (d *Disk) logattrs(level slog.Level, msg string, attrs ...slog.Attr) {
	if d.log != nil {
		d.log.LogAttrs(context.Background(), level, msg, attrs...)
	}
}

func (d *Disk) trace(msg string, attrs ...slog.Attr)    { d.logattrs(slogLevelTrace, msg, attrs...) }
func (d *Disk) debug(msg string, attrs ...slog.Attr)    { d.logattrs(slog.LevelDebug, msg, attrs...) }
func (d *Disk) info(msg string, attrs ...slog.Attr)      { d.logattrs(slog.LevelInfo, msg, attrs...) }
func (d *Disk) warn(msg string, attrs ...slog.Attr)      { d.logattrs(slog.LevelWarn, msg, attrs...) }
func (d *Disk) logerror(msg string, attrs ...slog.Attr)  { d.logattrs(slog.LevelError, msg, attrs...) }

// humanSize renders a sector count as a human-readable byte size for log
// attributes, e.g. "14 MiB" rather than a bare sector count.
func (d *Disk) humanSize(sectors uint32) string {
	return humanize.IBytes(uint64(sectors) * uint64(d.sectorSize))
}

// ReadSectors fills buf (which must be at least count*SectorSize bytes) with
// count sectors starting at startSector, and returns the number of sectors
// actually produced (spec.md §4.E). It never returns an error: sectors
// outside every partition but before the end of the disk are zero-filled by
// the null synthesizer; sectors at or past the end of the disk are
// 0xFF-filled and not counted in the return value; and a synthesizer that
// can't produce anything at all falls back to an 0xFF-filled sector, which is
// counted (spec.md §7).
func (d *Disk) ReadSectors(startSector uint32, count int, buf []byte) int {
	var produced int
	sector := startSector
	remaining := count
	for remaining > 0 {
		if !d.cache.covers(sector) {
			d.route(sector)
		}
		if d.cache.kind == synthNone {
			// Past the end of the disk: still hand back deterministic bytes, but
			// this sector does not count toward produced (spec.md §8 "Null
			// outside"), so the block-device adapter can tell a short read from
			// a full one (scenario 6).
			d.trace("read:past-disk", slog.Uint64("sector", uint64(sector)))
			n := fill0xFF(buf, d.sectorSize, 1)
			buf = buf[int(d.sectorSize)*n:]
			sector++
			remaining--
			continue
		}
		relative := sector - d.cache.firstSector
		maxCount := remaining
		if avail := int(d.cache.lastSector-sector) + 1; avail < maxCount {
			maxCount = avail
		}
		n := d.synthesize(relative, maxCount, buf)
		if n <= 0 {
			d.warn("read:synth-empty", slog.Uint64("sector", uint64(sector)), slog.Int("kind", int(d.cache.kind)))
			n = fill0xFF(buf, d.sectorSize, 1)
		}
		buf = buf[int(d.sectorSize)*n:]
		sector += uint32(n)
		remaining -= n
		produced += n
	}
	return produced
}

// fill0xFF writes n sectors of 0xFF into buf and returns n (spec.md §4.E
// "best-effort fallback").
func fill0xFF(buf []byte, sectorSize uint16, n int) int {
	total := int(sectorSize) * n
	for i := 0; i < total && i < len(buf); i++ {
		buf[i] = 0xFF
	}
	return n
}
