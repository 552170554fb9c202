package fat

import "log/slog"

// FATType identifies which of the three FAT variants a partition uses. It is
// derived purely from the partition's data-cluster count (spec.md §3/§4.A),
// never chosen directly by the caller.
type FATType uint8

const (
	FAT12 FATType = iota
	FAT16
	FAT32
)

func (t FATType) String() string {
	switch t {
	case FAT12:
		return "FAT12"
	case FAT16:
		return "FAT16"
	case FAT32:
		return "FAT32"
	default:
		return "FAT?"
	}
}

// entryBits is the width in bits of one FAT entry for this variant: 12, 16,
// or 32.
func (t FATType) entryBits() int {
	switch t {
	case FAT12:
		return 12
	case FAT16:
		return 16
	default:
		return 32
	}
}

// fatTypeFor derives the FAT variant from a data-cluster count (spec.md §3):
// <4085 clusters is FAT12, <65525 is FAT16, otherwise FAT32.
func fatTypeFor(dataClusters uint32) FATType {
	switch {
	case dataClusters < clustMaxFAT12:
		return FAT12
	case dataClusters < clustMaxFAT16:
		return FAT16
	default:
		return FAT32
	}
}

func isPowerOfTwoSPC(spc uint16) bool {
	switch spc {
	case 1, 2, 4, 8, 16, 32, 64, 128:
		return true
	default:
		return false
	}
}

// AddPartition appends a new partition to d, deriving its full geometry from
// cfg (spec.md §3/§4.A). It fails with [ConfigBadParam] if
// cfg.SectorsPerCluster isn't a power of two in [1,128], or [ConfigFull] if d
// already holds [NMax] partitions; in either failure case d is left
// unchanged.
func (d *Disk) AddPartition(cfg AddPartitionConfig) ConfigResult {
	if !isPowerOfTwoSPC(cfg.SectorsPerCluster) {
		d.warn("addpartition:bad-spc", slog.Int("spc", int(cfg.SectorsPerCluster)))
		return ConfigBadParam
	}
	if len(d.partitions) >= NMax {
		d.warn("addpartition:full")
		return ConfigFull
	}

	numFAT := cfg.NumFATs
	if numFAT == 0 {
		numFAT = 2
	}

	fatType := fatTypeFor(cfg.DataClusters)
	ss := uint32(d.sectorSize)

	sectorsReserved := uint32(1)
	if fatType == FAT32 {
		sectorsReserved = 32
	}

	sectorsFat0 := sectorsForFAT(fatType, cfg.DataClusters, ss)

	var sectorsRootDir uint32
	rootDirBytes := uint32(cfg.RootDirEntries) * sizeDirEntry
	if fatType == FAT32 {
		bytesPerCluster := ss * uint32(cfg.SectorsPerCluster)
		clustersForRoot := ceilDiv(rootDirBytes, bytesPerCluster)
		sectorsRootDir = clustersForRoot * uint32(cfg.SectorsPerCluster)
	} else {
		sectorsRootDir = ceilDiv(rootDirBytes, ss)
	}

	regionData := sectorsReserved + uint32(numFAT)*sectorsFat0 + sectorsRootDir
	partitionSizeSectors := regionData + uint32(cfg.SectorsPerCluster)*cfg.DataClusters

	p := Partition{
		fatType:              fatType,
		sectorsPerCluster:    cfg.SectorsPerCluster,
		countDataClusters:    cfg.DataClusters,
		rootDirEntries:       cfg.RootDirEntries,
		numFAT:               numFAT,
		sectorsReserved:      sectorsReserved,
		sectorsFat0:          sectorsFat0,
		sectorsRootDir:       sectorsRootDir,
		regionData:           regionData,
		partitionStartSector: d.sectorCount,
		partitionSizeSectors: partitionSizeSectors,
		volumeID:             cfg.VolumeID,
	}

	var rootChainClusters uint32
	if fatType == FAT32 {
		rootChainClusters = sectorsRootDir / uint32(cfg.SectorsPerCluster)
	}
	p.enum.init(cfg.Provider, cfg.SectorsPerCluster, d.sectorSize, rootChainClusters)

	d.partitions = append(d.partitions, p)
	d.sectorCount += partitionSizeSectors
	d.cache.invalidate()

	d.debug("addpartition:ok",
		slog.String("type", fatType.String()),
		slog.Uint64("dataClusters", uint64(cfg.DataClusters)),
		slog.String("size", d.humanSize(partitionSizeSectors)),
		slog.Uint64("start", uint64(p.partitionStartSector)),
	)
	return ConfigOK
}

// sectorsForFAT computes sectorsFat0 = ceil((dataClusters+2)*entryBytes / sectorSize)
// without floating point; FAT12 entries are 1.5 bytes, so the numerator is
// scaled by 2 and the denominator by 2 as well.
func sectorsForFAT(t FATType, dataClusters uint32, sectorSize uint32) uint32 {
	entries := uint64(dataClusters) + 2
	switch t {
	case FAT12:
		return uint32(ceilDiv64(entries*3, uint64(sectorSize)*2))
	case FAT16:
		return uint32(ceilDiv64(entries*2, uint64(sectorSize)))
	default:
		return uint32(ceilDiv64(entries*4, uint64(sectorSize)))
	}
}

func ceilDiv(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func ceilDiv64(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// FATType returns the partition's derived FAT variant.
func (p *Partition) FATType() FATType { return p.fatType }

// StartSector returns the partition's first absolute sector on the disk.
func (p *Partition) StartSector() uint32 { return p.partitionStartSector }

// SizeSectors returns the partition's total size in sectors.
func (p *Partition) SizeSectors() uint32 { return p.partitionSizeSectors }

// addressFAT, addressRootDir, addressData return partition-relative sector
// offsets of the FAT region, root-directory region, and data region
// respectively (spec.md §4.D step 3).
func (p *Partition) addressFAT() uint32      { return p.sectorsReserved }
func (p *Partition) addressRootDir() uint32  { return p.addressFAT() + uint32(p.numFAT)*p.sectorsFat0 }
func (p *Partition) addressData() uint32     { return p.addressRootDir() + p.sectorsRootDir }

// rootChainClusters is the number of data-area clusters consumed by the
// FAT32 root-directory hack (0 for FAT12/16).
func (p *Partition) rootChainClusters() uint32 {
	if p.fatType != FAT32 {
		return 0
	}
	return p.sectorsRootDir / uint32(p.sectorsPerCluster)
}
