package fat

import "log/slog"

// synthKind tags which pure function produces a given sector. Modeled as an
// enum plus a dispatch switch rather than comparing function pointers/values
// for identity, per spec.md §9's design note: "so the router cache stores a
// kind tag rather than a raw function identity."
type synthKind uint8

const (
	synthNone synthKind = iota // not found: sector is past the end of the disk.
	synthMBR
	synthNull
	synthReserved
	synthFAT
	synthDirectory
	synthContent
)

// routeCache is the Disk's single cached router decision, valid only over
// [firstSector, lastSector] (spec.md §3 GeneratorInfo, §4.D).
type routeCache struct {
	kind           synthKind
	partitionIndex int // index into Disk.partitions; meaningless for synthMBR/synthNull.
	firstSector    uint32
	lastSector     uint32

	// contents and reference snapshot the routed file's callback and opaque
	// handle at route time (synthContent only), so a later cache hit still
	// addresses the right file even if the partition's single enumerator
	// cursor has since moved on to service an unrelated directory/FAT read.
	contents  ContentGenerator
	reference any
}

func (c *routeCache) invalidate() { *c = routeCache{} }

// covers reports whether sector falls within the cache's currently valid
// range, i.e. whether the read loop can skip re-routing (spec.md §4.D).
func (c *routeCache) covers(sector uint32) bool {
	return c.kind != synthNone && sector >= c.firstSector && sector <= c.lastSector
}

// route recomputes d.cache for the given absolute sector (spec.md §4.D).
func (d *Disk) route(sector uint32) {
	if sector == 0 {
		d.cache = routeCache{kind: synthMBR, firstSector: 0, lastSector: 0}
		return
	}

	prevEnd := uint32(1) // first sector after the MBR.
	for i := range d.partitions {
		part := &d.partitions[i]
		if sector < part.partitionStartSector {
			d.cache = routeCache{kind: synthNull, firstSector: prevEnd, lastSector: part.partitionStartSector - 1}
			return
		}
		partEnd := part.partitionStartSector + part.partitionSizeSectors
		if sector < partEnd {
			d.routeWithinPartition(i, sector)
			return
		}
		prevEnd = partEnd
	}

	if sector >= d.sectorCount {
		d.trace("route:not-found", slog.Uint64("sector", uint64(sector)))
		d.cache = routeCache{kind: synthNone}
		return
	}
	d.cache = routeCache{kind: synthNull, firstSector: prevEnd, lastSector: d.sectorCount - 1}
}

// routeWithinPartition resolves a sector known to fall inside partition i
// into reserved/FAT/directory/content (spec.md §4.D step 3).
func (d *Disk) routeWithinPartition(i int, sector uint32) {
	part := &d.partitions[i]
	local := sector - part.partitionStartSector
	addrFAT := part.addressFAT()
	addrDir := part.addressRootDir()
	addrData := part.addressData()

	switch {
	case local < addrFAT:
		d.cache = routeCache{
			kind: synthReserved, partitionIndex: i,
			firstSector: part.partitionStartSector, lastSector: part.partitionStartSector + addrFAT - 1,
		}
	case local < addrDir:
		d.cache = routeCache{
			kind: synthFAT, partitionIndex: i,
			firstSector: part.partitionStartSector + addrFAT, lastSector: part.partitionStartSector + addrDir - 1,
		}
	case local < addrData:
		d.cache = routeCache{
			kind: synthDirectory, partitionIndex: i,
			firstSector: part.partitionStartSector + addrDir, lastSector: part.partitionStartSector + addrData - 1,
		}
	default:
		dataCluster := (local-addrData)/uint32(part.sectorsPerCluster) + 2 + part.rootChainClusters()
		if !part.enum.seekByCluster(dataCluster) {
			// No file covers this cluster: treat the rest of the data area as
			// a single null-synthesized span up to the partition's end.
			d.cache = routeCache{
				kind: synthNull, partitionIndex: i,
				firstSector: sector, lastSector: part.partitionStartSector + part.partitionSizeSectors - 1,
			}
			return
		}
		fileFirstSector := part.partitionStartSector + addrData +
			(part.enum.firstCluster-2-part.rootChainClusters())*uint32(part.sectorsPerCluster)
		fileLastSector := fileFirstSector + part.enum.numClusters*uint32(part.sectorsPerCluster) - 1
		d.cache = routeCache{
			kind: synthContent, partitionIndex: i,
			firstSector: fileFirstSector, lastSector: fileLastSector,
			contents: part.enum.fileInfo.Contents, reference: part.enum.fileInfo.Reference,
		}
	}
}

// synthesize invokes whichever synthesizer d.cache currently names, writing
// relativeSector (offset from d.cache.firstSector) through at most maxCount
// sectors into buf. It returns the number of sectors actually produced.
func (d *Disk) synthesize(relativeSector uint32, maxCount int, buf []byte) int {
	switch d.cache.kind {
	case synthMBR:
		return d.synthesizeMBR(buf)
	case synthNull:
		return synthesizeNull(buf, d.sectorSize, maxCount)
	case synthReserved:
		return d.synthesizeReserved(&d.partitions[d.cache.partitionIndex], relativeSector, buf)
	case synthFAT:
		return d.synthesizeFAT(&d.partitions[d.cache.partitionIndex], relativeSector, buf)
	case synthDirectory:
		return d.synthesizeDirectory(&d.partitions[d.cache.partitionIndex], relativeSector, buf)
	case synthContent:
		return d.synthesizeContent(relativeSector, maxCount, buf)
	default:
		return 0
	}
}
