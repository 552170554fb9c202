package fat

import "encoding/binary"

// synthesizeFAT produces one sector of a partition's FAT region (spec.md
// §4.C "FAT synthesizer"). relative is the sector index within the combined
// numFAT-wide region; additional copies beyond FAT0 are mirrored by taking
// the index modulo sectorsFat0.
func (d *Disk) synthesizeFAT(p *Partition, relative uint32, buf []byte) int {
	localSector := relative % p.sectorsFat0
	byteOffset := localSector * uint32(d.sectorSize)
	sector := buf[:d.sectorSize]

	switch p.fatType {
	case FAT12:
		fillFAT12(p, sector, byteOffset)
	case FAT16:
		fillFATWide(p, sector, byteOffset, 2)
	default:
		fillFATWide(p, sector, byteOffset, 4)
	}
	return 1
}

// fillFATWide writes FAT16 (width=2) or FAT32 (width=4) entries, little-endian.
func fillFATWide(p *Partition, sector []byte, baseByteOffset uint32, width int) {
	bits := p.fatType.entryBits()
	baseEntry := baseByteOffset / uint32(width)
	for i := 0; i*width < len(sector); i++ {
		v := maskEntry(entryValue(p, baseEntry+uint32(i)), bits)
		if width == 2 {
			binary.LittleEndian.PutUint16(sector[i*2:], uint16(v))
		} else {
			binary.LittleEndian.PutUint32(sector[i*4:], v)
		}
	}
}

// fillFAT12 writes 12-bit packed entries: two entries per three bytes, laid
// out little-endian nibble-by-nibble as `aa ba bb` (spec.md §4.C). Byte index
// k=byteOffset/3 identifies the entry pair (2k, 2k+1); phase=byteOffset%3
// selects which of the three bytes of that pair is being written, so the
// function can start mid-triplet when a sector boundary splits a pair.
func fillFAT12(p *Partition, sector []byte, baseByteOffset uint32) {
	for i := range sector {
		byteOffset := baseByteOffset + uint32(i)
		k := byteOffset / 3
		phase := byteOffset % 3
		v0 := maskEntry(entryValue(p, 2*k), 12)
		v1 := maskEntry(entryValue(p, 2*k+1), 12)
		switch phase {
		case 0:
			sector[i] = byte(v0)
		case 1:
			sector[i] = byte(v0>>8) | byte(v1<<4)
		case 2:
			sector[i] = byte(v1 >> 4)
		}
	}
}

// entryValue computes the logical (unmasked) value of FAT entry c (spec.md
// §4.C "Per entry value"): the two reserved entries, the FAT32 root-chain
// entries, and otherwise a lookup through the partition's file enumerator.
func entryValue(p *Partition, c uint32) uint32 {
	switch c {
	case 0:
		return fatEntryEOCBase
	case 1:
		return fatEntryEOC
	}
	if p.fatType == FAT32 {
		if r := p.rootChainClusters(); c >= 2 && c < 2+r {
			if c < 2+r-1 {
				return c + 1
			}
			return fatEntryEOC
		}
	}
	if !p.enum.seekByCluster(c) {
		return fatEntryBad
	}
	if c == p.enum.firstCluster+p.enum.numClusters-1 {
		return fatEntryEOC
	}
	return c + 1
}

func maskEntry(v uint32, bits int) uint32 {
	if bits >= 32 {
		return v
	}
	return v & (1<<uint(bits) - 1)
}
