package fat

import "github.com/soypat/vfat/internal/mbr"

// diskSignatureMBR is the fixed 4-byte disk signature this engine writes at
// offset 0x1B8 of every synthesized MBR (spec.md §4.C).
const diskSignatureMBR = 0xF58B16F5

// synthesizeMBR produces sector 0 of the disk (spec.md §4.C "MBR
// synthesizer"): the disk signature, up to [NMax] partition table entries,
// and the boot signature.
func (d *Disk) synthesizeMBR(buf []byte) int {
	full := buf[:d.sectorSize]
	for i := range full {
		full[i] = 0
	}
	sector := full[:512]
	bs, err := mbr.ToBootSector(sector)
	if err != nil {
		return 0
	}
	bs.SetUniqueDiskID(diskSignatureMBR)

	for i, p := range d.partitions {
		// First/last sector CHS is always the fixed (c=0,h=1,s=1) shortcut
		// (spec.md §4.C); encode it in actual MBR wire order rather than the
		// package's generic cylinder/head/sector round-trip convention.
		chs := mbr.PackCHS(0, 1, 1)
		pte := mbr.MakePTE(mbr.DriveAttrsBootable, partitionTypeFor(p), p.partitionStartSector, p.partitionSizeSectors, chs, chs)
		bs.SetPartitionTable(i, pte)
	}
	bs.SetBootSignature()
	return 1
}

// partitionTypeFor picks the MBR partition type byte for p's FAT variant
// (spec.md §4.C, §8 "MBR roundtrip"): FAT12 is always 0x01, FAT32 is always
// the LBA type 0x0C, and FAT16 is 0x04 or the "big" 0x06 depending on
// whether the partition spans more than 0xFFFF sectors.
func partitionTypeFor(p Partition) mbr.PartitionType {
	switch p.fatType {
	case FAT12:
		return mbr.PartitionTypeFAT12
	case FAT32:
		return mbr.PartitionTypeFAT32LBA
	default:
		if p.partitionSizeSectors > 0xFFFF {
			return 0x06
		}
		return mbr.PartitionTypeFAT16
	}
}
