package fat

import "encoding/binary"

// synthesizeReserved produces one sector of a partition's reserved region
// (spec.md §4.C "Reserved-region synthesizer"): the BPB at relative sector 0,
// FAT32's FSInfo/backup-BPB/third-boot-sector copies at their fixed offsets,
// and zero everywhere else.
func (d *Disk) synthesizeReserved(p *Partition, relative uint32, buf []byte) int {
	sector := buf[:d.sectorSize]
	for i := range sector {
		sector[i] = 0
	}

	switch {
	case relative == 0:
		d.writeBPB(p, sector)
	case p.fatType == FAT32 && relative == 1:
		writeFSInfo(sector)
	case p.fatType == FAT32 && relative == 2:
		writeThirdBootSector(sector)
	case p.fatType == FAT32 && relative == 6:
		d.writeBPB(p, sector)
	case p.fatType == FAT32 && relative == 7:
		writeFSInfo(sector)
	case p.fatType == FAT32 && relative == 8:
		writeThirdBootSector(sector)
	}
	return 1
}

// writeBPB fills sector with the BIOS Parameter Block for p (spec.md §4.C).
func (d *Disk) writeBPB(p *Partition, sector []byte) {
	bs := biosParamBlock{data: sector}
	bs.SetJumpInstruction(0xEB, 0x3C, 0x90)
	bs.SetOEMName("MSDOS5.0")
	bs.SetSectorSize(d.sectorSize)
	bs.SetSectorsPerCluster(p.sectorsPerCluster)
	bs.SetReservedSectors(uint16(p.sectorsReserved))
	bs.SetNumberOfFATs(p.numFAT)

	is32 := p.fatType == FAT32
	if is32 {
		bs.SetRootDirEntries(0)
	} else {
		bs.SetRootDirEntries(p.rootDirEntries)
	}
	bs.SetTotalSectors(p.partitionSizeSectors, is32)
	sector[bpbMedia] = 0xF8
	bs.SetSectorsPerFAT(p.sectorsFat0, is32)
	sector[bpbSecPerTrk], sector[bpbSecPerTrk+1] = 0x3F, 0x00
	sector[bpbNumHeads], sector[bpbNumHeads+1] = 0xFF, 0x00
	binary.LittleEndian.PutUint32(sector[bpbHiddSec:], p.partitionStartSector)

	if is32 {
		sector[bpbExtFlags32], sector[bpbExtFlags32+1] = 0, 0
		sector[bpbFSVer32], sector[bpbFSVer32+1] = 0, 0
		bs.SetRootCluster(2)
		bs.SetFSInfoSector(1)
		bs.SetBkBootSector(0)
		sector[bsDrvNum32] = 0
		sector[bsNTres32] = 0
		bs.SetExtendedBootSignature(0x29)
		bs.SetVolumeSerialNumber(p.volumeID)
		bs.SetVolumeLabel("NO NAME    ")
		bs.SetFilesystemType("FAT32   ")
	} else {
		sector[bsDrvNum] = 0
		sector[bsNTres] = 0
		sector[bsBootSig] = 0x29
		binary.LittleEndian.PutUint32(sector[bsVolID:], p.volumeID)
		labelBPBlegacy(sector, "NO NAME    ")
		if p.fatType == FAT16 {
			filesystemTypeLegacy(sector, "FAT16   ")
		} else {
			filesystemTypeLegacy(sector, "FAT12   ")
		}
	}
	bs.SetBootSignature()
}

func labelBPBlegacy(sector []byte, label string) {
	n := copy(sector[bsVolLab:bsVolLab+11], label)
	for i := n; i < 11; i++ {
		sector[bsVolLab+i] = ' '
	}
}

func filesystemTypeLegacy(sector []byte, fstype string) {
	n := copy(sector[bsFilSysType:bsFilSysType+8], fstype)
	for i := n; i < 8; i++ {
		sector[bsFilSysType+i] = ' '
	}
}

// writeFSInfo fills sector with a FAT32 FSInfo sector (spec.md §4.C): both
// free-cluster-count and next-free fields are reported unknown (0xFFFFFFFF),
// matching the "update later" contract of a filesystem that is never
// actually written to.
func writeFSInfo(sector []byte) {
	fsi := fsinfoSector{data: sector}
	fsi.SetSignatures(0x41615252, 0x61417272, 0xAA550000)
	fsi.SetFreeClusterCount(0xFFFFFFFF)
	fsi.SetLastAllocatedCluster(0xFFFFFFFF)
}

// writeThirdBootSector fills sector with FAT32's third boot sector: zero
// except for the trailing 0x55 0xAA signature.
func writeThirdBootSector(sector []byte) {
	sector[bs55AA], sector[bs55AA+1] = 0x55, 0xAA
}
