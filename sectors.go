package fat

import "encoding/binary"

// biosParamBlock a.k.a BPB is a read/write view over the BIOS Parameter
// Block shared by FAT12/16/32 boot sectors. Unlike the teacher's read-only
// parser, every accessor here is a Set* method: this engine only ever
// writes a BPB, it never parses one off a real disk.
type biosParamBlock struct {
	data []byte
}

// fsinfoSector is a read/write view over the FAT32 FSInfo sector.
type fsinfoSector struct {
	data []byte
}

func (bs *biosParamBlock) SetSectorSize(size uint16) {
	binary.LittleEndian.PutUint16(bs.data[bpbBytsPerSec:], size)
}

func (bs *biosParamBlock) SetSectorsPerFAT(fatsz uint32, is32 bool) {
	if is32 {
		binary.LittleEndian.PutUint16(bs.data[bpbFATSz16:], 0)
		binary.LittleEndian.PutUint32(bs.data[bpbFATSz32:], fatsz)
	} else {
		binary.LittleEndian.PutUint16(bs.data[bpbFATSz16:], uint16(fatsz))
	}
}

func (bs *biosParamBlock) SetNumberOfFATs(nfats uint8) {
	bs.data[bpbNumFATs] = nfats
}

func (bs *biosParamBlock) SetSectorsPerCluster(spclus uint16) {
	bs.data[bpbSecPerClus] = byte(spclus)
}

func (bs *biosParamBlock) SetReservedSectors(rsvd uint16) {
	binary.LittleEndian.PutUint16(bs.data[bpbRsvdSecCnt:], rsvd)
}

func (bs *biosParamBlock) SetTotalSectors(totsec uint32, is32 bool) {
	if is32 || totsec > 0xFFFF {
		binary.LittleEndian.PutUint16(bs.data[bpbTotSec16:], 0)
		binary.LittleEndian.PutUint32(bs.data[bpbTotSec32:], totsec)
	} else {
		binary.LittleEndian.PutUint16(bs.data[bpbTotSec16:], uint16(totsec))
	}
}

func (bs *biosParamBlock) SetRootDirEntries(entries uint16) {
	binary.LittleEndian.PutUint16(bs.data[bpbRootEntCnt:], entries)
}

func (bs *biosParamBlock) SetRootCluster(cluster uint32) {
	binary.LittleEndian.PutUint32(bs.data[bpbRootClus32:], cluster)
}

func (bs *biosParamBlock) SetExtendedBootSignature(sig uint8) {
	bs.data[bsBootSig32] = sig
}

func (bs *biosParamBlock) SetBootSignature() {
	binary.LittleEndian.PutUint16(bs.data[bs55AA:], 0xAA55)
}

func (bs *biosParamBlock) SetFSInfoSector(sector uint16) {
	binary.LittleEndian.PutUint16(bs.data[bpbFSInfo32:], sector)
}

func (bs *biosParamBlock) SetBkBootSector(sector uint16) {
	binary.LittleEndian.PutUint16(bs.data[bpbBkBootSec32:], sector)
}

func (bs *biosParamBlock) SetVolumeSerialNumber(serial uint32) {
	binary.LittleEndian.PutUint32(bs.data[bsVolID32:], serial)
}

func (bs *biosParamBlock) SetVolumeLabel(label string) {
	n := copy(bs.data[bsVolLab32:bsVolLab32+11], label)
	for i := n; i < 11; i++ {
		bs.data[bsVolLab32+i] = ' '
	}
}

func (bs *biosParamBlock) SetFilesystemType(fstype string) {
	n := copy(bs.data[bsFilSysType32:bsFilSysType32+8], fstype)
	for i := n; i < 8; i++ {
		bs.data[bsFilSysType32+i] = ' '
	}
}

func (bs *biosParamBlock) SetJumpInstruction(b0, b1, b2 byte) {
	bs.data[0], bs.data[1], bs.data[2] = b0, b1, b2
}

func (bs *biosParamBlock) SetOEMName(name string) {
	n := copy(bs.data[bsOEMName:bsOEMName+8], name)
	for i := n; i < 8; i++ {
		bs.data[bsOEMName+i] = ' '
	}
}

// SetSignatures writes the FSInfo sector's three magic signatures:
// 0x41615252 at offset 0, 0x61417272 at 0x1E4, 0xAA550000 at 0x1FC (the last
// four bytes of a 512-byte sector; the offset does not move for larger
// sector sizes).
func (fsi *fsinfoSector) SetSignatures(sigStart, sigMid, sigEnd uint32) {
	binary.LittleEndian.PutUint32(fsi.data[fsiLeadSig:], sigStart)
	binary.LittleEndian.PutUint32(fsi.data[fsiStrucSig:], sigMid)
	binary.LittleEndian.PutUint32(fsi.data[fsiTrailSig:], sigEnd)
}

func (fsi *fsinfoSector) SetFreeClusterCount(count uint32) {
	binary.LittleEndian.PutUint32(fsi.data[fsiFree_Count:], count)
}

func (fsi *fsinfoSector) SetLastAllocatedCluster(cluster uint32) {
	binary.LittleEndian.PutUint32(fsi.data[fsiNxt_Free:], cluster)
}
