package fat

import (
	"encoding/binary"
	"strings"
)

// synthesizeDirectory produces one sector of a partition's root-directory
// region (spec.md §4.C "Directory synthesizer"): it seeks the enumerator to
// the first id covered by this sector and emits one 8.3 entry per occupied
// slot, zeroing the rest.
func (d *Disk) synthesizeDirectory(p *Partition, relative uint32, buf []byte) int {
	entriesPerSector := int(d.sectorSize) / sizeDirEntry
	startID := relative * uint32(entriesPerSector)
	p.enum.seekByID(startID)

	sector := buf[:d.sectorSize]
	for i := 0; i < entriesPerSector; i++ {
		slot := sector[i*sizeDirEntry : (i+1)*sizeDirEntry]
		for j := range slot {
			slot[j] = 0
		}
		if !p.enum.hasFile {
			continue
		}
		writeDirEntry(slot, &p.enum.fileInfo, p.enum.firstCluster, p.fatType == FAT32)
		p.enum.advance()
	}
	return 1
}

// writeDirEntry fills a 32-byte slot with fi's 8.3 directory entry. A
// zero-size file is written with a zero first-cluster field rather than
// firstCluster, matching a real zero-cluster file (spec.md §4.C).
func writeDirEntry(slot []byte, fi *FileInfo, firstCluster uint32, canBeFAT32 bool) {
	name, ext := shortName(fi.Filename)
	copy(slot[dirNameOff:dirNameOff+8], name[:])
	copy(slot[dirNameOff+8:dirNameOff+11], ext[:])
	slot[dirAttrOff] = byte(fi.Attr)
	slot[dirNTresOff] = 0
	slot[dirCrtTime10Off] = fi.Created.fatTimeTenth()
	binary.LittleEndian.PutUint16(slot[dirCrtTimeOff:], fi.Created.fatTime())
	binary.LittleEndian.PutUint16(slot[dirCrtTimeOff+2:], fi.Created.fatDate())
	binary.LittleEndian.PutUint16(slot[dirLstAccDateOff:], fi.Accessed.fatDate())

	var cluster uint32
	if fi.Size > 0 {
		cluster = firstCluster
	}
	if canBeFAT32 {
		binary.LittleEndian.PutUint16(slot[dirFstClusHIOff:], uint16(cluster>>16))
	}
	binary.LittleEndian.PutUint16(slot[dirModTimeOff:], fi.Modified.fatTime())
	binary.LittleEndian.PutUint16(slot[dirModTimeOff+2:], fi.Modified.fatDate())
	binary.LittleEndian.PutUint16(slot[dirFstClusLOOff:], uint16(cluster))
	binary.LittleEndian.PutUint32(slot[dirFileSizeOff:], uint32(fi.Size))
}

// shortName splits filename into a space-padded, uppercased 8.3 stem and
// extension; the last '.' in filename switches to the extension (spec.md
// §4.C). Both results are truncated to their field width.
func shortName(filename string) (name [8]byte, ext [3]byte) {
	for i := range name {
		name[i] = ' '
	}
	for i := range ext {
		ext[i] = ' '
	}
	stem := filename
	if idx := strings.LastIndexByte(filename, '.'); idx >= 0 {
		stem = filename[:idx]
		copy(ext[:], strings.ToUpper(filename[idx+1:]))
	}
	copy(name[:], strings.ToUpper(stem))
	return name, ext
}
