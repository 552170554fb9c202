package fat

// Byte offsets into the common (FAT12/FAT16/FAT32) portion of the BIOS
// Parameter Block, the boot sector every synthesized reserved region starts
// with.
const (
	bsJmpBoot     = 0   // x86 jump instruction (3-byte)
	bsOEMName     = 3   // OEM name (8-byte)
	bpbBytsPerSec = 11  // Sector size [byte] (WORD)
	bpbSecPerClus = 13  // Cluster size [sector] (BYTE)
	bpbRsvdSecCnt = 14  // Size of reserved area [sector] (WORD)
	bpbNumFATs    = 16  // Number of FATs (BYTE)
	bpbRootEntCnt = 17  // Size of root directory area for FAT [entry] (WORD)
	bpbTotSec16   = 19  // Volume size (16-bit) [sector] (WORD)
	bpbMedia      = 21  // Media descriptor byte (BYTE)
	bpbFATSz16    = 22  // FAT size (16-bit) [sector] (WORD)
	bpbSecPerTrk  = 24  // Number of sectors per track for int13h [sector] (WORD)
	bpbNumHeads   = 26  // Number of heads for int13h (WORD)
	bpbHiddSec    = 28  // Volume offset from top of the drive (DWORD)
	bpbTotSec32   = 32  // Volume size (32-bit) [sector] (DWORD)
	bsDrvNum      = 36  // Physical drive number for int13h (BYTE), FAT12/16 layout
	bsNTres       = 37  // WindowsNT error flag (BYTE), FAT12/16 layout
	bsBootSig     = 38  // Extended boot signature (BYTE), FAT12/16 layout
	bsVolID       = 39  // Volume serial number (DWORD), FAT12/16 layout
	bsVolLab      = 43  // Volume label string (11-byte), FAT12/16 layout
	bsFilSysType  = 54  // Filesystem type string (8-byte), FAT12/16 layout
	bsBootCode    = 62  // Boot code (448-byte), FAT12/16 layout
	bs55AA        = 510 // Signature word (WORD)
)

// FAT32-only extension of the BPB, overlapping the FAT12/16 fields above.
const (
	bpbFATSz32     = 36 // FAT32: FAT size [sector] (DWORD)
	bpbExtFlags32  = 40 // FAT32: Extended flags (WORD)
	bpbFSVer32     = 42 // FAT32: Filesystem version (WORD)
	bpbRootClus32  = 44 // FAT32: Root directory cluster (DWORD)
	bpbFSInfo32    = 48 // FAT32: Offset of FSINFO sector (WORD)
	bpbBkBootSec32 = 50 // FAT32: Offset of backup boot sector (WORD)
	bsDrvNum32     = 64 // FAT32: Physical drive number for int13h (BYTE)
	bsNTres32      = 65 // FAT32: Error flag (BYTE)
	bsBootSig32    = 66 // FAT32: Extended boot signature (BYTE)
	bsVolID32      = 67 // FAT32: Volume serial number (DWORD)
	bsVolLab32     = 71 // FAT32: Volume label string (11-byte)
	bsFilSysType32 = 82 // FAT32: Filesystem type string (8-byte)
	bsBootCode32   = 90 // FAT32: Boot code (420-byte)
)

// FAT32 FSInfo sector field offsets.
const (
	fsiLeadSig    = 0   // FAT32 FSI: Leading signature (DWORD), expect 0x41615252
	fsiStrucSig   = 484 // FAT32 FSI: Structure signature (DWORD), expect 0x61417272
	fsiFree_Count = 488 // FAT32 FSI: Number of free clusters (DWORD)
	fsiNxt_Free   = 492 // FAT32 FSI: Last allocated cluster (DWORD)
	fsiTrailSig   = 508 // FAT32 FSI: Trailing signature (DWORD), expect 0xAA550000
)

// Byte offsets of a single 32-byte 8.3 directory entry.
const (
	dirNameOff       = 0  // Short filename, 11 bytes, space padded.
	dirAttrOff       = 11 // Attribute byte.
	dirNTresOff      = 12 // Reserved for use by Windows NT (case flags).
	dirCrtTime10Off  = 13 // Creation time, fine resolution (10ms units, 0..199).
	dirCrtTimeOff    = 14 // Creation time (WORD) + date (WORD) at dirCrtTimeOff+2.
	dirLstAccDateOff = 18 // Last access date (WORD).
	dirFstClusHIOff  = 20 // High word of first cluster number (0 except FAT32).
	dirModTimeOff    = 22 // Last modified time (WORD) + date (WORD) at dirModTimeOff+2.
	dirFstClusLOOff  = 26 // Low word of first cluster number.
	dirFileSizeOff   = 28 // File size in bytes (DWORD).
)

// sizeDirEntry is the size in bytes of one directory entry.
const sizeDirEntry = 32

// Cluster-count thresholds used to pick the FAT variant (spec.md §3/§4.A):
// fewer than clustMaxFAT12 clusters selects FAT12, fewer than clustMaxFAT16
// selects FAT16, otherwise FAT32. 0xFF5 == 4085 and 0xFFF5 == 65525, the same
// boundary values the teacher's own FatFs-derived `DetermineFATVersion`-style
// check uses; see spec.md §4.A for why callers should steer clear of the
// ±16 neighborhood of either boundary.
const (
	clustMaxFAT12 = 0xFF5      // Max FAT12 clusters.
	clustMaxFAT16 = 0xFFF5     // Max FAT16 clusters.
	clustMaxFAT32 = 0x0FFFFFF5 // Max FAT32 clusters (practical limit).
)

// FAT entry masks and magic values, independent of entry width.
const (
	fatEntryFree    = 0x0000_0000
	fatEntryBad     = 0x0FFF_FFF7
	fatEntryEOCBase = 0x0FFF_FFF8 // media descriptor in low byte lives here for entry 0.
	fatEntryEOC     = 0x0FFF_FFFF
)
