package fat

import (
	"encoding/binary"
	"errors"
)

// DiskStatus is the bitmask returned by [Status] (spec.md §6).
type DiskStatus uint8

const (
	// StatusNotInitialized is set when the requested drive has no disk
	// registered.
	StatusNotInitialized DiskStatus = 1 << iota
	// StatusWriteProtected is always set: every synthesized disk is read-only.
	StatusWriteProtected
)

// IOResult is the result of a block-device read/write/ioctl call (spec.md
// §6, §7).
type IOResult uint8

const (
	IOOk IOResult = iota
	IOParamErr
	IONotReady
	IOIOErr
	IOWriteProtected
)

func (r IOResult) Error() string {
	switch r {
	case IOOk:
		return "ok"
	case IOParamErr:
		return "parameter error"
	case IONotReady:
		return "not ready"
	case IOIOErr:
		return "io error"
	case IOWriteProtected:
		return "write protected"
	default:
		return "unknown io result"
	}
}

// IoctlCmd selects the operation for [Ioctl] (spec.md §6).
type IoctlCmd uint8

const (
	CtrlSync IoctlCmd = iota
	CtrlGetSectorCount
	CtrlGetSectorSize
	CtrlGetBlockSize
	CtrlErase
)

// Registry maps drive numbers to the [Disk] currently serving them. It
// replaces the source firmware's fixed-size global drive table (spec.md §9
// "Global singleton drive table") with an explicit value a caller owns and
// passes into the adapter functions below.
type Registry struct {
	disks map[int]*Disk
}

var errNilDisk = errors.New("fat: cannot register a nil disk")

// Register installs d as the disk backing drive. A zero Registry is ready
// to use.
func (r *Registry) Register(drive int, d *Disk) error {
	if d == nil {
		return errNilDisk
	}
	if r.disks == nil {
		r.disks = make(map[int]*Disk)
	}
	r.disks[drive] = d
	return nil
}

// Deregister removes whatever disk currently backs drive, if any.
func (r *Registry) Deregister(drive int) {
	delete(r.disks, drive)
}

func (r *Registry) lookup(drive int) *Disk {
	if r == nil {
		return nil
	}
	return r.disks[drive]
}

// Status reports drive's status bits. It is side-effect-free: unlike the
// source firmware's init routine (spec.md §9 "Uninitialized local in
// adapter init"), this never mutates the registry, it only reports whether
// an entry is already present.
func Status(r *Registry, drive int) DiskStatus {
	if r.lookup(drive) == nil {
		return StatusNotInitialized | StatusWriteProtected
	}
	return StatusWriteProtected
}

// Read fills buf with count sectors of drive starting at sector, returning
// IO_ERR if fewer than count sectors could be produced (spec.md §6, §7.2).
func Read(r *Registry, drive int, buf []byte, sector uint32, count int) IOResult {
	d := r.lookup(drive)
	if d == nil {
		return IOParamErr
	}
	if count <= 0 || len(buf) < count*int(d.SectorSize()) {
		return IOParamErr
	}
	n := d.ReadSectors(sector, count, buf)
	if n < count {
		return IOIOErr
	}
	return IOOk
}

// Write always refuses: every synthesized disk is read-only (spec.md §6,
// §7.3).
func Write(r *Registry, drive int, buf []byte, sector uint32, count int) IOResult {
	return IOWriteProtected
}

// Ioctl implements the control codes a host filesystem driver needs from a
// block device (spec.md §6).
func Ioctl(r *Registry, drive int, cmd IoctlCmd, buf []byte) IOResult {
	d := r.lookup(drive)
	if d == nil {
		return IOParamErr
	}
	switch cmd {
	case CtrlSync, CtrlErase:
		return IOOk
	case CtrlGetSectorCount:
		if len(buf) < 4 {
			return IOParamErr
		}
		binary.LittleEndian.PutUint32(buf, d.SectorCount())
		return IOOk
	case CtrlGetSectorSize:
		if len(buf) < 2 {
			return IOParamErr
		}
		binary.LittleEndian.PutUint16(buf, d.SectorSize())
		return IOOk
	case CtrlGetBlockSize:
		if len(buf) < 4 {
			return IOParamErr
		}
		binary.LittleEndian.PutUint32(buf, uint32(d.SectorSize()))
		return IOOk
	default:
		return IOParamErr
	}
}
