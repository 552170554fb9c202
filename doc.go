// Package fat implements a read-only virtual block device that synthesizes
// a FAT12/FAT16/FAT32-formatted disk image on demand.
//
// Callers request sectors from a logical [Disk]; the package computes them
// from a [FileProvider] and per-file [ContentGenerator], rather than storing
// an image anywhere. The Master Boot Record, each partition's reserved
// region, FAT(s), root directory, and file contents are all produced lazily
// by the sector synthesizers in mbr.go, reserved.go, fattable.go,
// directory.go, null.go and content.go, dispatched by the router in
// router.go. Disk state is O(partitions): no backing store, no cache of
// previously produced sectors beyond the single routing decision needed to
// skip re-routing adjacent reads.
//
// The device is strictly read-only. blockdevice.go adapts a [Registry] of
// Disks, keyed by drive number, to the status/read/write/ioctl shape a host
// filesystem driver expects from a block device; writes are always refused.
package fat
