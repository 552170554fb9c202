package fat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMBRBootSignature(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16})
	require.True(t, res.Ok())

	buf := make([]byte, 512)
	n := d.synthesizeMBR(buf)
	require.Equal(t, 1, n)
	assert.Equal(t, byte(0x55), buf[510])
	assert.Equal(t, byte(0xAA), buf[511])
}

// TestMBRPartitionType reproduces the FAT12/FAT32 cases of spec.md §8's
// "MBR roundtrip" worked examples, plus a FAT16 "big" (>0xFFFF sectors)
// case sized to actually cross that threshold (spec.md's own 10000-cluster,
// spc=1 example stays well under 0xFFFF total sectors, so it is exercised
// here with a larger spc instead). The small FAT16 case uses 5000 clusters:
// 100 clusters lies below the 4085-cluster FAT12 threshold and selects FAT12.
func TestMBRPartitionType(t *testing.T) {
	cases := []struct {
		spc, cdc uint32
		want     byte
	}{
		{1, 5000, 0x04},
		{128, 60000, 0x06},
		{1, 80000, 0x0C},
		{1, 10, 0x01},
	}
	for _, c := range cases {
		d, err := NewDisk(512, nil)
		require.NoError(t, err)
		res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: uint16(c.spc), DataClusters: c.cdc, RootDirEntries: 512})
		require.True(t, res.Ok())

		buf := make([]byte, 512)
		d.synthesizeMBR(buf)
		typeByte := buf[0x1BE+4]
		assert.Equal(t, c.want, typeByte, "spc=%d cdc=%d", c.spc, c.cdc)
	}
}

func TestMBRStartAndSize(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16})
	require.True(t, res.Ok())
	p := d.Partitions()[0]

	buf := make([]byte, 512)
	d.synthesizeMBR(buf)
	start := le32(buf[0x1BE+8:])
	size := le32(buf[0x1BE+12:])
	assert.EqualValues(t, 1, start)
	assert.Equal(t, p.regionData+uint32(p.sectorsPerCluster)*p.countDataClusters, size)
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// TestMBRCHSBytes checks the first/last-sector CHS fields of spec.md §4.C:
// the fixed (c=0,h=1,s=1) address is emitted on disk as [h, ((c>>8)<<6)|s,
// c&0xFF] = [1, 1, 0], identically for both the first- and last-sector copy.
func TestMBRCHSBytes(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16})
	require.True(t, res.Ok())

	buf := make([]byte, 512)
	d.synthesizeMBR(buf)
	entry := buf[0x1BE : 0x1BE+16]
	want := []byte{1, 1, 0}
	assert.Equal(t, want, entry[1:4], "first-sector CHS")
	assert.Equal(t, want, entry[5:8], "last-sector CHS")
}
