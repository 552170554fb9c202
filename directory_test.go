package fat

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryEntryLayout(t *testing.T) {
	mp := &memProvider{files: []memFile{
		{name: "readme.txt", size: 1536, created: NewPackedDateTime(2024, 3, 15, 10, 30, 0), fill: 'r'},
	}}
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16, Provider: mp.provide})
	require.True(t, res.Ok())
	p := d.Partitions()[0]

	buf := make([]byte, d.SectorSize())
	n := d.synthesizeDirectory(&p, 0, buf)
	require.Equal(t, 1, n)

	entry := buf[0:32]
	assert.Equal(t, "README  TXT", string(entry[0:11]), "uppercase, space-padded 8.3")
	lowCluster := binary.LittleEndian.Uint16(entry[dirFstClusLOOff:])
	assert.EqualValues(t, 2, lowCluster)
	size := binary.LittleEndian.Uint32(entry[dirFileSizeOff:])
	assert.EqualValues(t, 1536, size)

	// Second slot is unused and must be fully zero.
	second := buf[32:64]
	for _, b := range second {
		assert.Zero(t, b)
	}
}

func TestDirectoryZeroSizeFileHasZeroCluster(t *testing.T) {
	mp := &memProvider{files: []memFile{{name: "empty.txt", size: 0}}}
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16, Provider: mp.provide})
	require.True(t, res.Ok())
	p := d.Partitions()[0]

	buf := make([]byte, d.SectorSize())
	d.synthesizeDirectory(&p, 0, buf)
	cluster := binary.LittleEndian.Uint16(buf[dirFstClusLOOff:32])
	assert.Zero(t, cluster)
}

func TestDirectorySkipsGapAndZeroesSlot(t *testing.T) {
	provider := func(id uint32, fi *FileInfo) bool {
		switch id {
		case 0, 1:
			fi.Filename = "A.TXT"
			fi.Size = 100
			return true
		case 2:
			return false
		default:
			fi.Filename = "B.TXT"
			fi.Size = 100
			return true
		}
	}
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16, Provider: provider})
	require.True(t, res.Ok())
	p := d.Partitions()[0]

	buf := make([]byte, d.SectorSize())
	d.synthesizeDirectory(&p, 0, buf)
	// id=2 terminates enumeration (monotonicity, spec.md §9); slots 2.. are
	// all zero even though the provider would answer id=3.
	for i := 2; i < 16; i++ {
		slot := buf[i*32 : (i+1)*32]
		for _, b := range slot {
			assert.Zero(t, b)
		}
	}
}

func TestShortName(t *testing.T) {
	name, ext := shortName("hello.txt")
	assert.Equal(t, "HELLO   ", string(name[:]))
	assert.Equal(t, "TXT", string(ext[:]))

	name, ext = shortName("noext")
	assert.Equal(t, "NOEXT   ", string(name[:]))
	assert.Equal(t, "   ", string(ext[:]))
}
