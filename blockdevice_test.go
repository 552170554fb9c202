package fat

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusUnknownDrive(t *testing.T) {
	var reg Registry
	status := Status(&reg, 0)
	assert.Equal(t, StatusNotInitialized|StatusWriteProtected, status)
}

func TestStatusRegisteredDriveIsSideEffectFree(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	var reg Registry
	require.NoError(t, reg.Register(0, d))

	first := Status(&reg, 0)
	second := Status(&reg, 0)
	assert.Equal(t, StatusWriteProtected, first)
	assert.Equal(t, first, second, "Status must not mutate the registry")
}

func TestRegisterNilDisk(t *testing.T) {
	var reg Registry
	err := reg.Register(0, nil)
	assert.Error(t, err)
}

func TestDeregister(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	var reg Registry
	require.NoError(t, reg.Register(0, d))
	reg.Deregister(0)
	assert.Equal(t, StatusNotInitialized|StatusWriteProtected, Status(&reg, 0))
}

func TestReadUnknownDriveIsParamErr(t *testing.T) {
	var reg Registry
	buf := make([]byte, 512)
	assert.Equal(t, IOParamErr, Read(&reg, 0, buf, 0, 1))
}

func TestReadBufferTooSmallIsParamErr(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	var reg Registry
	require.NoError(t, reg.Register(0, d))
	buf := make([]byte, 100)
	assert.Equal(t, IOParamErr, Read(&reg, 0, buf, 0, 1))
}

func TestWriteAlwaysProtected(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	var reg Registry
	require.NoError(t, reg.Register(0, d))
	assert.Equal(t, IOWriteProtected, Write(&reg, 0, make([]byte, 512), 0, 1))
}

func TestIoctlSectorCountAndSize(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 30, RootDirEntries: 16})
	require.True(t, res.Ok())
	var reg Registry
	require.NoError(t, reg.Register(0, d))

	buf := make([]byte, 4)
	require.Equal(t, IOOk, Ioctl(&reg, 0, CtrlGetSectorCount, buf))
	assert.Equal(t, d.SectorCount(), binary.LittleEndian.Uint32(buf))

	buf2 := make([]byte, 2)
	require.Equal(t, IOOk, Ioctl(&reg, 0, CtrlGetSectorSize, buf2))
	assert.Equal(t, d.SectorSize(), binary.LittleEndian.Uint16(buf2))

	buf3 := make([]byte, 4)
	require.Equal(t, IOOk, Ioctl(&reg, 0, CtrlGetBlockSize, buf3))
	assert.Equal(t, uint32(d.SectorSize()), binary.LittleEndian.Uint32(buf3))
}

func TestIoctlSyncAndErase(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	var reg Registry
	require.NoError(t, reg.Register(0, d))
	assert.Equal(t, IOOk, Ioctl(&reg, 0, CtrlSync, nil))
	assert.Equal(t, IOOk, Ioctl(&reg, 0, CtrlErase, nil))
}

func TestIoctlUnknownCmd(t *testing.T) {
	d, err := NewDisk(512, nil)
	require.NoError(t, err)
	var reg Registry
	require.NoError(t, reg.Register(0, d))
	assert.Equal(t, IOParamErr, Ioctl(&reg, 0, IoctlCmd(99), nil))
}

func TestIoctlUnknownDrive(t *testing.T) {
	var reg Registry
	assert.Equal(t, IOParamErr, Ioctl(&reg, 0, CtrlSync, nil))
}
