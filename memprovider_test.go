package fat

// memFile is one file served by a memProvider.
type memFile struct {
	name    string
	size    int64
	attr    Attr
	created PackedDateTime
	fill    byte // content sector i is filled with this byte repeated, with a trailing marker.
}

// memProvider is an in-memory [FileProvider]/[ContentGenerator] fixture,
// playing the role the teacher's BlockMap (vfs_test.go) plays for a
// BlockDevice: a minimal, deterministic stand-in good enough to drive the
// engine end to end in tests.
type memProvider struct {
	files []memFile
}

func (m *memProvider) provide(id uint32, fi *FileInfo) bool {
	if int(id) >= len(m.files) {
		return false
	}
	f := m.files[id]
	*fi = FileInfo{
		Filename:  f.name,
		Size:      f.size,
		Attr:      f.attr,
		Created:   f.created,
		Modified:  f.created,
		Accessed:  f.created,
		Contents:  m.fillContent,
		Reference: f.fill,
	}
	return true
}

func (m *memProvider) fillContent(reference any, relativeSector, maxCount int, buf []byte) int {
	fillByte := reference.(byte)
	for i := range buf {
		buf[i] = fillByte
	}
	return 1
}

// gapProvider wraps a memProvider but reports false for one specific id,
// simulating spec.md §8 scenario 2 (provider skips an id mid-enumeration).
type gapProvider struct {
	inner  memProvider
	gapID  uint32
	hasGap bool
}

func (g *gapProvider) provide(id uint32, fi *FileInfo) bool {
	if g.hasGap && id == g.gapID {
		return false
	}
	return g.inner.provide(id, fi)
}
