package fat

// fileEnumerator is a restartable, finite cursor over a [FileProvider]. It
// tracks the current file's id, its first cluster, and its cluster count,
// and nothing else: it caches exactly one file at a time, performs no
// prefetch, and is not thread-safe (spec.md §3/§4.B).
//
// rootChainClusters is the number of clusters consumed by the FAT32
// root-directory hack (spec.md §3/§9): when nonzero, user files start at
// cluster 2+rootChainClusters instead of cluster 2.
type fileEnumerator struct {
	provider FileProvider

	rootChainClusters uint32
	sectorsPerCluster uint16
	sectorSize        uint16

	id           uint32
	fileInfo     FileInfo
	firstCluster uint32
	numClusters  uint32
	hasFile      bool
}

func (e *fileEnumerator) init(provider FileProvider, spc, sectorSize uint16, rootChainClusters uint32) {
	e.provider = provider
	e.sectorsPerCluster = spc
	e.sectorSize = sectorSize
	e.rootChainClusters = rootChainClusters
	e.resetToFirst()
}

// clustersForSize returns ceil(size / (sectorSize*sectorsPerCluster)).
func (e *fileEnumerator) clustersForSize(size int64) uint32 {
	if size <= 0 {
		return 0
	}
	bytesPerCluster := int64(e.sectorSize) * int64(e.sectorsPerCluster)
	return uint32((size + bytesPerCluster - 1) / bytesPerCluster)
}

// resetToFirst rewinds the cursor to file id 0 (spec.md §4.B "reset-to-first").
func (e *fileEnumerator) resetToFirst() {
	e.id = 0
	e.firstCluster = 2 + e.rootChainClusters
	e.fileInfo = FileInfo{}
	e.hasFile = e.provider != nil && e.provider(0, &e.fileInfo)
	if e.hasFile {
		e.fileInfo.ID = 0
		e.numClusters = e.clustersForSize(e.fileInfo.Size)
	} else {
		e.numClusters = 0
	}
}

// advance moves to the next file: id++, firstCluster += previous
// numClusters, then invokes the provider and recomputes numClusters.
func (e *fileEnumerator) advance() {
	if !e.hasFile {
		return
	}
	e.firstCluster += e.numClusters
	e.id++
	e.fileInfo = FileInfo{}
	e.hasFile = e.provider(e.id, &e.fileInfo)
	if e.hasFile {
		e.fileInfo.ID = e.id
		e.numClusters = e.clustersForSize(e.fileInfo.Size)
	} else {
		e.numClusters = 0
	}
}

// seekByID positions the cursor at file id targetID, rewinding first if
// targetID lies behind the current position (spec.md §4.B "seek-by-id").
func (e *fileEnumerator) seekByID(targetID uint32) {
	if targetID < e.id {
		e.resetToFirst()
	}
	for e.hasFile && e.id < targetID {
		e.advance()
	}
}

// seekByCluster positions the cursor at the file covering cluster c, skipping
// zero-length files along the way. Returns false if no file covers c (either
// c lies before the first file or past the last) (spec.md §4.B "seek-by-cluster").
func (e *fileEnumerator) seekByCluster(c uint32) bool {
	if c < e.firstCluster {
		e.resetToFirst()
	}
	for e.hasFile && (e.numClusters == 0 || c >= e.firstCluster+e.numClusters) {
		e.advance()
	}
	return e.hasFile && c >= e.firstCluster && c < e.firstCluster+e.numClusters
}
