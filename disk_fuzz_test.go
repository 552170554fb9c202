package fat

import "testing"

// FuzzReadSectors drives ReadSectors with arbitrary (start, count) pairs and
// checks the idempotence invariant of spec.md §8: reading a range as one
// call must produce exactly the same bytes as reading it one sector at a
// time, and reading the same sector twice must produce the same bytes both
// times. Adapted from the teacher's tape-of-operations fuzz harness
// (fuzz_test.go's FuzzFS), simplified to this engine's two pure read paths
// since there is no mutation to replay against.
func FuzzReadSectors(f *testing.F) {
	f.Add(uint32(0), uint8(1))
	f.Add(uint32(0), uint8(20))
	f.Add(uint32(1), uint8(5))
	f.Add(uint32(200), uint8(3))
	f.Add(uint32(1000), uint8(10))

	mp := &memProvider{files: []memFile{
		{name: "a.txt", size: 3000, fill: 'a'},
		{name: "b.txt", size: 1500, fill: 'b'},
		{name: "c.txt", size: 0, fill: 'c'},
		{name: "d.txt", size: 700, fill: 'd'},
	}}

	f.Fuzz(func(t *testing.T, start uint32, rawCount uint8) {
		count := int(rawCount)%32 + 1
		d, err := NewDisk(512, nil)
		if err != nil {
			t.Fatal(err)
		}
		res := d.AddPartition(AddPartitionConfig{SectorsPerCluster: 1, DataClusters: 200, RootDirEntries: 32, Provider: mp.provide})
		if !res.Ok() {
			t.Fatal(res)
		}
		start %= d.SectorCount() * 2 // allow some reads past the disk end too.

		whole := make([]byte, 512*count)
		n1 := d.ReadSectors(start, count, whole)

		piecewise := make([]byte, 512*count)
		total := 0
		for i := 0; i < count; i++ {
			n := d.ReadSectors(start+uint32(i), 1, piecewise[i*512:(i+1)*512])
			total += n
		}
		if n1 != total {
			t.Fatalf("sector count mismatch: whole=%d piecewise=%d", n1, total)
		}
		for i := range whole {
			if whole[i] != piecewise[i] {
				t.Fatalf("byte %d differs: whole=%#x piecewise=%#x (start=%d count=%d)", i, whole[i], piecewise[i], start, count)
			}
		}

		repeat := make([]byte, 512*count)
		d.ReadSectors(start, count, repeat)
		for i := range whole {
			if whole[i] != repeat[i] {
				t.Fatalf("repeated read at byte %d differs: first=%#x second=%#x", i, whole[i], repeat[i])
			}
		}
	})
}
