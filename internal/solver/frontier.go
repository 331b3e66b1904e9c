package solver

// entry is one frontier push. cost is the g value at push time; the entry
// is stale once the tile has been relaxed to a different cost.
type entry struct {
	index    int
	cost     int
	estimate int
	seq      int
}

func (e entry) total() int { return e.cost + e.estimate }

// frontier is a min-heap of entries for container/heap.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.total() != b.total() {
		return a.total() < b.total()
	}
	if a.estimate != b.estimate {
		return a.estimate > b.estimate
	}
	return a.seq < b.seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(entry))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
