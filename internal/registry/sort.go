package registry

// compareBatches orders batches by expiry date ascending, then id
// ascending. It is the single comparator behind both listings and the
// allocation tie-break.
func compareBatches(a, b *Batch) int {
	if c := a.ValidUntil.Compare(b.ValidUntil); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// Runs shorter than this are insertion-sorted instead of partitioned.
const insertionCutoff = 10

// sortBatches sorts in place by compareBatches: quicksort with an
// insertion-sort floor for short runs. The comparator is a total order
// over live batches (ids are unique), so the output is fully
// determined regardless of algorithm.
func sortBatches(batches []*Batch) {
	quickSort(batches, 0, len(batches)-1)
}

func quickSort(a []*Batch, low, high int) {
	if low >= high {
		return
	}
	if high-low < insertionCutoff {
		insertionSort(a, low, high)
		return
	}
	p := partition(a, low, high)
	quickSort(a, low, p-1)
	quickSort(a, p+1, high)
}

func partition(a []*Batch, low, high int) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if compareBatches(a[j], pivot) <= 0 {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}

func insertionSort(a []*Batch, low, high int) {
	for i := low + 1; i <= high; i++ {
		key := a[i]
		j := i - 1
		for j >= low && compareBatches(a[j], key) > 0 {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
