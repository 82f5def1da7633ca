package lbm

import "sync"

// sweep partitions the column range [0, n) into contiguous spans, one per
// worker, and runs fn on each span from its own goroutine. It returns only
// after every span has completed, so a sweep is a full phase barrier: the next
// phase never observes a partially written buffer. Spans are disjoint, so
// workers never write the same cell.
func sweep(workers, n int, fn func(lo, hi int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
