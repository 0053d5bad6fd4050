package runner

import (
	"fmt"
	"sync"
)

// Map applies fn to every item with at most maxWorkers running at once.
// Outputs keep the order of items; a failed item leaves its zero value and
// contributes one error.
func Map[In, Out any](maxWorkers int, items []In, fn func(In) (Out, error)) ([]Out, []error) {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	out := make([]Out, len(items))
	sem := make(chan struct{}, maxWorkers)

	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, item In) {
			defer wg.Done()
			defer func() { <-sem }()
			v, err := fn(item)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("item %d: %w", i, err))
				mu.Unlock()
				return
			}
			out[i] = v
		}(i, item)
	}
	wg.Wait()
	return out, errs
}
