package biopage

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent renders; each one lists the image directory.
	MaxPoolSize = 8
)

// ResolvePoolSize determines the number of render workers.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// RenderAll renders inputs concurrently with at most workers goroutines
// (0 = auto, see ResolvePoolSize). Pages are returned in input order; the
// page of a failed input is nil and its error is joined into the result.
func RenderAll(ctx context.Context, svc *Service, inputs []Input, workers int) ([]*Page, error) {
	pages := make([]*Page, len(inputs))
	if len(inputs) == 0 {
		return pages, nil
	}

	errs := make([]error, len(inputs))
	n := min(ResolvePoolSize(workers), len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				page, err := svc.Render(ctx, inputs[i])
				if err != nil {
					errs[i] = fmt.Errorf("locale %q: %w", inputs[i].Locale, err)
					continue
				}
				pages[i] = page
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return pages, errors.Join(errs...)
}
