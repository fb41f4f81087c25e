// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs a worker pool over the provided work items and collects one result
// per item, positionally aligned with the input. If process returns an error,
// the pool cancels the context and stops further work.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) ([]R, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type task struct {
		index int
		item  T
	}

	results := make([]R, len(items))
	tasks := make(chan task, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case tk, ok := <-tasks:
					if !ok {
						return
					}
					result, err := process(ctx, tk.item)
					if err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
					results[tk.index] = result
				}
			}
		}()
	}

	go func() {
		for i, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- task{index: i, item: item}:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
