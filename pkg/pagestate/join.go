package pagestate

import "sync"

// Join runs the fetches concurrently and waits for all of them. If any fetch
// fails the whole load is treated as failed; nothing renders partially.
func Join(fetches ...func() error) error {
	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, f func() error) {
			defer wg.Done()
			errs[i] = f()
		}(i, f)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
