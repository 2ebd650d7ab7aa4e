package titlecase

import (
	"context"
	"sync"
)

// TitlecaseAll title-cases docs using at most workers goroutines and
// returns the results in input order. Once ctx is done no new documents
// are started; those are returned unchanged.
func TitlecaseAll(ctx context.Context, docs []Document, workers int) []Document {
	if workers < 1 {
		workers = 1
	}

	out := make([]Document, len(docs))
	copy(out, docs)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := range out {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return out
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(d *Document) {
			defer wg.Done()
			defer func() { <-sem }()

			d.Text = Titlecase(d.Text)
		}(&out[i])
	}
	wg.Wait()
	return out
}
