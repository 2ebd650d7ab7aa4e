package titlecase

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineSize = 16 * 1024 * 1024

// Document is a single line of input and its zero-based position.
type Document struct {
	ID   int
	Text string
}

// StreamDocuments reads the file at path line by line. An empty path or
// "-" reads stdin and a ".gz" suffix is decompressed on the fly.
func StreamDocuments(ctx context.Context, path string) (<-chan Document, <-chan error) {
	if path == "" || path == "-" {
		return ReadDocuments(ctx, os.Stdin)
	}

	out := make(chan Document, 100)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		f, err := os.Open(path)
		if err != nil {
			errCh <- fmt.Errorf("open %s: %w", path, err)
			return
		}
		defer f.Close()

		var r io.Reader = f
		if strings.HasSuffix(path, ".gz") {
			gz, err := gzip.NewReader(f)
			if err != nil {
				errCh <- fmt.Errorf("gzip %s: %w", path, err)
				return
			}
			defer gz.Close()
			r = gz
		}

		if err := scanLines(ctx, r, out); err != nil {
			errCh <- err
		}
	}()

	return out, errCh
}

// ReadDocuments streams the lines of r. The error channel receives at most
// one error; both channels are closed when reading stops.
func ReadDocuments(ctx context.Context, r io.Reader) (<-chan Document, <-chan error) {
	out := make(chan Document, 100)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		if err := scanLines(ctx, r, out); err != nil {
			errCh <- err
		}
	}()

	return out, errCh
}

func scanLines(ctx context.Context, r io.Reader, out chan<- Document) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	var id int

	for sc.Scan() {
		doc := Document{ID: id, Text: sc.Text()}
		id++

		select {
		case out <- doc:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", id+1, err)
	}
	return nil
}

// LoadDocuments drains StreamDocuments into a slice.
func LoadDocuments(ctx context.Context, path string) ([]Document, error) {
	docs, errs := StreamDocuments(ctx, path)
	var all []Document
	for doc := range docs {
		all = append(all, doc)
	}
	if err := <-errs; err != nil {
		return nil, err
	}
	return all, nil
}
