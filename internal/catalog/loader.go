package catalog

import (
	"context"
	"sync"
)

// Loader pages through the catalog on behalf of an embedding view. A failed
// fetch keeps the previously loaded products. Every dispatch takes a new
// generation number and a response is applied only while its generation is
// still the latest, so a slow page-1 response cannot overwrite page 2.
type Loader struct {
	client Client

	mu       sync.Mutex
	page     int
	gen      uint64
	products []Product
	meta     PaginationMeta
	loadErr  error
}

func NewLoader(client Client) *Loader {
	return &Loader{client: client, page: 1}
}

// Load fetches the current page and returns the fetch error, if any. A
// superseded load returns nil without touching state.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	page := l.page
	l.mu.Unlock()

	resp, err := l.client.FetchProducts(ctx, page)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return nil
	}
	if err != nil {
		l.loadErr = err
		return err
	}
	l.products = resp.Data
	l.meta = resp.Meta
	l.loadErr = nil
	return nil
}

// NextPage advances one page and reloads; a no-op when the backend reported
// no next page.
func (l *Loader) NextPage(ctx context.Context) error {
	l.mu.Lock()
	if !l.meta.HasNextPage {
		l.mu.Unlock()
		return nil
	}
	l.page++
	l.mu.Unlock()
	return l.Load(ctx)
}

// PreviousPage retreats one page and reloads; a no-op when the backend
// reported no previous page.
func (l *Loader) PreviousPage(ctx context.Context) error {
	l.mu.Lock()
	if !l.meta.HasPreviousPage {
		l.mu.Unlock()
		return nil
	}
	l.page--
	l.mu.Unlock()
	return l.Load(ctx)
}

func (l *Loader) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

func (l *Loader) Meta() PaginationMeta {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.meta
}

// Products returns a copy of the last successfully loaded page.
func (l *Loader) Products() []Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Product, len(l.products))
	copy(out, l.products)
	return out
}

// Err returns the error of the most recent applied load, nil after success.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadErr
}
