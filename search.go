package elastic4s

import (
	"context"
	"io"
	"time"

	elastic "github.com/olivere/elastic/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	tomb "gopkg.in/tomb.v2"

	"github.com/tyth/elastic4s/pkg/dsl"
)

// SearchRequest describes one search to execute.
type SearchRequest struct {
	// Indices to search. Empty searches all indices.
	Indices []string

	// Source is the search body. A nil Source matches all documents.
	Source *dsl.SearchSource

	// Routing is a comma-separated list of specific routing values.
	Routing string

	// Preference specifies which shard copies to execute on.
	Preference string

	// IgnoreUnavailable skips missing or closed indices.
	IgnoreUnavailable *bool
}

// searchService translates the definition into the wrapped client's
// search service.
func (c *ElasticClient) searchService(req SearchRequest) (*elastic.SearchService, error) {
	svc := c.client.Search(req.Indices...)
	if req.Source != nil {
		body, err := req.Source.Source()
		if err != nil {
			return nil, err
		}
		svc = svc.Source(body)
	}
	if req.Routing != "" {
		svc = svc.Routing(req.Routing)
	}
	if req.Preference != "" {
		svc = svc.Preference(req.Preference)
	}
	if req.IgnoreUnavailable != nil {
		svc = svc.IgnoreUnavailable(*req.IgnoreUnavailable)
	}
	return svc, nil
}

// Search executes a search request.
func (c *ElasticClient) Search(ctx context.Context, req SearchRequest) (*elastic.SearchResult, error) {
	const op = "search"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc, err := c.searchService(req)
	if err != nil {
		return nil, wrapErr(err, op)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// Count returns the number of documents matching the query.
// A nil query counts all documents.
func (c *ElasticClient) Count(ctx context.Context, query dsl.Query, indices ...string) (int64, error) {
	const op = "count"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.Count(indices...)
	if query != nil {
		svc = svc.Query(query)
	}
	timer := c.startTimer()
	n, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return n, wrapErr(err, op)
}

// MultiSearch executes the given searches in parallel, returning
// results in request order. The first error cancels the rest.
func (c *ElasticClient) MultiSearch(ctx context.Context, reqs ...SearchRequest) ([]*elastic.SearchResult, error) {
	results := make([]*elastic.SearchResult, len(reqs))
	if len(reqs) == 0 {
		return results, nil
	}
	t, ctx := tomb.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		t.Go(func() error {
			res, err := c.Search(ctx, req)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := t.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ScrollRequest describes a scrolling iteration over all documents
// matching a query.
type ScrollRequest struct {
	// Indices to search. Empty searches all indices.
	Indices []string

	// Query limits the scrolled documents. A nil Query matches all.
	Query dsl.Query

	// Size is the number of documents per page. Zero uses the
	// engine default.
	Size int

	// KeepAlive is how long the scroll cursor stays alive between
	// pages, e.g. "5m". Empty uses the wrapped client's default.
	KeepAlive string

	// Concurrency bounds how many pages are handled at once.
	// Values < 1 mean one page at a time.
	Concurrency int
}

// ScrollAll iterates over all pages of a scrolling search, dispatching
// each page to handler. Pages are fetched sequentially; handlers run
// concurrently up to req.Concurrency. The scroll cursor is cleared
// when iteration ends.
func (c *ElasticClient) ScrollAll(ctx context.Context, req ScrollRequest, handler func(context.Context, *elastic.SearchResult) error) error {
	const op = "scroll"
	logger := c.requestLogger(ctx, op)

	svc := c.client.Scroll(req.Indices...)
	if req.Query != nil {
		svc = svc.Query(req.Query)
	}
	if req.Size > 0 {
		svc = svc.Size(req.Size)
	}
	if req.KeepAlive != "" {
		svc = svc.Scroll(req.KeepAlive)
	}

	concurrency := req.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := semaphore.NewWeighted(int64(concurrency))
	g, gctx := errgroup.WithContext(ctx)

	var scrollID string
	defer func() {
		if scrollID == "" {
			return
		}
		clearCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := c.client.ClearScroll(scrollID).Do(clearCtx); err != nil {
			logger.Warn("failed to clear scroll", zap.Error(err))
		}
	}()

	timer := c.startTimer()
	for {
		res, err := svc.Do(gctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			// A handler failure cancels gctx and surfaces here as a
			// context error; report the handler's error instead.
			if werr := g.Wait(); werr != nil {
				err = werr
			}
			c.finish(logger, op, timer, err)
			return wrapErr(err, op)
		}
		scrollID = res.ScrollId
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		page := res
		g.Go(func() error {
			defer sem.Release(1)
			return handler(gctx, page)
		})
	}
	err := g.Wait()
	c.finish(logger, op, timer, err)
	return wrapErr(err, op)
}
