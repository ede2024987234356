package elastic4s

import (
	"context"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/tyth/elastic4s/pkg/str"
)

// existsCacheTTL is how long a positive IndexExists answer is reused.
// Indices rarely disappear, so a short positive cache saves a HEAD
// request per call without risking stale negatives.
const existsCacheTTL = 30 * time.Second

// CreateIndex creates an index. Body may be nil (no settings or
// mappings), a JSON string, or anything that serializes to the create
// request body.
func (c *ElasticClient) CreateIndex(ctx context.Context, name string, body interface{}) error {
	const op = "create_index"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.CreateIndex(name)
	switch b := body.(type) {
	case nil:
	case string:
		svc = svc.BodyString(b)
	default:
		svc = svc.BodyJson(b)
	}
	timer := c.startTimer()
	_, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return wrapErr(err, op)
}

// DeleteIndex deletes an index.
func (c *ElasticClient) DeleteIndex(ctx context.Context, name string) error {
	const op = "delete_index"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	_, err := c.client.DeleteIndex(name).Do(ctx)
	c.finish(logger, op, timer, err)
	if err == nil {
		c.existsCache().Delete(name)
	}
	return wrapErr(err, op)
}

// IndexExists reports whether an index exists. Positive answers are
// cached briefly; negative answers always hit the cluster.
func (c *ElasticClient) IndexExists(ctx context.Context, name string) (bool, error) {
	const op = "index_exists"
	if _, found := c.existsCache().Get(name); found {
		return true, nil
	}
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	ok, err := c.client.IndexExists(name).Do(ctx)
	c.finish(logger, op, timer, err)
	if err != nil {
		return false, wrapErr(err, op)
	}
	if ok {
		c.existsCache().SetDefault(name, struct{}{})
	}
	return ok, nil
}

// PutMapping updates the mapping of an index. Body is the mapping
// object, e.g. map[string]interface{}{"properties": ...}.
func (c *ElasticClient) PutMapping(ctx context.Context, index string, body map[string]interface{}) error {
	const op = "put_mapping"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	_, err := c.client.PutMapping().Index(index).BodyJson(body).Do(ctx)
	c.finish(logger, op, timer, err)
	return wrapErr(err, op)
}

// GetMapping returns the mapping of the given indices, keyed by index
// name.
func (c *ElasticClient) GetMapping(ctx context.Context, indices ...string) (map[string]interface{}, error) {
	const op = "get_mapping"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	res, err := c.client.GetMapping().Index(indices...).Do(ctx)
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// Refresh makes recent writes to the given indices visible to search.
// Duplicate index names are collapsed.
func (c *ElasticClient) Refresh(ctx context.Context, indices ...string) error {
	const op = "refresh"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	_, err := c.client.Refresh(str.Uniq(indices...)...).Do(ctx)
	c.finish(logger, op, timer, err)
	return wrapErr(err, op)
}

// AliasAction adds or removes one index/alias pair.
type AliasAction struct {
	// Type is "add" or "remove".
	Type string

	Index string
	Alias string
}

// UpdateAliases applies alias actions atomically.
func (c *ElasticClient) UpdateAliases(ctx context.Context, actions ...AliasAction) error {
	const op = "update_aliases"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.Alias()
	for _, a := range actions {
		switch a.Type {
		case "add":
			svc = svc.Add(a.Index, a.Alias)
		case "remove":
			svc = svc.Remove(a.Index, a.Alias)
		default:
			return errors.Errorf("elastic4s: unknown alias action type %q", a.Type)
		}
	}
	timer := c.startTimer()
	_, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return wrapErr(err, op)
}

// existsCache lazily creates the IndexExists cache.
func (c *ElasticClient) existsCache() *cache.Cache {
	c.existsMu.Lock()
	defer c.existsMu.Unlock()
	if c.exists == nil {
		c.exists = cache.New(existsCacheTTL, 2*existsCacheTTL)
	}
	return c.exists
}
