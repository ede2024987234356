package elastic4s

import (
	"context"

	elastic "github.com/olivere/elastic/v7"

	"github.com/tyth/elastic4s/pkg/dsl"
)

// IndexRequest describes a document to index.
type IndexRequest struct {
	// Index is the target index. Required.
	Index string

	// ID of the document. Empty lets the engine generate one.
	ID string

	// Doc is the document body, anything the wrapped client can
	// serialize to JSON.
	Doc interface{}

	// Routing is a specific routing value.
	Routing string

	// Refresh controls index refresh behaviour: "true", "false" or
	// "wait_for".
	Refresh string

	// OpType is "index" (default) or "create". "create" fails when a
	// document with the same ID already exists.
	OpType string

	// Version enables optimistic concurrency control when > 0.
	Version int64

	// VersionType qualifies Version, e.g. "external".
	VersionType string

	// Pipeline runs the document through an ingest pipeline.
	Pipeline string
}

func (c *ElasticClient) indexService(req IndexRequest) *elastic.IndexService {
	svc := c.client.Index().Index(req.Index).BodyJson(req.Doc)
	if req.ID != "" {
		svc = svc.Id(req.ID)
	}
	if req.Routing != "" {
		svc = svc.Routing(req.Routing)
	}
	if req.Refresh != "" {
		svc = svc.Refresh(req.Refresh)
	}
	if req.OpType != "" {
		svc = svc.OpType(req.OpType)
	}
	if req.Version > 0 {
		svc = svc.Version(req.Version)
	}
	if req.VersionType != "" {
		svc = svc.VersionType(req.VersionType)
	}
	if req.Pipeline != "" {
		svc = svc.Pipeline(req.Pipeline)
	}
	return svc
}

// Index indexes a document.
func (c *ElasticClient) Index(ctx context.Context, req IndexRequest) (*elastic.IndexResponse, error) {
	const op = "index"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	res, err := c.indexService(req).Do(ctx)
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// GetRequest describes a document to fetch by ID.
type GetRequest struct {
	// Index and ID locate the document. Both required.
	Index string
	ID    string

	// Routing is a specific routing value.
	Routing string

	// FetchSource toggles returning the document source. Nil means
	// the engine default (true).
	FetchSource *bool

	// Includes and Excludes filter the returned source fields.
	Includes []string
	Excludes []string
}

func (req GetRequest) fetchSourceContext() *elastic.FetchSourceContext {
	if req.FetchSource == nil && len(req.Includes) == 0 && len(req.Excludes) == 0 {
		return nil
	}
	fetch := true
	if req.FetchSource != nil {
		fetch = *req.FetchSource
	}
	fsc := elastic.NewFetchSourceContext(fetch)
	if len(req.Includes) > 0 {
		fsc = fsc.Include(req.Includes...)
	}
	if len(req.Excludes) > 0 {
		fsc = fsc.Exclude(req.Excludes...)
	}
	return fsc
}

// Get fetches a document by ID. A missing document is not an error;
// check Found on the result.
func (c *ElasticClient) Get(ctx context.Context, req GetRequest) (*elastic.GetResult, error) {
	const op = "get"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.Get().Index(req.Index).Id(req.ID)
	if req.Routing != "" {
		svc = svc.Routing(req.Routing)
	}
	if fsc := req.fetchSourceContext(); fsc != nil {
		svc = svc.FetchSourceContext(fsc)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	if elastic.IsNotFound(err) {
		c.finish(logger, op, timer, nil)
		return &elastic.GetResult{Index: req.Index, Id: req.ID, Found: false}, nil
	}
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// Exists reports whether a document exists.
func (c *ElasticClient) Exists(ctx context.Context, index, id string) (bool, error) {
	const op = "exists"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	ok, err := c.client.Exists().Index(index).Id(id).Do(ctx)
	c.finish(logger, op, timer, err)
	return ok, wrapErr(err, op)
}

// MgetItem identifies one document in a multi-get.
type MgetItem struct {
	Index   string
	ID      string
	Routing string
}

// Mget fetches multiple documents in one round trip. Results come back
// in request order; missing documents have Found set to false.
func (c *ElasticClient) Mget(ctx context.Context, items ...MgetItem) ([]*elastic.GetResult, error) {
	const op = "mget"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.Mget()
	for _, item := range items {
		mgi := elastic.NewMultiGetItem().Index(item.Index).Id(item.ID)
		if item.Routing != "" {
			mgi = mgi.Routing(item.Routing)
		}
		svc = svc.Add(mgi)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	if err != nil {
		return nil, wrapErr(err, op)
	}
	return res.Docs, nil
}

// UpdateRequest describes a partial document update.
type UpdateRequest struct {
	// Index and ID locate the document. Both required.
	Index string
	ID    string

	// Doc is a partial document merged into the existing one.
	// Exactly one of Doc and Script must be set.
	Doc interface{}

	// Script updates the document programmatically.
	Script *dsl.Script

	// Upsert is indexed as a new document when the target doesn't
	// exist.
	Upsert interface{}

	// DocAsUpsert indexes Doc as a new document when the target
	// doesn't exist.
	DocAsUpsert bool

	// RetryOnConflict retries the update this many times on version
	// conflicts.
	RetryOnConflict int

	// Routing is a specific routing value.
	Routing string

	// Refresh controls index refresh behaviour.
	Refresh string
}

func (c *ElasticClient) updateService(req UpdateRequest) (*elastic.UpdateService, error) {
	svc := c.client.Update().Index(req.Index).Id(req.ID)
	if req.Doc != nil {
		svc = svc.Doc(req.Doc)
	}
	if req.Script != nil {
		script, err := elasticScript(req.Script)
		if err != nil {
			return nil, err
		}
		svc = svc.Script(script)
	}
	if req.Upsert != nil {
		svc = svc.Upsert(req.Upsert)
	}
	if req.DocAsUpsert {
		svc = svc.DocAsUpsert(true)
	}
	if req.RetryOnConflict > 0 {
		svc = svc.RetryOnConflict(req.RetryOnConflict)
	}
	if req.Routing != "" {
		svc = svc.Routing(req.Routing)
	}
	if req.Refresh != "" {
		svc = svc.Refresh(req.Refresh)
	}
	return svc, nil
}

// Update applies a partial update to a document.
func (c *ElasticClient) Update(ctx context.Context, req UpdateRequest) (*elastic.UpdateResponse, error) {
	const op = "update"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc, err := c.updateService(req)
	if err != nil {
		return nil, wrapErr(err, op)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// DeleteRequest describes a document to delete.
type DeleteRequest struct {
	// Index and ID locate the document. Both required.
	Index string
	ID    string

	// Routing is a specific routing value.
	Routing string

	// Refresh controls index refresh behaviour.
	Refresh string
}

// Delete removes a document by ID.
func (c *ElasticClient) Delete(ctx context.Context, req DeleteRequest) (*elastic.DeleteResponse, error) {
	const op = "delete"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.Delete().Index(req.Index).Id(req.ID)
	if req.Routing != "" {
		svc = svc.Routing(req.Routing)
	}
	if req.Refresh != "" {
		svc = svc.Refresh(req.Refresh)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// DeleteByQuery removes every document matching the query and returns
// the number deleted.
func (c *ElasticClient) DeleteByQuery(ctx context.Context, query dsl.Query, indices ...string) (int64, error) {
	const op = "delete_by_query"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	timer := c.startTimer()
	res, err := c.client.DeleteByQuery(indices...).Query(query).Do(ctx)
	c.finish(logger, op, timer, err)
	if err != nil {
		return 0, wrapErr(err, op)
	}
	return res.Deleted, nil
}
