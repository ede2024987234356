package elastic4s

import (
	"context"
	"time"

	elastic "github.com/olivere/elastic/v7"
	"github.com/pkg/errors"

	"github.com/tyth/elastic4s/pkg/dsl"
)

// BulkAction is one action in a bulk request: index, update or delete.
type BulkAction interface {
	translate() (elastic.BulkableRequest, error)
}

// BulkIndexAction indexes one document as part of a bulk request.
type BulkIndexAction struct {
	// Index is the target index. Required.
	Index string

	// ID of the document. Empty lets the engine generate one.
	ID string

	// Doc is the document body.
	Doc interface{}

	// Routing is a specific routing value.
	Routing string

	// OpType is "index" (default) or "create".
	OpType string
}

func (a BulkIndexAction) translate() (elastic.BulkableRequest, error) {
	if a.Index == "" {
		return nil, errors.New("elastic4s: bulk index action requires an index")
	}
	req := elastic.NewBulkIndexRequest().Index(a.Index).Doc(a.Doc)
	if a.ID != "" {
		req = req.Id(a.ID)
	}
	if a.Routing != "" {
		req = req.Routing(a.Routing)
	}
	if a.OpType != "" {
		req = req.OpType(a.OpType)
	}
	return req, nil
}

// BulkUpdateAction applies a partial update as part of a bulk request.
// Exactly one of Doc and Script must be set.
type BulkUpdateAction struct {
	Index string
	ID    string

	Doc    interface{}
	Script *dsl.Script

	DocAsUpsert     bool
	RetryOnConflict int
	Routing         string
}

func (a BulkUpdateAction) translate() (elastic.BulkableRequest, error) {
	if a.Index == "" || a.ID == "" {
		return nil, errors.New("elastic4s: bulk update action requires an index and an id")
	}
	req := elastic.NewBulkUpdateRequest().Index(a.Index).Id(a.ID)
	if a.Doc != nil {
		req = req.Doc(a.Doc)
	}
	if a.Script != nil {
		script, err := elasticScript(a.Script)
		if err != nil {
			return nil, err
		}
		req = req.Script(script)
	}
	if a.DocAsUpsert {
		req = req.DocAsUpsert(true)
	}
	if a.RetryOnConflict > 0 {
		req = req.RetryOnConflict(a.RetryOnConflict)
	}
	if a.Routing != "" {
		req = req.Routing(a.Routing)
	}
	return req, nil
}

// BulkDeleteAction removes one document as part of a bulk request.
type BulkDeleteAction struct {
	Index   string
	ID      string
	Routing string
}

func (a BulkDeleteAction) translate() (elastic.BulkableRequest, error) {
	if a.Index == "" || a.ID == "" {
		return nil, errors.New("elastic4s: bulk delete action requires an index and an id")
	}
	req := elastic.NewBulkDeleteRequest().Index(a.Index).Id(a.ID)
	if a.Routing != "" {
		req = req.Routing(a.Routing)
	}
	return req, nil
}

// Bulk executes the given actions in one bulk request. The response
// reports per-action outcomes; a response with Errors set is not a Go
// error.
func (c *ElasticClient) Bulk(ctx context.Context, actions ...BulkAction) (*elastic.BulkResponse, error) {
	const op = "bulk"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	svc := c.client.Bulk()
	for _, action := range actions {
		req, err := action.translate()
		if err != nil {
			return nil, wrapErr(err, op)
		}
		svc = svc.Add(req)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	return res, wrapErr(err, op)
}

// BulkProcessorConfig tunes a background bulk processor.
// Zero values fall back to the wrapped client's defaults.
type BulkProcessorConfig struct {
	// Name identifies the processor in stats and logs.
	Name string

	// Workers is the number of concurrent flush workers.
	Workers int

	// FlushActions flushes after this many buffered actions.
	FlushActions int

	// FlushBytes flushes after this many buffered bytes.
	FlushBytes int

	// FlushInterval flushes on a timer regardless of buffer size.
	FlushInterval time.Duration
}

// StartBulkProcessor starts a background processor that buffers bulk
// actions and flushes them per the config. Callers must Close it when
// done.
func (c *ElasticClient) StartBulkProcessor(ctx context.Context, cfg BulkProcessorConfig) (*elastic.BulkProcessor, error) {
	svc := c.client.BulkProcessor()
	if cfg.Name != "" {
		svc = svc.Name(cfg.Name)
	}
	if cfg.Workers > 0 {
		svc = svc.Workers(cfg.Workers)
	}
	if cfg.FlushActions > 0 {
		svc = svc.BulkActions(cfg.FlushActions)
	}
	if cfg.FlushBytes > 0 {
		svc = svc.BulkSize(cfg.FlushBytes)
	}
	if cfg.FlushInterval > 0 {
		svc = svc.FlushInterval(cfg.FlushInterval)
	}
	p, err := svc.Do(ctx)
	return p, wrapErr(err, "bulk_processor")
}
