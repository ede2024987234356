// Package elastic4s provides a typed query DSL for Elasticsearch on top
// of github.com/olivere/elastic. Definition objects from pkg/dsl compile
// to query-DSL JSON; ElasticClient translates request definitions into
// the wrapped client's services and forwards execution to it.
package elastic4s

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	elastic "github.com/olivere/elastic/v7"
	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tyth/elastic4s/pkg/ctxlog"
	"github.com/tyth/elastic4s/pkg/dsl"
	"github.com/tyth/elastic4s/pkg/metrics"
)

// DefaultTimeout bounds requests whose context carries no deadline.
const DefaultTimeout = 30 * time.Second

// ElasticClient wraps an Elasticsearch client with the translation
// layer: request definitions in, wrapped-client calls out. It adds a
// default per-request timeout, request logging and optional Prometheus
// instrumentation, and nothing else; retries, connection management
// and response parsing belong to the wrapped client.
type ElasticClient struct {
	client  *elastic.Client
	logger  *zap.Logger
	inst    *Instrumentation
	timeout time.Duration

	// IndexExists cache, created on first use.
	existsMu sync.Mutex
	exists   *cache.Cache
}

// NewElasticClient creates a new ElasticClient.
func NewElasticClient(client *elastic.Client) *ElasticClient {
	return &ElasticClient{
		client:  client,
		logger:  zap.L().Named("ElasticClient"),
		timeout: DefaultTimeout,
	}
}

// SetTimeout overrides the timeout applied to requests whose context
// has no deadline. Zero disables the default timeout.
func (c *ElasticClient) SetTimeout(d time.Duration) *ElasticClient {
	c.timeout = d
	return c
}

// Instrument records request metrics in the given Instrumentation.
// The caller is responsible for registering it.
func (c *ElasticClient) Instrument(inst *Instrumentation) *ElasticClient {
	c.inst = inst
	return c
}

// Client returns the wrapped client for operations this layer doesn't cover.
func (c *ElasticClient) Client() *elastic.Client {
	return c.client
}

// DialContext returns a new Elasticsearch client that uses exponential
// backoff to retry the initial connection, which the standard
// elastic.NewClient() func doesn't. The same backoff is installed as
// the client's retrier for later requests.
//
// If the max duration <= 0, a client without retry is returned.
// DialContext won't retry on non-connection errors.
func DialContext(ctx context.Context, init, max time.Duration, options ...elastic.ClientOptionFunc) (*elastic.Client, error) {
	if max <= 0 {
		return elastic.DialContext(ctx, options...)
	}
	logger := zap.L().Named("Dial")
	backoff := elastic.NewExponentialBackoff(init, max)
	retrier := elastic.NewBackoffRetrier(backoff)
	options = append(options, elastic.SetRetrier(retrier))
	for i := 0; ; i++ {
		c, err := elastic.DialContext(ctx, options...)
		if err == nil {
			return c, nil
		}
		if !elastic.IsConnErr(err) {
			return nil, err
		}
		wait, goahead, _ := retrier.Retry(ctx, i, nil, nil, err)
		if !goahead {
			return nil, err
		}
		logger.Info("retrying connection to Elasticsearch",
			zap.Error(err),
			zap.Duration("wait", wait),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Dial is DialContext with a background context.
func Dial(init, max time.Duration, options ...elastic.ClientOptionFunc) (*elastic.Client, error) {
	return DialContext(context.Background(), init, max, options...)
}

// reqCtx applies the default timeout when the caller's context has no deadline.
func (c *ElasticClient) reqCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// requestLogger returns the logger for one request: the context's
// logger if one is embedded, the client's otherwise, tagged with the
// operation and a fresh request ID for correlation.
func (c *ElasticClient) requestLogger(ctx context.Context, op string) *zap.Logger {
	logger, ok := ctxlog.FromContext(ctx)
	if !ok {
		logger = c.logger
	}
	return logger.With(
		zap.String("operation", op),
		zap.String("request_id", uuid.New().String()),
	)
}

// startTimer starts timing one request against the instrumentation's
// duration metric, if any.
func (c *ElasticClient) startTimer() *metrics.VecTimer {
	var vec prometheus.ObserverVec
	if c.inst != nil {
		vec = c.inst.RequestDuration
	}
	return metrics.NewVecTimer(vec)
}

// finish logs and records the outcome of one request.
func (c *ElasticClient) finish(logger *zap.Logger, op string, timer *metrics.VecTimer, err error) {
	took := timer.ObserveWithLabelValues(op)
	if c.inst != nil {
		c.inst.countRequest(op, err)
	}
	if err != nil {
		logger.Error("elasticsearch request failed",
			zap.Duration("took", took),
			zap.Error(err),
		)
		return
	}
	logger.Debug("elasticsearch request finished", zap.Duration("took", took))
}

// wrapErr annotates an error with the failing operation.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "elastic4s: %s failed", op)
}

// elasticScript translates a dsl script definition into the wrapped
// client's script type.
func elasticScript(s *dsl.Script) (*elastic.Script, error) {
	src, err := s.Source()
	if err != nil {
		return nil, err
	}
	params, ok := src.(map[string]interface{})
	if !ok {
		return nil, errors.New("elastic4s: unexpected script source")
	}
	var script *elastic.Script
	if id, ok := params["id"].(string); ok {
		script = elastic.NewScriptStored(id)
	} else if source, ok := params["source"].(string); ok {
		script = elastic.NewScript(source)
	} else {
		return nil, errors.New("elastic4s: script has neither source nor id")
	}
	if lang, ok := params["lang"].(string); ok {
		script = script.Lang(lang)
	}
	if p, ok := params["params"].(map[string]interface{}); ok {
		script = script.Params(p)
	}
	return script, nil
}
