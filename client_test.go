package elastic4s

import (
	"context"
	"testing"
	"time"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/stretchr/testify/assert"    // Test assertions e.g. equality.
	"github.com/stretchr/testify/require"   // Like assert but fails the test.

	"github.com/tyth/elastic4s/internal/pkg/testutil" // Testing utilities.
	"github.com/tyth/elastic4s/pkg/dsl"
)

func newTestClient(t *testing.T) *ElasticClient {
	client, err := elastic.NewSimpleClient()
	require.NoError(t, err)
	return NewElasticClient(client)
}

func TestDialContext(t *testing.T) {
	_, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	t.Run("no retry", func(t *testing.T) {
		c, err := DialContext(context.Background(), 0, 0,
			elastic.SetSniff(false),
			elastic.SetHealthcheck(false),
		)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("with retry", func(t *testing.T) {
		c, err := DialContext(context.Background(), time.Millisecond, time.Second,
			elastic.SetSniff(false),
			elastic.SetHealthcheck(false),
		)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestElasticClient_reqCtx(t *testing.T) {
	_, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	c := newTestClient(t)

	t.Run("applies default timeout", func(t *testing.T) {
		ctx, cancel := c.reqCtx(context.Background())
		defer cancel()
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)
	})

	t.Run("keeps caller deadline", func(t *testing.T) {
		parent, parentCancel := context.WithTimeout(context.Background(), time.Minute)
		defer parentCancel()
		ctx, cancel := c.reqCtx(parent)
		defer cancel()
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, time.Second)
	})

	t.Run("zero timeout disables default", func(t *testing.T) {
		c := newTestClient(t).SetTimeout(0)
		ctx, cancel := c.reqCtx(context.Background())
		defer cancel()
		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestWrapErr(t *testing.T) {
	assert.NoError(t, wrapErr(nil, "search"))
	err := wrapErr(assert.AnError, "search")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}

func TestElasticScript(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		s := dsl.NewScript("ctx._source.counter += params.n").
			Lang("painless").
			Param("n", 1)
		script, err := elasticScript(s)
		require.NoError(t, err)
		src, err := script.Source()
		require.NoError(t, err)
		m, ok := src.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "ctx._source.counter += params.n", m["source"])
		assert.Equal(t, "painless", m["lang"])
	})

	t.Run("stored", func(t *testing.T) {
		script, err := elasticScript(dsl.NewScriptStored("my-script"))
		require.NoError(t, err)
		src, err := script.Source()
		require.NoError(t, err)
		m, ok := src.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "my-script", m["id"])
	})
}
