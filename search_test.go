package elastic4s

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"  // Test assertions e.g. equality.
	"github.com/stretchr/testify/require" // Like assert but fails the test.
	gock "gopkg.in/h2non/gock.v1"         // HTTP request mocking.

	"github.com/tyth/elastic4s/internal/pkg/testutil" // Testing utilities.
	"github.com/tyth/elastic4s/pkg/dsl"
)

func TestElasticClient_Search(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/tweets/_search").
		JSON(map[string]interface{}{
			"query": map[string]interface{}{
				"term": map[string]interface{}{"user": "olivere"},
			},
			"size": 1,
		}).
		Reply(http.StatusOK).
		BodyString(`{
			"took": 3,
			"hits": {
				"total": {"value": 1, "relation": "eq"},
				"hits": [
					{"_index": "tweets", "_id": "1", "_source": {"user": "olivere"}}
				]
			}
		}`)

	res, err := c.Search(ctx, SearchRequest{
		Indices: []string{"tweets"},
		Source: dsl.NewSearchSource().
			Query(dsl.NewTermQuery("user", "olivere")).
			Size(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.TotalHits())
	assert.Equal(t, "1", res.Hits.Hits[0].Id)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_Search_queryError(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	c := newTestClient(t)

	// Missing bounding box corners make the source uncompilable.
	_, err := c.Search(ctx, SearchRequest{
		Source: dsl.NewSearchSource().Query(dsl.NewGeoBoundingBoxQuery("pin")),
	})
	assert.Error(t, err)
}

func TestElasticClient_Count(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/tweets/_count").
		Reply(http.StatusOK).
		BodyString(`{"count": 42}`)

	n, err := c.Count(ctx, dsl.NewTermQuery("user", "olivere"), "tweets")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_MultiSearch(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/tweets/_search").
		Reply(http.StatusOK).
		BodyString(`{"took": 1, "hits": {"total": {"value": 2, "relation": "eq"}, "hits": []}}`)
	gock.New(elastic.DefaultURL).
		Post("/users/_search").
		Reply(http.StatusOK).
		BodyString(`{"took": 1, "hits": {"total": {"value": 5, "relation": "eq"}, "hits": []}}`)

	results, err := c.MultiSearch(ctx,
		SearchRequest{Indices: []string{"tweets"}},
		SearchRequest{Indices: []string{"users"}},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].TotalHits())
	assert.Equal(t, int64(5), results[1].TotalHits())
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_MultiSearch_noRequests(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	c := newTestClient(t)

	done := make(chan struct{})
	var results []*elastic.SearchResult
	var err error
	go func() {
		defer close(done)
		results, err = c.MultiSearch(ctx)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("MultiSearch with no requests did not return")
	}
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestElasticClient_ScrollAll(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/tweets/_search").
		Reply(http.StatusOK).
		BodyString(`{
			"_scroll_id": "scroll-1",
			"took": 2,
			"hits": {
				"total": {"value": 2, "relation": "eq"},
				"hits": [
					{"_index": "tweets", "_id": "1"},
					{"_index": "tweets", "_id": "2"}
				]
			}
		}`)
	gock.New(elastic.DefaultURL).
		Post("/_search/scroll").
		Reply(http.StatusOK).
		BodyString(`{
			"_scroll_id": "scroll-1",
			"took": 1,
			"hits": {"total": {"value": 2, "relation": "eq"}, "hits": []}
		}`)
	gock.New(elastic.DefaultURL).
		Delete("/_search/scroll").
		Reply(http.StatusOK).
		BodyString(`{"succeeded": true, "num_freed": 1}`)

	var mu sync.Mutex
	var ids []string
	err := c.ScrollAll(ctx, ScrollRequest{
		Indices:   []string{"tweets"},
		Query:     dsl.NewMatchAllQuery(),
		Size:      2,
		KeepAlive: "1m",
	}, func(_ context.Context, res *elastic.SearchResult) error {
		mu.Lock()
		defer mu.Unlock()
		for _, hit := range res.Hits.Hits {
			ids = append(ids, hit.Id)
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, ids)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_ScrollAll_handlerError(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/tweets/_search").
		Reply(http.StatusOK).
		BodyString(`{
			"_scroll_id": "scroll-1",
			"took": 2,
			"hits": {
				"total": {"value": 1, "relation": "eq"},
				"hits": [{"_index": "tweets", "_id": "1"}]
			}
		}`)
	gock.New(elastic.DefaultURL).
		Post("/_search/scroll").
		Reply(http.StatusInternalServerError).
		BodyString(`{"error": {"type": "search_phase_execution_exception", "reason": "shard failure"}, "status": 500}`)
	gock.New(elastic.DefaultURL).
		Delete("/_search/scroll").
		Reply(http.StatusOK).
		BodyString(`{"succeeded": true, "num_freed": 1}`)

	errBroken := errors.New("handler exploded")
	err := c.ScrollAll(ctx, ScrollRequest{
		Indices: []string{"tweets"},
		Query:   dsl.NewMatchAllQuery(),
	}, func(context.Context, *elastic.SearchResult) error {
		return errBroken
	})
	// The handler's error must win over whatever the cancelled page
	// fetch reported.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler exploded")
}
