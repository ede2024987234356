package elastic4s

import (
	"net/http"
	"testing"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/stretchr/testify/assert"    // Test assertions e.g. equality.
	"github.com/stretchr/testify/require"   // Like assert but fails the test.
	gock "gopkg.in/h2non/gock.v1"           // HTTP request mocking.

	"github.com/tyth/elastic4s/internal/pkg/testutil" // Testing utilities.
	"github.com/tyth/elastic4s/pkg/dsl"
)

func TestElasticClient_Index(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Put("/tweets/_doc/1").
		JSON(map[string]interface{}{"user": "olivere", "message": "hello"}).
		Reply(http.StatusCreated).
		BodyString(`{"_index": "tweets", "_id": "1", "result": "created"}`)

	res, err := c.Index(ctx, IndexRequest{
		Index: "tweets",
		ID:    "1",
		Doc:   map[string]string{"user": "olivere", "message": "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "created", res.Result)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		c := newTestClient(t)

		gock.New(elastic.DefaultURL).
			Get("/tweets/_doc/1").
			Reply(http.StatusOK).
			BodyString(`{"_index": "tweets", "_id": "1", "found": true, "_source": {"user": "olivere"}}`)

		res, err := c.Get(ctx, GetRequest{Index: "tweets", ID: "1"})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Condition(t, gock.IsDone)
	})

	t.Run("not found", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		c := newTestClient(t)

		gock.New(elastic.DefaultURL).
			Get("/tweets/_doc/404").
			Reply(http.StatusNotFound).
			BodyString(`{"_index": "tweets", "_id": "404", "found": false}`)

		res, err := c.Get(ctx, GetRequest{Index: "tweets", ID: "404"})
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Condition(t, gock.IsDone)
	})
}

func TestElasticClient_Mget(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/_mget").
		Reply(http.StatusOK).
		BodyString(`{
			"docs": [
				{"_index": "tweets", "_id": "1", "found": true, "_source": {"user": "olivere"}},
				{"_index": "tweets", "_id": "2", "found": false}
			]
		}`)

	docs, err := c.Mget(ctx,
		MgetItem{Index: "tweets", ID: "1"},
		MgetItem{Index: "tweets", ID: "2"},
	)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.True(t, docs[0].Found)
	assert.False(t, docs[1].Found)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_Update(t *testing.T) {
	t.Run("doc", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		c := newTestClient(t)

		gock.New(elastic.DefaultURL).
			Post("/tweets/_update/1").
			Reply(http.StatusOK).
			BodyString(`{"_index": "tweets", "_id": "1", "result": "updated"}`)

		res, err := c.Update(ctx, UpdateRequest{
			Index:       "tweets",
			ID:          "1",
			Doc:         map[string]string{"message": "updated"},
			DocAsUpsert: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "updated", res.Result)
		assert.Condition(t, gock.IsDone)
	})

	t.Run("script", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		c := newTestClient(t)

		gock.New(elastic.DefaultURL).
			Post("/tweets/_update/1").
			Reply(http.StatusOK).
			BodyString(`{"_index": "tweets", "_id": "1", "result": "updated"}`)

		res, err := c.Update(ctx, UpdateRequest{
			Index: "tweets",
			ID:    "1",
			Script: dsl.NewScript("ctx._source.retweets += params.n").
				Param("n", 1),
			RetryOnConflict: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "updated", res.Result)
		assert.Condition(t, gock.IsDone)
	})
}

func TestElasticClient_Delete(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Delete("/tweets/_doc/1").
		Reply(http.StatusOK).
		BodyString(`{"_index": "tweets", "_id": "1", "result": "deleted"}`)

	res, err := c.Delete(ctx, DeleteRequest{Index: "tweets", ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "deleted", res.Result)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_DeleteByQuery(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/tweets/_delete_by_query").
		Reply(http.StatusOK).
		BodyString(`{"took": 10, "deleted": 5, "failures": []}`)

	n, err := c.DeleteByQuery(ctx, dsl.NewTermQuery("user", "spammer"), "tweets")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Condition(t, gock.IsDone)
}
