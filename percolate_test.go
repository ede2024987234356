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

func TestElasticClient_RegisterQuery(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Put("/alerts/_doc/cheap-tvs").
		JSON(map[string]interface{}{
			"query": map[string]interface{}{
				"match": map[string]interface{}{
					"description": map[string]interface{}{"query": "tv"},
				},
			},
		}).
		Reply(http.StatusCreated).
		BodyString(`{"_index": "alerts", "_id": "cheap-tvs", "result": "created"}`)

	err := c.RegisterQuery(ctx, "alerts", "cheap-tvs",
		dsl.NewMatchQuery("description", "tv"))
	require.NoError(t, err)
	assert.Condition(t, gock.IsDone)
}

func TestElasticClient_Percolate(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()
	defer gock.CleanUnmatchedRequest()
	c := newTestClient(t)

	gock.New(elastic.DefaultURL).
		Post("/alerts/_search").
		Reply(http.StatusOK).
		BodyString(`{
			"took": 2,
			"hits": {
				"total": {"value": 2, "relation": "eq"},
				"hits": [
					{"_index": "alerts", "_id": "cheap-tvs"},
					{"_index": "alerts", "_id": "all-electronics"}
				]
			}
		}`)

	ids, err := c.Percolate(ctx, "alerts", "query",
		map[string]interface{}{"description": "55 inch tv for sale"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cheap-tvs", "all-electronics"}, ids)
	assert.Condition(t, gock.IsDone)
}
