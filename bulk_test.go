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

func TestElasticClient_Bulk(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		c := newTestClient(t)

		gock.New(elastic.DefaultURL).
			Post("/_bulk").
			Reply(http.StatusOK).
			BodyString(`{
				"took": 3,
				"errors": false,
				"items": [
					{"index": {"_index": "tweets", "_id": "1", "status": 201}},
					{"update": {"_index": "tweets", "_id": "2", "status": 200}},
					{"delete": {"_index": "tweets", "_id": "3", "status": 200}}
				]
			}`)

		res, err := c.Bulk(ctx,
			BulkIndexAction{Index: "tweets", ID: "1", Doc: map[string]string{"user": "olivere"}},
			BulkUpdateAction{
				Index:  "tweets",
				ID:     "2",
				Script: dsl.NewScript("ctx._source.retweets += 1"),
			},
			BulkDeleteAction{Index: "tweets", ID: "3"},
		)
		require.NoError(t, err)
		assert.False(t, res.Errors)
		assert.Len(t, res.Items, 3)
		assert.Condition(t, gock.IsDone)
	})

	t.Run("invalid action", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		c := newTestClient(t)

		_, err := c.Bulk(ctx, BulkDeleteAction{Index: "tweets"})
		assert.Error(t, err)
	})
}
