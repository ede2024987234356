package es

import (
	"net/http"
	"testing"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/stretchr/testify/assert"    // Test assertions e.g. equality.
	gock "gopkg.in/h2non/gock.v1"           // HTTP request mocking.

	"github.com/tyth/elastic4s/internal/pkg/testutil" // Testing utilities.
)

func TestOpenPointInTimeService(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		client, err := elastic.NewSimpleClient()
		if err != nil {
			panic(err)
		}

		gock.New(elastic.DefaultURL).
			Post("/twitter/_pit").
			MatchParam("keep_alive", "1m").
			Reply(http.StatusOK).
			BodyString(`{"id": "46ToAwMDaWR5BXV1aWQy"}`)

		resp, err := NewOpenPointInTimeService(client).
			Index("twitter").
			KeepAlive("1m").
			Do(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "46ToAwMDaWR5BXV1aWQy", resp.ID)
		assert.Condition(t, gock.IsDone)
	})

	t.Run("validate", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		client, err := elastic.NewSimpleClient()
		if err != nil {
			panic(err)
		}

		_, err = NewOpenPointInTimeService(client).Do(ctx)
		assert.Error(t, err)
	})

	t.Run("error", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()
		defer gock.CleanUnmatchedRequest()
		client, err := elastic.NewSimpleClient()
		if err != nil {
			panic(err)
		}

		gock.New(elastic.DefaultURL).
			Post("/twitter/_pit").
			Reply(http.StatusInternalServerError).
			BodyString(http.StatusText(http.StatusInternalServerError))

		_, err = NewOpenPointInTimeService(client).
			Index("twitter").
			KeepAlive("1m").
			Do(ctx)
		assert.Error(t, err)
		assert.Condition(t, gock.IsDone)
	})
}
