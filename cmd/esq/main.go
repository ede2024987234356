// Command esq runs an ad-hoc query against an Elasticsearch cluster
// and prints the matching documents as JSON lines.
package main

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff"    // Backoff while waiting for the cluster
	elastic "github.com/olivere/elastic/v7"  // Elasticsearch client
	"github.com/tidwall/gjson"               // Pull fields out of JSON hits
	"go.uber.org/zap"                        // Logging
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line option parser

	"github.com/tyth/elastic4s"
	"github.com/tyth/elastic4s/pkg/dsl"
)

// Retry timeouts for the initial connection.
const (
	esRetryInit = 150 * time.Millisecond
	esRetryMax  = 1200 * time.Millisecond
)

// defaultURL is the default Elasticsearch URL.
const defaultURL = "http://localhost:9200"

// Command line opts
var (
	esURL   = kingpin.Flag("endpoint", "Elasticsearch URL. Default: "+defaultURL).Default(defaultURL).URL()
	index   = kingpin.Flag("index", "Index to search. Default: all indices.").String()
	size    = kingpin.Flag("size", "Max number of hits to return.").Default("10").Int()
	sortBy  = kingpin.Flag("sort", "Field to sort by, descending. Default: relevance.").String()
	idsOnly = kingpin.Flag("ids", "Print document IDs instead of sources.").Bool()
	query   = kingpin.Arg("query", "Query in query_string syntax. Default: match all.").String()
)

func main() {
	kingpin.CommandLine.Help = "Run a query against Elasticsearch and print the hits as JSON lines."
	kingpin.Parse()

	logger := elastic4s.SetupLogging()
	defer func() {
		// Flush buffered logs before exiting.
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := elastic4s.DialContext(ctx, esRetryInit, esRetryMax,
		elastic.SetURL((*esURL).String()),
		elastic.SetSniff(false),
	)
	if err != nil {
		logger.Fatal("error connecting to Elasticsearch", zap.Error(err))
	}

	// Wait for the cluster to answer pings before querying.
	err = backoff.Retry(func() error {
		_, _, err := client.Ping((*esURL).String()).Do(ctx)
		return err
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
	if err != nil {
		logger.Fatal("cluster never became reachable", zap.Error(err))
	}

	var q dsl.Query
	if *query != "" {
		q = dsl.NewQueryStringQuery(*query)
	} else {
		q = dsl.NewMatchAllQuery()
	}
	source := dsl.NewSearchSource().Query(q).Size(*size)
	if *sortBy != "" {
		source = source.Sort(dsl.NewFieldSort(*sortBy).Desc())
	}

	req := elastic4s.SearchRequest{Source: source}
	if *index != "" {
		req.Indices = []string{*index}
	}
	res, err := elastic4s.NewElasticClient(client).Search(ctx, req)
	if err != nil {
		logger.Fatal("search failed", zap.Error(err))
	}

	for _, hit := range res.Hits.Hits {
		if *idsOnly {
			fmt.Println(hit.Id)
			continue
		}
		src := string(hit.Source)
		if !gjson.Valid(src) {
			logger.Warn("skipping hit with invalid source", zap.String("id", hit.Id))
			continue
		}
		fmt.Println(gjson.Parse(src).String())
	}
	logger.Info("search finished",
		zap.Int64("total", res.TotalHits()),
		zap.Int("returned", len(res.Hits.Hits)),
	)
}
