package elastic4s

import (
	"context"

	"github.com/tyth/elastic4s/pkg/dsl"
)

// RegisterQuery stores a query as a document in a percolator index so
// later documents can be matched against it. The index must map field
// "query" as type percolator.
func (c *ElasticClient) RegisterQuery(ctx context.Context, index, id string, query dsl.Query) error {
	src, err := query.Source()
	if err != nil {
		return wrapErr(err, "register_query")
	}
	_, err = c.Index(ctx, IndexRequest{
		Index:   index,
		ID:      id,
		Doc:     map[string]interface{}{"query": src},
		Refresh: "true",
	})
	return err
}

// Percolate matches a document against the queries registered in a
// percolator index and returns the IDs of the queries it satisfies.
func (c *ElasticClient) Percolate(ctx context.Context, index, field string, doc interface{}) ([]string, error) {
	const op = "percolate"
	logger := c.requestLogger(ctx, op)
	ctx, cancel := c.reqCtx(ctx)
	defer cancel()

	query := dsl.NewPercolatorQuery(field).Document(doc)
	svc, err := c.searchService(SearchRequest{
		Indices: []string{index},
		Source:  dsl.NewSearchSource().Query(query),
	})
	if err != nil {
		return nil, wrapErr(err, op)
	}
	timer := c.startTimer()
	res, err := svc.Do(ctx)
	c.finish(logger, op, timer, err)
	if err != nil {
		return nil, wrapErr(err, op)
	}
	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.Id)
	}
	return ids, nil
}
