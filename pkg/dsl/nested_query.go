package dsl

// NestedQuery wraps a query to run it against documents of a nested
// field, joining matching nested documents to their root document.
type NestedQuery struct {
	path           string
	query          Query
	scoreMode      string
	ignoreUnmapped *bool
	boost          *float64
	queryName      string
}

// NewNestedQuery creates and initializes a new NestedQuery.
func NewNestedQuery(path string, query Query) *NestedQuery {
	return &NestedQuery{path: path, query: query}
}

// ScoreMode sets how scores of matching nested documents combine into
// the root document's score: "avg" (default), "max", "min", "sum" or "none".
func (q *NestedQuery) ScoreMode(scoreMode string) *NestedQuery {
	q.scoreMode = scoreMode
	return q
}

// IgnoreUnmapped returns no documents instead of an error when the
// path is not mapped.
func (q *NestedQuery) IgnoreUnmapped(ignore bool) *NestedQuery {
	q.ignoreUnmapped = &ignore
	return q
}

// Boost sets the boost for this query.
func (q *NestedQuery) Boost(boost float64) *NestedQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *NestedQuery) QueryName(name string) *NestedQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *NestedQuery) Source() (interface{}, error) {
	query, err := q.query.Source()
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"path":  q.path,
		"query": query,
	}
	if q.scoreMode != "" {
		params["score_mode"] = q.scoreMode
	}
	if q.ignoreUnmapped != nil {
		params["ignore_unmapped"] = *q.ignoreUnmapped
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"nested": params}, nil
}
