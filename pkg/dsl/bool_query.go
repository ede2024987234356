package dsl

// BoolQuery matches documents matching boolean combinations of other
// queries: must, filter, should and must_not clauses.
type BoolQuery struct {
	mustClauses        []Query
	mustNotClauses     []Query
	filterClauses      []Query
	shouldClauses      []Query
	minimumShouldMatch string
	adjustPureNegative *bool
	boost              *float64
	queryName          string
}

// NewBoolQuery creates and initializes a new BoolQuery.
func NewBoolQuery() *BoolQuery {
	return &BoolQuery{}
}

// Must adds queries that must appear in matching documents and
// contribute to the score.
func (q *BoolQuery) Must(queries ...Query) *BoolQuery {
	q.mustClauses = append(q.mustClauses, queries...)
	return q
}

// MustNot adds queries that must not appear in matching documents.
func (q *BoolQuery) MustNot(queries ...Query) *BoolQuery {
	q.mustNotClauses = append(q.mustNotClauses, queries...)
	return q
}

// Filter adds queries that must appear in matching documents but do not
// contribute to the score.
func (q *BoolQuery) Filter(queries ...Query) *BoolQuery {
	q.filterClauses = append(q.filterClauses, queries...)
	return q
}

// Should adds queries that should appear in matching documents.
func (q *BoolQuery) Should(queries ...Query) *BoolQuery {
	q.shouldClauses = append(q.shouldClauses, queries...)
	return q
}

// MinimumShouldMatch sets the minimum number (or percentage) of should
// clauses that must match, e.g. "1" or "75%".
func (q *BoolQuery) MinimumShouldMatch(minimumShouldMatch string) *BoolQuery {
	q.minimumShouldMatch = minimumShouldMatch
	return q
}

// AdjustPureNegative indicates whether a query of only must_not clauses
// is interpreted as matching all other documents.
func (q *BoolQuery) AdjustPureNegative(adjust bool) *BoolQuery {
	q.adjustPureNegative = &adjust
	return q
}

// Boost sets the boost for this query.
func (q *BoolQuery) Boost(boost float64) *BoolQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *BoolQuery) QueryName(name string) *BoolQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *BoolQuery) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if len(q.mustClauses) > 0 {
		src, err := sources(q.mustClauses)
		if err != nil {
			return nil, err
		}
		params["must"] = src
	}
	if len(q.mustNotClauses) > 0 {
		src, err := sources(q.mustNotClauses)
		if err != nil {
			return nil, err
		}
		params["must_not"] = src
	}
	if len(q.filterClauses) > 0 {
		src, err := sources(q.filterClauses)
		if err != nil {
			return nil, err
		}
		params["filter"] = src
	}
	if len(q.shouldClauses) > 0 {
		src, err := sources(q.shouldClauses)
		if err != nil {
			return nil, err
		}
		params["should"] = src
	}
	if q.minimumShouldMatch != "" {
		params["minimum_should_match"] = q.minimumShouldMatch
	}
	if q.adjustPureNegative != nil {
		params["adjust_pure_negative"] = *q.adjustPureNegative
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"bool": params}, nil
}
