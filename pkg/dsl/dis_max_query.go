package dsl

// DisMaxQuery generates the union of documents produced by its
// subqueries and scores each document with the maximum score of any
// subquery, plus a tie-breaking increment for additional matches.
type DisMaxQuery struct {
	queries    []Query
	tieBreaker *float64
	boost      *float64
	queryName  string
}

// NewDisMaxQuery creates and initializes a new DisMaxQuery.
func NewDisMaxQuery(queries ...Query) *DisMaxQuery {
	return &DisMaxQuery{queries: queries}
}

// Query adds subqueries.
func (q *DisMaxQuery) Query(queries ...Query) *DisMaxQuery {
	q.queries = append(q.queries, queries...)
	return q
}

// TieBreaker mixes the scores of non-best matching subqueries into the score.
func (q *DisMaxQuery) TieBreaker(tieBreaker float64) *DisMaxQuery {
	q.tieBreaker = &tieBreaker
	return q
}

// Boost sets the boost for this query.
func (q *DisMaxQuery) Boost(boost float64) *DisMaxQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *DisMaxQuery) QueryName(name string) *DisMaxQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *DisMaxQuery) Source() (interface{}, error) {
	srcs := make([]interface{}, 0, len(q.queries))
	for _, sub := range q.queries {
		src, err := sub.Source()
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	params := map[string]interface{}{"queries": srcs}
	if q.tieBreaker != nil {
		params["tie_breaker"] = *q.tieBreaker
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"dis_max": params}, nil
}
