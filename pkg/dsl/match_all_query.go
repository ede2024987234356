package dsl

// MatchAllQuery matches all documents, giving them all a _score of 1.0
// unless a boost is set.
type MatchAllQuery struct {
	boost     *float64
	queryName string
}

// NewMatchAllQuery creates and initializes a new MatchAllQuery.
func NewMatchAllQuery() *MatchAllQuery {
	return &MatchAllQuery{}
}

// Boost sets the boost for this query.
func (q *MatchAllQuery) Boost(boost float64) *MatchAllQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *MatchAllQuery) QueryName(name string) *MatchAllQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *MatchAllQuery) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"match_all": params}, nil
}

// MatchNoneQuery matches no documents. It is the inverse of MatchAllQuery.
type MatchNoneQuery struct {
	queryName string
}

// NewMatchNoneQuery creates and initializes a new MatchNoneQuery.
func NewMatchNoneQuery() *MatchNoneQuery {
	return &MatchNoneQuery{}
}

// QueryName sets the query name for the query.
func (q *MatchNoneQuery) QueryName(name string) *MatchNoneQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *MatchNoneQuery) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"match_none": params}, nil
}
