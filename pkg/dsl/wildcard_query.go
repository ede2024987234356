package dsl

// WildcardQuery matches documents that have fields matching a wildcard
// expression (not analyzed). Supported wildcards are "*", which matches
// any character sequence, and "?", which matches any single character.
type WildcardQuery struct {
	field     string
	wildcard  string
	rewrite   string
	boost     *float64
	queryName string
}

// NewWildcardQuery creates and initializes a new WildcardQuery.
func NewWildcardQuery(field, wildcard string) *WildcardQuery {
	return &WildcardQuery{field: field, wildcard: wildcard}
}

// Rewrite sets the multi-term rewrite method.
func (q *WildcardQuery) Rewrite(rewrite string) *WildcardQuery {
	q.rewrite = rewrite
	return q
}

// Boost sets the boost for this query.
func (q *WildcardQuery) Boost(boost float64) *WildcardQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *WildcardQuery) QueryName(name string) *WildcardQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *WildcardQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"wildcard": q.wildcard}
	if q.rewrite != "" {
		params["rewrite"] = q.rewrite
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	wq := map[string]interface{}{q.field: params}
	if q.queryName != "" {
		wq["_name"] = q.queryName
	}
	return map[string]interface{}{"wildcard": wq}, nil
}
