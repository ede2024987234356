package dsl

// PrefixQuery matches documents that have fields containing terms
// with a specified prefix.
type PrefixQuery struct {
	field     string
	prefix    string
	rewrite   string
	boost     *float64
	queryName string
}

// NewPrefixQuery creates and initializes a new PrefixQuery.
func NewPrefixQuery(field, prefix string) *PrefixQuery {
	return &PrefixQuery{field: field, prefix: prefix}
}

// Rewrite sets the multi-term rewrite method.
func (q *PrefixQuery) Rewrite(rewrite string) *PrefixQuery {
	q.rewrite = rewrite
	return q
}

// Boost sets the boost for this query.
func (q *PrefixQuery) Boost(boost float64) *PrefixQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *PrefixQuery) QueryName(name string) *PrefixQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *PrefixQuery) Source() (interface{}, error) {
	if q.rewrite == "" && q.boost == nil && q.queryName == "" {
		return map[string]interface{}{
			"prefix": map[string]interface{}{q.field: q.prefix},
		}, nil
	}
	params := map[string]interface{}{"value": q.prefix}
	if q.rewrite != "" {
		params["rewrite"] = q.rewrite
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	pq := map[string]interface{}{q.field: params}
	if q.queryName != "" {
		pq["_name"] = q.queryName
	}
	return map[string]interface{}{"prefix": pq}, nil
}
