package dsl

// TermsQuery finds documents that contain any of the exact terms
// specified in the inverted index.
type TermsQuery struct {
	field     string
	values    []interface{}
	boost     *float64
	queryName string
}

// NewTermsQuery creates and initializes a new TermsQuery.
func NewTermsQuery(field string, values ...interface{}) *TermsQuery {
	return &TermsQuery{field: field, values: values}
}

// Boost sets the boost for this query.
func (q *TermsQuery) Boost(boost float64) *TermsQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *TermsQuery) QueryName(name string) *TermsQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *TermsQuery) Source() (interface{}, error) {
	params := map[string]interface{}{q.field: q.values}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"terms": params}, nil
}
