package dsl

// TermQuery finds documents that contain the exact term specified
// in the inverted index.
type TermQuery struct {
	field     string
	value     interface{}
	boost     *float64
	queryName string
}

// NewTermQuery creates and initializes a new TermQuery.
func NewTermQuery(field string, value interface{}) *TermQuery {
	return &TermQuery{field: field, value: value}
}

// Boost sets the boost for this query.
func (q *TermQuery) Boost(boost float64) *TermQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *TermQuery) QueryName(name string) *TermQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *TermQuery) Source() (interface{}, error) {
	if q.boost == nil && q.queryName == "" {
		return map[string]interface{}{
			"term": map[string]interface{}{q.field: q.value},
		}, nil
	}
	params := map[string]interface{}{"value": q.value}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	tq := map[string]interface{}{q.field: params}
	if q.queryName != "" {
		tq["_name"] = q.queryName
	}
	return map[string]interface{}{"term": tq}, nil
}
