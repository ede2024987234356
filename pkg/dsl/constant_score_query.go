package dsl

// ConstantScoreQuery wraps a filter query and gives every matching
// document a constant _score equal to the boost.
type ConstantScoreQuery struct {
	filter    Query
	boost     *float64
	queryName string
}

// NewConstantScoreQuery creates and initializes a new ConstantScoreQuery.
func NewConstantScoreQuery(filter Query) *ConstantScoreQuery {
	return &ConstantScoreQuery{filter: filter}
}

// Boost sets the score given to every matching document.
func (q *ConstantScoreQuery) Boost(boost float64) *ConstantScoreQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *ConstantScoreQuery) QueryName(name string) *ConstantScoreQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *ConstantScoreQuery) Source() (interface{}, error) {
	filter, err := q.filter.Source()
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{"filter": filter}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"constant_score": params}, nil
}
