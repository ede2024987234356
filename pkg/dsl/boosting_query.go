package dsl

// BoostingQuery demotes documents matching the negative query without
// excluding them, by multiplying their score with negative_boost.
type BoostingQuery struct {
	positive      Query
	negative      Query
	negativeBoost float64
	queryName     string
}

// NewBoostingQuery creates and initializes a new BoostingQuery.
func NewBoostingQuery(positive, negative Query, negativeBoost float64) *BoostingQuery {
	return &BoostingQuery{
		positive:      positive,
		negative:      negative,
		negativeBoost: negativeBoost,
	}
}

// QueryName sets the query name for the query.
func (q *BoostingQuery) QueryName(name string) *BoostingQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *BoostingQuery) Source() (interface{}, error) {
	positive, err := q.positive.Source()
	if err != nil {
		return nil, err
	}
	negative, err := q.negative.Source()
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"positive":       positive,
		"negative":       negative,
		"negative_boost": q.negativeBoost,
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"boosting": params}, nil
}
