package dsl

// IdsQuery finds documents by their IDs.
type IdsQuery struct {
	ids       []string
	boost     *float64
	queryName string
}

// NewIdsQuery creates and initializes a new IdsQuery.
func NewIdsQuery(ids ...string) *IdsQuery {
	return &IdsQuery{ids: ids}
}

// Ids adds IDs to the query.
func (q *IdsQuery) Ids(ids ...string) *IdsQuery {
	q.ids = append(q.ids, ids...)
	return q
}

// Boost sets the boost for this query.
func (q *IdsQuery) Boost(boost float64) *IdsQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *IdsQuery) QueryName(name string) *IdsQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *IdsQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"values": q.ids}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"ids": params}, nil
}
