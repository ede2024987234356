package dsl

// ExistsQuery finds documents that contain an indexed value
// for the given field.
type ExistsQuery struct {
	field     string
	queryName string
}

// NewExistsQuery creates and initializes a new ExistsQuery.
func NewExistsQuery(field string) *ExistsQuery {
	return &ExistsQuery{field: field}
}

// QueryName sets the query name for the query.
func (q *ExistsQuery) QueryName(name string) *ExistsQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *ExistsQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"field": q.field}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"exists": params}, nil
}
