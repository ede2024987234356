package dsl

// RangeQuery matches documents with fields that have terms
// within a certain range.
type RangeQuery struct {
	field     string
	gt        interface{}
	gte       interface{}
	lt        interface{}
	lte       interface{}
	timeZone  string
	format    string
	relation  string
	boost     *float64
	queryName string
}

// NewRangeQuery creates and initializes a new RangeQuery.
func NewRangeQuery(field string) *RangeQuery {
	return &RangeQuery{field: field}
}

// Gt sets an exclusive lower bound.
func (q *RangeQuery) Gt(v interface{}) *RangeQuery {
	q.gt = v
	return q
}

// Gte sets an inclusive lower bound.
func (q *RangeQuery) Gte(v interface{}) *RangeQuery {
	q.gte = v
	return q
}

// Lt sets an exclusive upper bound.
func (q *RangeQuery) Lt(v interface{}) *RangeQuery {
	q.lt = v
	return q
}

// Lte sets an inclusive upper bound.
func (q *RangeQuery) Lte(v interface{}) *RangeQuery {
	q.lte = v
	return q
}

// TimeZone converts date bounds from the given time zone to UTC.
func (q *RangeQuery) TimeZone(timeZone string) *RangeQuery {
	q.timeZone = timeZone
	return q
}

// Format is the date format used to parse date bounds.
func (q *RangeQuery) Format(format string) *RangeQuery {
	q.format = format
	return q
}

// Relation is used for range fields: INTERSECTS, CONTAINS or WITHIN.
func (q *RangeQuery) Relation(relation string) *RangeQuery {
	q.relation = relation
	return q
}

// Boost sets the boost for this query.
func (q *RangeQuery) Boost(boost float64) *RangeQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *RangeQuery) QueryName(name string) *RangeQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *RangeQuery) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if q.gt != nil {
		params["gt"] = q.gt
	}
	if q.gte != nil {
		params["gte"] = q.gte
	}
	if q.lt != nil {
		params["lt"] = q.lt
	}
	if q.lte != nil {
		params["lte"] = q.lte
	}
	if q.timeZone != "" {
		params["time_zone"] = q.timeZone
	}
	if q.format != "" {
		params["format"] = q.format
	}
	if q.relation != "" {
		params["relation"] = q.relation
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	rq := map[string]interface{}{q.field: params}
	if q.queryName != "" {
		rq["_name"] = q.queryName
	}
	return map[string]interface{}{"range": rq}, nil
}
