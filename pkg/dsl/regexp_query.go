package dsl

// RegexpQuery matches documents that have fields matching a regular
// expression (not analyzed).
type RegexpQuery struct {
	field                 string
	regexp                string
	flags                 string
	maxDeterminizedStates *int
	rewrite               string
	boost                 *float64
	queryName             string
}

// NewRegexpQuery creates and initializes a new RegexpQuery.
func NewRegexpQuery(field, regexp string) *RegexpQuery {
	return &RegexpQuery{field: field, regexp: regexp}
}

// Flags sets the regular expression syntax flags, e.g. "INTERSECTION|COMPLEMENT".
func (q *RegexpQuery) Flags(flags string) *RegexpQuery {
	q.flags = flags
	return q
}

// MaxDeterminizedStates limits the automaton the regexp may expand to.
func (q *RegexpQuery) MaxDeterminizedStates(n int) *RegexpQuery {
	q.maxDeterminizedStates = &n
	return q
}

// Rewrite sets the multi-term rewrite method.
func (q *RegexpQuery) Rewrite(rewrite string) *RegexpQuery {
	q.rewrite = rewrite
	return q
}

// Boost sets the boost for this query.
func (q *RegexpQuery) Boost(boost float64) *RegexpQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *RegexpQuery) QueryName(name string) *RegexpQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *RegexpQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"value": q.regexp}
	if q.flags != "" {
		params["flags"] = q.flags
	}
	if q.maxDeterminizedStates != nil {
		params["max_determinized_states"] = *q.maxDeterminizedStates
	}
	if q.rewrite != "" {
		params["rewrite"] = q.rewrite
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	rq := map[string]interface{}{q.field: params}
	if q.queryName != "" {
		rq["_name"] = q.queryName
	}
	return map[string]interface{}{"regexp": rq}, nil
}
