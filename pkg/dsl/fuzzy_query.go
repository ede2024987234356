package dsl

// FuzzyQuery matches documents that contain terms within a certain
// Levenshtein edit distance of the given term.
type FuzzyQuery struct {
	field          string
	value          interface{}
	fuzziness      interface{}
	prefixLength   *int
	maxExpansions  *int
	transpositions *bool
	rewrite        string
	boost          *float64
	queryName      string
}

// NewFuzzyQuery creates and initializes a new FuzzyQuery.
func NewFuzzyQuery(field string, value interface{}) *FuzzyQuery {
	return &FuzzyQuery{field: field, value: value}
}

// Fuzziness is the maximum edit distance: a number, "AUTO", etc.
func (q *FuzzyQuery) Fuzziness(fuzziness interface{}) *FuzzyQuery {
	q.fuzziness = fuzziness
	return q
}

// PrefixLength is the number of leading characters that must match exactly.
func (q *FuzzyQuery) PrefixLength(n int) *FuzzyQuery {
	q.prefixLength = &n
	return q
}

// MaxExpansions is the maximum number of terms the query expands to.
func (q *FuzzyQuery) MaxExpansions(n int) *FuzzyQuery {
	q.maxExpansions = &n
	return q
}

// Transpositions indicates whether edits include transposing
// two adjacent characters.
func (q *FuzzyQuery) Transpositions(transpositions bool) *FuzzyQuery {
	q.transpositions = &transpositions
	return q
}

// Rewrite sets the multi-term rewrite method.
func (q *FuzzyQuery) Rewrite(rewrite string) *FuzzyQuery {
	q.rewrite = rewrite
	return q
}

// Boost sets the boost for this query.
func (q *FuzzyQuery) Boost(boost float64) *FuzzyQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *FuzzyQuery) QueryName(name string) *FuzzyQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *FuzzyQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"value": q.value}
	if q.fuzziness != nil {
		params["fuzziness"] = q.fuzziness
	}
	if q.prefixLength != nil {
		params["prefix_length"] = *q.prefixLength
	}
	if q.maxExpansions != nil {
		params["max_expansions"] = *q.maxExpansions
	}
	if q.transpositions != nil {
		params["transpositions"] = *q.transpositions
	}
	if q.rewrite != "" {
		params["rewrite"] = q.rewrite
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	fq := map[string]interface{}{q.field: params}
	if q.queryName != "" {
		fq["_name"] = q.queryName
	}
	return map[string]interface{}{"fuzzy": fq}, nil
}
