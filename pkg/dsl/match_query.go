package dsl

// MatchQuery is the standard query for full-text search: the given text
// is analyzed and matched against the field.
type MatchQuery struct {
	field              string
	text               interface{}
	operator           string
	analyzer           string
	fuzziness          interface{}
	prefixLength       *int
	maxExpansions      *int
	minimumShouldMatch string
	lenient            *bool
	zeroTermsQuery     string
	boost              *float64
	queryName          string
}

// NewMatchQuery creates and initializes a new MatchQuery.
func NewMatchQuery(field string, text interface{}) *MatchQuery {
	return &MatchQuery{field: field, text: text}
}

// Operator sets how the terms of the analyzed text are combined:
// "and" or "or" (default).
func (q *MatchQuery) Operator(operator string) *MatchQuery {
	q.operator = operator
	return q
}

// Analyzer overrides the analyzer used to convert the text into tokens.
func (q *MatchQuery) Analyzer(analyzer string) *MatchQuery {
	q.analyzer = analyzer
	return q
}

// Fuzziness is the maximum edit distance: a number, "AUTO", etc.
func (q *MatchQuery) Fuzziness(fuzziness interface{}) *MatchQuery {
	q.fuzziness = fuzziness
	return q
}

// PrefixLength is the number of leading characters that must match
// exactly for fuzzy matching.
func (q *MatchQuery) PrefixLength(n int) *MatchQuery {
	q.prefixLength = &n
	return q
}

// MaxExpansions is the maximum number of terms fuzzy matching expands to.
func (q *MatchQuery) MaxExpansions(n int) *MatchQuery {
	q.maxExpansions = &n
	return q
}

// MinimumShouldMatch sets the minimum number (or percentage) of optional
// clauses that must match, e.g. "2" or "75%".
func (q *MatchQuery) MinimumShouldMatch(minimumShouldMatch string) *MatchQuery {
	q.minimumShouldMatch = minimumShouldMatch
	return q
}

// Lenient ignores format-based failures such as text on a numeric field.
func (q *MatchQuery) Lenient(lenient bool) *MatchQuery {
	q.lenient = &lenient
	return q
}

// ZeroTermsQuery determines what happens when the analyzer removes all
// tokens: "none" (default) or "all".
func (q *MatchQuery) ZeroTermsQuery(zeroTermsQuery string) *MatchQuery {
	q.zeroTermsQuery = zeroTermsQuery
	return q
}

// Boost sets the boost for this query.
func (q *MatchQuery) Boost(boost float64) *MatchQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *MatchQuery) QueryName(name string) *MatchQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *MatchQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"query": q.text}
	if q.operator != "" {
		params["operator"] = q.operator
	}
	if q.analyzer != "" {
		params["analyzer"] = q.analyzer
	}
	if q.fuzziness != nil {
		params["fuzziness"] = q.fuzziness
	}
	if q.prefixLength != nil {
		params["prefix_length"] = *q.prefixLength
	}
	if q.maxExpansions != nil {
		params["max_expansions"] = *q.maxExpansions
	}
	if q.minimumShouldMatch != "" {
		params["minimum_should_match"] = q.minimumShouldMatch
	}
	if q.lenient != nil {
		params["lenient"] = *q.lenient
	}
	if q.zeroTermsQuery != "" {
		params["zero_terms_query"] = q.zeroTermsQuery
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{
		"match": map[string]interface{}{q.field: params},
	}, nil
}
