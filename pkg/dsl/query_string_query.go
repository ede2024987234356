package dsl

// QueryStringQuery parses the query text with a strict mini-language
// supporting field prefixes, boolean operators, wildcards and grouping.
type QueryStringQuery struct {
	queryString          string
	defaultField         string
	fields               []string
	defaultOperator      string
	analyzer             string
	quoteAnalyzer        string
	allowLeadingWildcard *bool
	analyzeWildcard      *bool
	lenient              *bool
	fuzziness            interface{}
	phraseSlop           *int
	minimumShouldMatch   string
	timeZone             string
	boost                *float64
	queryName            string
}

// NewQueryStringQuery creates and initializes a new QueryStringQuery.
func NewQueryStringQuery(queryString string) *QueryStringQuery {
	return &QueryStringQuery{queryString: queryString}
}

// DefaultField is the field searched for terms with no field prefix.
func (q *QueryStringQuery) DefaultField(field string) *QueryStringQuery {
	q.defaultField = field
	return q
}

// Field adds a field searched for terms with no field prefix.
func (q *QueryStringQuery) Field(field string) *QueryStringQuery {
	q.fields = append(q.fields, field)
	return q
}

// DefaultOperator sets the operator used for terms with no explicit
// operator: "AND" or "OR" (default).
func (q *QueryStringQuery) DefaultOperator(operator string) *QueryStringQuery {
	q.defaultOperator = operator
	return q
}

// Analyzer overrides the analyzer used to convert the text into tokens.
func (q *QueryStringQuery) Analyzer(analyzer string) *QueryStringQuery {
	q.analyzer = analyzer
	return q
}

// QuoteAnalyzer overrides the analyzer used for quoted phrases.
func (q *QueryStringQuery) QuoteAnalyzer(analyzer string) *QueryStringQuery {
	q.quoteAnalyzer = analyzer
	return q
}

// AllowLeadingWildcard permits "*" and "?" as the first character of a term.
func (q *QueryStringQuery) AllowLeadingWildcard(allow bool) *QueryStringQuery {
	q.allowLeadingWildcard = &allow
	return q
}

// AnalyzeWildcard analyzes terms containing wildcards.
func (q *QueryStringQuery) AnalyzeWildcard(analyze bool) *QueryStringQuery {
	q.analyzeWildcard = &analyze
	return q
}

// Lenient ignores format-based failures such as text on a numeric field.
func (q *QueryStringQuery) Lenient(lenient bool) *QueryStringQuery {
	q.lenient = &lenient
	return q
}

// Fuzziness is the maximum edit distance for fuzzy operators.
func (q *QueryStringQuery) Fuzziness(fuzziness interface{}) *QueryStringQuery {
	q.fuzziness = fuzziness
	return q
}

// PhraseSlop sets the default slop for phrases.
func (q *QueryStringQuery) PhraseSlop(slop int) *QueryStringQuery {
	q.phraseSlop = &slop
	return q
}

// MinimumShouldMatch sets the minimum number (or percentage) of optional
// clauses that must match.
func (q *QueryStringQuery) MinimumShouldMatch(minimumShouldMatch string) *QueryStringQuery {
	q.minimumShouldMatch = minimumShouldMatch
	return q
}

// TimeZone converts dates in the query string from the given time zone.
func (q *QueryStringQuery) TimeZone(timeZone string) *QueryStringQuery {
	q.timeZone = timeZone
	return q
}

// Boost sets the boost for this query.
func (q *QueryStringQuery) Boost(boost float64) *QueryStringQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *QueryStringQuery) QueryName(name string) *QueryStringQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *QueryStringQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"query": q.queryString}
	if q.defaultField != "" {
		params["default_field"] = q.defaultField
	}
	if len(q.fields) > 0 {
		params["fields"] = q.fields
	}
	if q.defaultOperator != "" {
		params["default_operator"] = q.defaultOperator
	}
	if q.analyzer != "" {
		params["analyzer"] = q.analyzer
	}
	if q.quoteAnalyzer != "" {
		params["quote_analyzer"] = q.quoteAnalyzer
	}
	if q.allowLeadingWildcard != nil {
		params["allow_leading_wildcard"] = *q.allowLeadingWildcard
	}
	if q.analyzeWildcard != nil {
		params["analyze_wildcard"] = *q.analyzeWildcard
	}
	if q.lenient != nil {
		params["lenient"] = *q.lenient
	}
	if q.fuzziness != nil {
		params["fuzziness"] = q.fuzziness
	}
	if q.phraseSlop != nil {
		params["phrase_slop"] = *q.phraseSlop
	}
	if q.minimumShouldMatch != "" {
		params["minimum_should_match"] = q.minimumShouldMatch
	}
	if q.timeZone != "" {
		params["time_zone"] = q.timeZone
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"query_string": params}, nil
}
