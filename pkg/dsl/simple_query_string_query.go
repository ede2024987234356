package dsl

// SimpleQueryStringQuery is like QueryStringQuery but never throws on
// invalid syntax; invalid parts of the query are silently ignored.
type SimpleQueryStringQuery struct {
	queryText          string
	fields             []string
	defaultOperator    string
	analyzer           string
	flags              string
	analyzeWildcard    *bool
	lenient            *bool
	minimumShouldMatch string
	quoteFieldSuffix   string
	boost              *float64
	queryName          string
}

// NewSimpleQueryStringQuery creates and initializes a new SimpleQueryStringQuery.
func NewSimpleQueryStringQuery(text string) *SimpleQueryStringQuery {
	return &SimpleQueryStringQuery{queryText: text}
}

// Field adds a field searched for terms with no field prefix.
func (q *SimpleQueryStringQuery) Field(field string) *SimpleQueryStringQuery {
	q.fields = append(q.fields, field)
	return q
}

// DefaultOperator sets the operator used for terms with no explicit
// operator: "AND" or "OR" (default).
func (q *SimpleQueryStringQuery) DefaultOperator(operator string) *SimpleQueryStringQuery {
	q.defaultOperator = operator
	return q
}

// Analyzer overrides the analyzer used to convert the text into tokens.
func (q *SimpleQueryStringQuery) Analyzer(analyzer string) *SimpleQueryStringQuery {
	q.analyzer = analyzer
	return q
}

// Flags enables specific operators of the simple query language,
// e.g. "OR|AND|PREFIX".
func (q *SimpleQueryStringQuery) Flags(flags string) *SimpleQueryStringQuery {
	q.flags = flags
	return q
}

// AnalyzeWildcard analyzes terms containing wildcards.
func (q *SimpleQueryStringQuery) AnalyzeWildcard(analyze bool) *SimpleQueryStringQuery {
	q.analyzeWildcard = &analyze
	return q
}

// Lenient ignores format-based failures such as text on a numeric field.
func (q *SimpleQueryStringQuery) Lenient(lenient bool) *SimpleQueryStringQuery {
	q.lenient = &lenient
	return q
}

// MinimumShouldMatch sets the minimum number (or percentage) of optional
// clauses that must match.
func (q *SimpleQueryStringQuery) MinimumShouldMatch(minimumShouldMatch string) *SimpleQueryStringQuery {
	q.minimumShouldMatch = minimumShouldMatch
	return q
}

// QuoteFieldSuffix is appended to field names for quoted phrases.
func (q *SimpleQueryStringQuery) QuoteFieldSuffix(suffix string) *SimpleQueryStringQuery {
	q.quoteFieldSuffix = suffix
	return q
}

// Boost sets the boost for this query.
func (q *SimpleQueryStringQuery) Boost(boost float64) *SimpleQueryStringQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *SimpleQueryStringQuery) QueryName(name string) *SimpleQueryStringQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *SimpleQueryStringQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"query": q.queryText}
	if len(q.fields) > 0 {
		params["fields"] = q.fields
	}
	if q.defaultOperator != "" {
		params["default_operator"] = q.defaultOperator
	}
	if q.analyzer != "" {
		params["analyzer"] = q.analyzer
	}
	if q.flags != "" {
		params["flags"] = q.flags
	}
	if q.analyzeWildcard != nil {
		params["analyze_wildcard"] = *q.analyzeWildcard
	}
	if q.lenient != nil {
		params["lenient"] = *q.lenient
	}
	if q.minimumShouldMatch != "" {
		params["minimum_should_match"] = q.minimumShouldMatch
	}
	if q.quoteFieldSuffix != "" {
		params["quote_field_suffix"] = q.quoteFieldSuffix
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"simple_query_string": params}, nil
}
