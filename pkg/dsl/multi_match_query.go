package dsl

import "fmt"

// MultiMatchQuery builds on the MatchQuery to allow multi-field queries.
// Per-field boosts can be set with FieldWithBoost and are rendered
// in the "field^boost" form.
type MultiMatchQuery struct {
	text               interface{}
	fields             []string
	fieldBoosts        map[string]float64
	typ                string
	operator           string
	analyzer           string
	tieBreaker         *float64
	fuzziness          interface{}
	minimumShouldMatch string
	lenient            *bool
	zeroTermsQuery     string
	boost              *float64
	queryName          string
}

// NewMultiMatchQuery creates and initializes a new MultiMatchQuery.
func NewMultiMatchQuery(text interface{}, fields ...string) *MultiMatchQuery {
	return &MultiMatchQuery{
		text:        text,
		fields:      fields,
		fieldBoosts: make(map[string]float64),
	}
}

// Field adds a field to run the query against.
func (q *MultiMatchQuery) Field(field string) *MultiMatchQuery {
	q.fields = append(q.fields, field)
	return q
}

// FieldWithBoost adds a field to run the query against, boosted by the
// given factor.
func (q *MultiMatchQuery) FieldWithBoost(field string, boost float64) *MultiMatchQuery {
	q.fields = append(q.fields, field)
	q.fieldBoosts[field] = boost
	return q
}

// Type sets how the query is executed across the fields: "best_fields"
// (default), "most_fields", "cross_fields", "phrase" or "phrase_prefix".
func (q *MultiMatchQuery) Type(typ string) *MultiMatchQuery {
	q.typ = typ
	return q
}

// Operator sets how the terms of the analyzed text are combined:
// "and" or "or" (default).
func (q *MultiMatchQuery) Operator(operator string) *MultiMatchQuery {
	q.operator = operator
	return q
}

// Analyzer overrides the analyzer used to convert the text into tokens.
func (q *MultiMatchQuery) Analyzer(analyzer string) *MultiMatchQuery {
	q.analyzer = analyzer
	return q
}

// TieBreaker mixes the scores of non-best matching fields into the score.
func (q *MultiMatchQuery) TieBreaker(tieBreaker float64) *MultiMatchQuery {
	q.tieBreaker = &tieBreaker
	return q
}

// Fuzziness is the maximum edit distance: a number, "AUTO", etc.
func (q *MultiMatchQuery) Fuzziness(fuzziness interface{}) *MultiMatchQuery {
	q.fuzziness = fuzziness
	return q
}

// MinimumShouldMatch sets the minimum number (or percentage) of optional
// clauses that must match.
func (q *MultiMatchQuery) MinimumShouldMatch(minimumShouldMatch string) *MultiMatchQuery {
	q.minimumShouldMatch = minimumShouldMatch
	return q
}

// Lenient ignores format-based failures such as text on a numeric field.
func (q *MultiMatchQuery) Lenient(lenient bool) *MultiMatchQuery {
	q.lenient = &lenient
	return q
}

// ZeroTermsQuery determines what happens when the analyzer removes all
// tokens: "none" (default) or "all".
func (q *MultiMatchQuery) ZeroTermsQuery(zeroTermsQuery string) *MultiMatchQuery {
	q.zeroTermsQuery = zeroTermsQuery
	return q
}

// Boost sets the boost for this query.
func (q *MultiMatchQuery) Boost(boost float64) *MultiMatchQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *MultiMatchQuery) QueryName(name string) *MultiMatchQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *MultiMatchQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"query": q.text}
	fields := make([]string, 0, len(q.fields))
	for _, field := range q.fields {
		if boost, ok := q.fieldBoosts[field]; ok {
			fields = append(fields, fmt.Sprintf("%s^%v", field, boost))
		} else {
			fields = append(fields, field)
		}
	}
	params["fields"] = fields
	if q.typ != "" {
		params["type"] = q.typ
	}
	if q.operator != "" {
		params["operator"] = q.operator
	}
	if q.analyzer != "" {
		params["analyzer"] = q.analyzer
	}
	if q.tieBreaker != nil {
		params["tie_breaker"] = *q.tieBreaker
	}
	if q.fuzziness != nil {
		params["fuzziness"] = q.fuzziness
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
	return map[string]interface{}{"multi_match": params}, nil
}
