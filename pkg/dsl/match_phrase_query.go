package dsl

// MatchPhraseQuery analyzes the text and creates a phrase query
// out of the analyzed tokens.
type MatchPhraseQuery struct {
	field     string
	text      interface{}
	analyzer  string
	slop      *int
	boost     *float64
	queryName string
}

// NewMatchPhraseQuery creates and initializes a new MatchPhraseQuery.
func NewMatchPhraseQuery(field string, text interface{}) *MatchPhraseQuery {
	return &MatchPhraseQuery{field: field, text: text}
}

// Analyzer overrides the analyzer used to convert the text into tokens.
func (q *MatchPhraseQuery) Analyzer(analyzer string) *MatchPhraseQuery {
	q.analyzer = analyzer
	return q
}

// Slop sets how many positions apart matching tokens are allowed to be.
func (q *MatchPhraseQuery) Slop(slop int) *MatchPhraseQuery {
	q.slop = &slop
	return q
}

// Boost sets the boost for this query.
func (q *MatchPhraseQuery) Boost(boost float64) *MatchPhraseQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *MatchPhraseQuery) QueryName(name string) *MatchPhraseQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *MatchPhraseQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"query": q.text}
	if q.analyzer != "" {
		params["analyzer"] = q.analyzer
	}
	if q.slop != nil {
		params["slop"] = *q.slop
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{
		"match_phrase": map[string]interface{}{q.field: params},
	}, nil
}

// MatchPhrasePrefixQuery is like MatchPhraseQuery but allows prefix
// matches on the last term, for search-as-you-type.
type MatchPhrasePrefixQuery struct {
	field         string
	text          interface{}
	analyzer      string
	slop          *int
	maxExpansions *int
	boost         *float64
	queryName     string
}

// NewMatchPhrasePrefixQuery creates and initializes a new MatchPhrasePrefixQuery.
func NewMatchPhrasePrefixQuery(field string, text interface{}) *MatchPhrasePrefixQuery {
	return &MatchPhrasePrefixQuery{field: field, text: text}
}

// Analyzer overrides the analyzer used to convert the text into tokens.
func (q *MatchPhrasePrefixQuery) Analyzer(analyzer string) *MatchPhrasePrefixQuery {
	q.analyzer = analyzer
	return q
}

// Slop sets how many positions apart matching tokens are allowed to be.
func (q *MatchPhrasePrefixQuery) Slop(slop int) *MatchPhrasePrefixQuery {
	q.slop = &slop
	return q
}

// MaxExpansions is the maximum number of terms the last term expands to.
func (q *MatchPhrasePrefixQuery) MaxExpansions(n int) *MatchPhrasePrefixQuery {
	q.maxExpansions = &n
	return q
}

// Boost sets the boost for this query.
func (q *MatchPhrasePrefixQuery) Boost(boost float64) *MatchPhrasePrefixQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *MatchPhrasePrefixQuery) QueryName(name string) *MatchPhrasePrefixQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *MatchPhrasePrefixQuery) Source() (interface{}, error) {
	params := map[string]interface{}{"query": q.text}
	if q.analyzer != "" {
		params["analyzer"] = q.analyzer
	}
	if q.slop != nil {
		params["slop"] = *q.slop
	}
	if q.maxExpansions != nil {
		params["max_expansions"] = *q.maxExpansions
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{
		"match_phrase_prefix": map[string]interface{}{q.field: params},
	}, nil
}
