package dsl

// TopHitsAggregation keeps track of the most relevant documents
// per bucket.
type TopHitsAggregation struct {
	from           *int
	size           *int
	sorters        []Sorter
	fetchSource    *bool
	includes       []string
	excludes       []string
	trackScores    *bool
	explain        *bool
	version        *bool
	highlight      *Highlight
	docvalueFields []string
}

// NewTopHitsAggregation creates and initializes a new TopHitsAggregation.
func NewTopHitsAggregation() *TopHitsAggregation {
	return &TopHitsAggregation{}
}

// From sets the offset of the first hit to keep.
func (a *TopHitsAggregation) From(from int) *TopHitsAggregation {
	a.from = &from
	return a
}

// Size sets the number of hits to keep per bucket.
func (a *TopHitsAggregation) Size(size int) *TopHitsAggregation {
	a.size = &size
	return a
}

// Sort adds sort clauses applied before keeping hits.
func (a *TopHitsAggregation) Sort(sorters ...Sorter) *TopHitsAggregation {
	a.sorters = append(a.sorters, sorters...)
	return a
}

// FetchSource toggles returning the _source of each hit.
func (a *TopHitsAggregation) FetchSource(fetch bool) *TopHitsAggregation {
	a.fetchSource = &fetch
	return a
}

// SourceIncludes limits the returned _source to the given fields.
func (a *TopHitsAggregation) SourceIncludes(fields ...string) *TopHitsAggregation {
	a.includes = append(a.includes, fields...)
	return a
}

// SourceExcludes removes the given fields from the returned _source.
func (a *TopHitsAggregation) SourceExcludes(fields ...string) *TopHitsAggregation {
	a.excludes = append(a.excludes, fields...)
	return a
}

// TrackScores computes scores even when not sorting by score.
func (a *TopHitsAggregation) TrackScores(track bool) *TopHitsAggregation {
	a.trackScores = &track
	return a
}

// Explain returns an explanation of the score of each hit.
func (a *TopHitsAggregation) Explain(explain bool) *TopHitsAggregation {
	a.explain = &explain
	return a
}

// Version returns the version of each hit.
func (a *TopHitsAggregation) Version(version bool) *TopHitsAggregation {
	a.version = &version
	return a
}

// Highlight highlights matches in the kept hits.
func (a *TopHitsAggregation) Highlight(highlight *Highlight) *TopHitsAggregation {
	a.highlight = highlight
	return a
}

// DocvalueFields returns doc values for the given fields with each hit.
func (a *TopHitsAggregation) DocvalueFields(fields ...string) *TopHitsAggregation {
	a.docvalueFields = append(a.docvalueFields, fields...)
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *TopHitsAggregation) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if a.from != nil {
		params["from"] = *a.from
	}
	if a.size != nil {
		params["size"] = *a.size
	}
	if len(a.sorters) > 0 {
		sorts := make([]interface{}, 0, len(a.sorters))
		for _, s := range a.sorters {
			src, err := s.Source()
			if err != nil {
				return nil, err
			}
			sorts = append(sorts, src)
		}
		params["sort"] = sorts
	}
	if src := sourceFilter(a.fetchSource, a.includes, a.excludes); src != nil {
		params["_source"] = src
	}
	if a.trackScores != nil {
		params["track_scores"] = *a.trackScores
	}
	if a.explain != nil {
		params["explain"] = *a.explain
	}
	if a.version != nil {
		params["version"] = *a.version
	}
	if a.highlight != nil {
		src, err := a.highlight.Source()
		if err != nil {
			return nil, err
		}
		params["highlight"] = src
	}
	if len(a.docvalueFields) > 0 {
		params["docvalue_fields"] = a.docvalueFields
	}
	return map[string]interface{}{"top_hits": params}, nil
}
