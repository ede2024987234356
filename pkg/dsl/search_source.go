package dsl

// PointInTime references a point-in-time previously opened against an
// index, freezing the view a search operates on.
type PointInTime struct {
	ID        string
	KeepAlive string
}

// NewPointInTime creates a new PointInTime reference.
func NewPointInTime(id, keepAlive string) *PointInTime {
	return &PointInTime{ID: id, KeepAlive: keepAlive}
}

// Source returns the JSON-serializable body of the reference.
func (p *PointInTime) Source() (interface{}, error) {
	params := map[string]interface{}{"id": p.ID}
	if p.KeepAlive != "" {
		params["keep_alive"] = p.KeepAlive
	}
	return params, nil
}

// SearchSource assembles the body of a search request: query, post
// filter, aggregations, sorting, pagination and hit decoration.
type SearchSource struct {
	query          Query
	postFilter     Query
	aggs           map[string]Aggregation
	sorters        []Sorter
	from           *int
	size           *int
	fetchSource    *bool
	includes       []string
	excludes       []string
	storedFields   []string
	docvalueFields []string
	highlight      *Highlight
	minScore       *float64
	searchAfter    []interface{}
	trackTotalHits interface{}
	terminateAfter *int
	timeout        string
	version        *bool
	seqNoPrimaryT  *bool
	pit            *PointInTime
}

// NewSearchSource creates and initializes a new SearchSource.
func NewSearchSource() *SearchSource {
	return &SearchSource{}
}

// Query sets the query of the search.
func (s *SearchSource) Query(query Query) *SearchSource {
	s.query = query
	return s
}

// PostFilter filters hits after aggregations have been computed.
func (s *SearchSource) PostFilter(filter Query) *SearchSource {
	s.postFilter = filter
	return s
}

// Aggregation adds a named aggregation to the search.
func (s *SearchSource) Aggregation(name string, agg Aggregation) *SearchSource {
	if s.aggs == nil {
		s.aggs = make(map[string]Aggregation)
	}
	s.aggs[name] = agg
	return s
}

// Sort adds sort clauses applied in order.
func (s *SearchSource) Sort(sorters ...Sorter) *SearchSource {
	s.sorters = append(s.sorters, sorters...)
	return s
}

// From sets the offset of the first hit to return.
func (s *SearchSource) From(from int) *SearchSource {
	s.from = &from
	return s
}

// Size sets the number of hits to return.
func (s *SearchSource) Size(size int) *SearchSource {
	s.size = &size
	return s
}

// FetchSource toggles returning the _source of each hit.
func (s *SearchSource) FetchSource(fetch bool) *SearchSource {
	s.fetchSource = &fetch
	return s
}

// SourceIncludes limits the returned _source to the given fields.
func (s *SearchSource) SourceIncludes(fields ...string) *SearchSource {
	s.includes = append(s.includes, fields...)
	return s
}

// SourceExcludes removes the given fields from the returned _source.
func (s *SearchSource) SourceExcludes(fields ...string) *SearchSource {
	s.excludes = append(s.excludes, fields...)
	return s
}

// StoredFields returns the given stored fields with each hit.
func (s *SearchSource) StoredFields(fields ...string) *SearchSource {
	s.storedFields = append(s.storedFields, fields...)
	return s
}

// DocvalueFields returns doc values for the given fields with each hit.
func (s *SearchSource) DocvalueFields(fields ...string) *SearchSource {
	s.docvalueFields = append(s.docvalueFields, fields...)
	return s
}

// Highlight highlights matches in the returned hits.
func (s *SearchSource) Highlight(highlight *Highlight) *SearchSource {
	s.highlight = highlight
	return s
}

// MinScore excludes hits scoring below the given value.
func (s *SearchSource) MinScore(minScore float64) *SearchSource {
	s.minScore = &minScore
	return s
}

// SearchAfter continues pagination from the sort values of the last
// hit of the previous page.
func (s *SearchSource) SearchAfter(sortValues ...interface{}) *SearchSource {
	s.searchAfter = sortValues
	return s
}

// TrackTotalHits controls hit counting: a bool, or an int bounding the
// count accuracy.
func (s *SearchSource) TrackTotalHits(trackTotalHits interface{}) *SearchSource {
	s.trackTotalHits = trackTotalHits
	return s
}

// TerminateAfter stops each shard after collecting this many documents.
func (s *SearchSource) TerminateAfter(n int) *SearchSource {
	s.terminateAfter = &n
	return s
}

// Timeout bounds the search, returning partial results on expiry,
// e.g. "2s".
func (s *SearchSource) Timeout(timeout string) *SearchSource {
	s.timeout = timeout
	return s
}

// Version returns the version of each hit.
func (s *SearchSource) Version(version bool) *SearchSource {
	s.version = &version
	return s
}

// SeqNoPrimaryTerm returns the sequence number and primary term of
// each hit, for optimistic concurrency control.
func (s *SearchSource) SeqNoPrimaryTerm(enabled bool) *SearchSource {
	s.seqNoPrimaryT = &enabled
	return s
}

// PointInTime runs the search against a previously opened point in
// time instead of a live index.
func (s *SearchSource) PointInTime(pit *PointInTime) *SearchSource {
	s.pit = pit
	return s
}

// Source returns the JSON-serializable search request body.
func (s *SearchSource) Source() (interface{}, error) {
	body := make(map[string]interface{})
	if s.query != nil {
		src, err := s.query.Source()
		if err != nil {
			return nil, err
		}
		body["query"] = src
	}
	if s.postFilter != nil {
		src, err := s.postFilter.Source()
		if err != nil {
			return nil, err
		}
		body["post_filter"] = src
	}
	if len(s.aggs) > 0 {
		aggs, err := subAggsSource(s.aggs)
		if err != nil {
			return nil, err
		}
		body["aggregations"] = aggs
	}
	if len(s.sorters) > 0 {
		sorts := make([]interface{}, 0, len(s.sorters))
		for _, sorter := range s.sorters {
			src, err := sorter.Source()
			if err != nil {
				return nil, err
			}
			sorts = append(sorts, src)
		}
		body["sort"] = sorts
	}
	if s.from != nil {
		body["from"] = *s.from
	}
	if s.size != nil {
		body["size"] = *s.size
	}
	if src := sourceFilter(s.fetchSource, s.includes, s.excludes); src != nil {
		body["_source"] = src
	}
	if len(s.storedFields) > 0 {
		body["stored_fields"] = s.storedFields
	}
	if len(s.docvalueFields) > 0 {
		body["docvalue_fields"] = s.docvalueFields
	}
	if s.highlight != nil {
		src, err := s.highlight.Source()
		if err != nil {
			return nil, err
		}
		body["highlight"] = src
	}
	if s.minScore != nil {
		body["min_score"] = *s.minScore
	}
	if len(s.searchAfter) > 0 {
		body["search_after"] = s.searchAfter
	}
	if s.trackTotalHits != nil {
		body["track_total_hits"] = s.trackTotalHits
	}
	if s.terminateAfter != nil {
		body["terminate_after"] = *s.terminateAfter
	}
	if s.timeout != "" {
		body["timeout"] = s.timeout
	}
	if s.version != nil {
		body["version"] = *s.version
	}
	if s.seqNoPrimaryT != nil {
		body["seq_no_primary_term"] = *s.seqNoPrimaryT
	}
	if s.pit != nil {
		src, err := s.pit.Source()
		if err != nil {
			return nil, err
		}
		body["pit"] = src
	}
	return body, nil
}

// sourceFilter compiles the _source clause from a fetch toggle and
// include/exclude lists. It returns nil when nothing was requested.
func sourceFilter(fetch *bool, includes, excludes []string) interface{} {
	if fetch != nil && !*fetch {
		return false
	}
	if len(includes) == 0 && len(excludes) == 0 {
		return nil
	}
	params := make(map[string]interface{})
	if len(includes) > 0 {
		params["includes"] = includes
	}
	if len(excludes) > 0 {
		params["excludes"] = excludes
	}
	return params
}
