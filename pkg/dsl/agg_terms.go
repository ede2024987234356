package dsl

// TermsAggregation is a multi-bucket aggregation with one bucket per
// unique value of the field.
type TermsAggregation struct {
	field       string
	size        *int
	shardSize   *int
	minDocCount *int
	missing     interface{}
	include     string
	exclude     string
	orderField  string
	orderAsc    bool
	hasOrder    bool
	subAggs     map[string]Aggregation
}

// NewTermsAggregation creates and initializes a new TermsAggregation.
func NewTermsAggregation(field string) *TermsAggregation {
	return &TermsAggregation{field: field}
}

// Size sets the number of buckets to return.
func (a *TermsAggregation) Size(size int) *TermsAggregation {
	a.size = &size
	return a
}

// ShardSize sets how many buckets each shard returns before reduction.
func (a *TermsAggregation) ShardSize(shardSize int) *TermsAggregation {
	a.shardSize = &shardSize
	return a
}

// MinDocCount hides buckets with fewer matching documents.
func (a *TermsAggregation) MinDocCount(minDocCount int) *TermsAggregation {
	a.minDocCount = &minDocCount
	return a
}

// Missing sets the value used for documents missing the field.
func (a *TermsAggregation) Missing(missing interface{}) *TermsAggregation {
	a.missing = missing
	return a
}

// Include keeps only bucket keys matching the regular expression.
func (a *TermsAggregation) Include(regexp string) *TermsAggregation {
	a.include = regexp
	return a
}

// Exclude drops bucket keys matching the regular expression.
func (a *TermsAggregation) Exclude(regexp string) *TermsAggregation {
	a.exclude = regexp
	return a
}

// OrderBy sorts the buckets by the given field or path
// ("_count", "_key" or a sub-aggregation path).
func (a *TermsAggregation) OrderBy(field string, asc bool) *TermsAggregation {
	a.orderField = field
	a.orderAsc = asc
	a.hasOrder = true
	return a
}

// SubAggregation nests an aggregation inside each bucket.
func (a *TermsAggregation) SubAggregation(name string, agg Aggregation) *TermsAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *TermsAggregation) Source() (interface{}, error) {
	params := map[string]interface{}{"field": a.field}
	if a.size != nil {
		params["size"] = *a.size
	}
	if a.shardSize != nil {
		params["shard_size"] = *a.shardSize
	}
	if a.minDocCount != nil {
		params["min_doc_count"] = *a.minDocCount
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	if a.include != "" {
		params["include"] = a.include
	}
	if a.exclude != "" {
		params["exclude"] = a.exclude
	}
	if a.hasOrder {
		dir := "desc"
		if a.orderAsc {
			dir = "asc"
		}
		params["order"] = map[string]interface{}{a.orderField: dir}
	}
	return wrapSubAggs(map[string]interface{}{"terms": params}, a.subAggs)
}
