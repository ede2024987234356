package dsl

// FilterAggregation narrows the document set of its sub-aggregations
// to those matching a query.
type FilterAggregation struct {
	filter  Query
	subAggs map[string]Aggregation
}

// NewFilterAggregation creates and initializes a new FilterAggregation.
func NewFilterAggregation(filter Query) *FilterAggregation {
	return &FilterAggregation{filter: filter}
}

// SubAggregation nests an aggregation inside the filtered bucket.
func (a *FilterAggregation) SubAggregation(name string, agg Aggregation) *FilterAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *FilterAggregation) Source() (interface{}, error) {
	filter, err := a.filter.Source()
	if err != nil {
		return nil, err
	}
	return wrapSubAggs(map[string]interface{}{"filter": filter}, a.subAggs)
}

// FiltersAggregation creates one bucket per named filter query.
type FiltersAggregation struct {
	filters      map[string]Query
	otherBucket  *bool
	otherBucketK string
	subAggs      map[string]Aggregation
}

// NewFiltersAggregation creates and initializes a new FiltersAggregation.
func NewFiltersAggregation() *FiltersAggregation {
	return &FiltersAggregation{filters: make(map[string]Query)}
}

// Filter adds a named bucket filter.
func (a *FiltersAggregation) Filter(name string, filter Query) *FiltersAggregation {
	a.filters[name] = filter
	return a
}

// OtherBucket adds a bucket for documents matching no filter.
func (a *FiltersAggregation) OtherBucket(enabled bool) *FiltersAggregation {
	a.otherBucket = &enabled
	return a
}

// OtherBucketKey sets the key of the other bucket.
func (a *FiltersAggregation) OtherBucketKey(key string) *FiltersAggregation {
	a.otherBucketK = key
	return a
}

// SubAggregation nests an aggregation inside each bucket.
func (a *FiltersAggregation) SubAggregation(name string, agg Aggregation) *FiltersAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *FiltersAggregation) Source() (interface{}, error) {
	filters := make(map[string]interface{}, len(a.filters))
	for name, f := range a.filters {
		src, err := f.Source()
		if err != nil {
			return nil, err
		}
		filters[name] = src
	}
	params := map[string]interface{}{"filters": filters}
	if a.otherBucket != nil {
		params["other_bucket"] = *a.otherBucket
	}
	if a.otherBucketK != "" {
		params["other_bucket_key"] = a.otherBucketK
	}
	return wrapSubAggs(map[string]interface{}{"filters": params}, a.subAggs)
}

// MissingAggregation buckets documents that are missing the field.
type MissingAggregation struct {
	field   string
	subAggs map[string]Aggregation
}

// NewMissingAggregation creates and initializes a new MissingAggregation.
func NewMissingAggregation(field string) *MissingAggregation {
	return &MissingAggregation{field: field}
}

// SubAggregation nests an aggregation inside the bucket.
func (a *MissingAggregation) SubAggregation(name string, agg Aggregation) *MissingAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *MissingAggregation) Source() (interface{}, error) {
	body := map[string]interface{}{
		"missing": map[string]interface{}{"field": a.field},
	}
	return wrapSubAggs(body, a.subAggs)
}

// GlobalAggregation runs its sub-aggregations over all documents,
// ignoring the search query.
type GlobalAggregation struct {
	subAggs map[string]Aggregation
}

// NewGlobalAggregation creates and initializes a new GlobalAggregation.
func NewGlobalAggregation() *GlobalAggregation {
	return &GlobalAggregation{}
}

// SubAggregation nests an aggregation inside the global bucket.
func (a *GlobalAggregation) SubAggregation(name string, agg Aggregation) *GlobalAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *GlobalAggregation) Source() (interface{}, error) {
	body := map[string]interface{}{"global": map[string]interface{}{}}
	return wrapSubAggs(body, a.subAggs)
}
