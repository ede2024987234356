package dsl

// NestedAggregation runs its sub-aggregations over documents of a
// nested field.
type NestedAggregation struct {
	path    string
	subAggs map[string]Aggregation
}

// NewNestedAggregation creates and initializes a new NestedAggregation.
func NewNestedAggregation(path string) *NestedAggregation {
	return &NestedAggregation{path: path}
}

// SubAggregation nests an aggregation inside the bucket.
func (a *NestedAggregation) SubAggregation(name string, agg Aggregation) *NestedAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *NestedAggregation) Source() (interface{}, error) {
	body := map[string]interface{}{
		"nested": map[string]interface{}{"path": a.path},
	}
	return wrapSubAggs(body, a.subAggs)
}
