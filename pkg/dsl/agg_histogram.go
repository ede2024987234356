package dsl

// HistogramAggregation buckets numeric values into fixed-size intervals.
type HistogramAggregation struct {
	field       string
	interval    float64
	offset      *float64
	minDocCount *int
	missing     interface{}
	subAggs     map[string]Aggregation
}

// NewHistogramAggregation creates and initializes a new HistogramAggregation.
func NewHistogramAggregation(field string, interval float64) *HistogramAggregation {
	return &HistogramAggregation{field: field, interval: interval}
}

// Offset shifts the bucket boundaries.
func (a *HistogramAggregation) Offset(offset float64) *HistogramAggregation {
	a.offset = &offset
	return a
}

// MinDocCount hides buckets with fewer matching documents.
func (a *HistogramAggregation) MinDocCount(minDocCount int) *HistogramAggregation {
	a.minDocCount = &minDocCount
	return a
}

// Missing sets the value used for documents missing the field.
func (a *HistogramAggregation) Missing(missing interface{}) *HistogramAggregation {
	a.missing = missing
	return a
}

// SubAggregation nests an aggregation inside each bucket.
func (a *HistogramAggregation) SubAggregation(name string, agg Aggregation) *HistogramAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *HistogramAggregation) Source() (interface{}, error) {
	params := map[string]interface{}{
		"field":    a.field,
		"interval": a.interval,
	}
	if a.offset != nil {
		params["offset"] = *a.offset
	}
	if a.minDocCount != nil {
		params["min_doc_count"] = *a.minDocCount
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	return wrapSubAggs(map[string]interface{}{"histogram": params}, a.subAggs)
}

// DateHistogramAggregation buckets date values into calendar or
// fixed intervals.
type DateHistogramAggregation struct {
	field       string
	interval    string
	format      string
	timeZone    string
	offset      string
	minDocCount *int
	missing     interface{}
	subAggs     map[string]Aggregation
}

// NewDateHistogramAggregation creates and initializes a new
// DateHistogramAggregation with a calendar interval such as "1d".
func NewDateHistogramAggregation(field, interval string) *DateHistogramAggregation {
	return &DateHistogramAggregation{field: field, interval: interval}
}

// Format sets the date format of the bucket keys.
func (a *DateHistogramAggregation) Format(format string) *DateHistogramAggregation {
	a.format = format
	return a
}

// TimeZone buckets dates in the given time zone instead of UTC.
func (a *DateHistogramAggregation) TimeZone(timeZone string) *DateHistogramAggregation {
	a.timeZone = timeZone
	return a
}

// Offset shifts the bucket boundaries, e.g. "+6h".
func (a *DateHistogramAggregation) Offset(offset string) *DateHistogramAggregation {
	a.offset = offset
	return a
}

// MinDocCount hides buckets with fewer matching documents.
func (a *DateHistogramAggregation) MinDocCount(minDocCount int) *DateHistogramAggregation {
	a.minDocCount = &minDocCount
	return a
}

// Missing sets the value used for documents missing the field.
func (a *DateHistogramAggregation) Missing(missing interface{}) *DateHistogramAggregation {
	a.missing = missing
	return a
}

// SubAggregation nests an aggregation inside each bucket.
func (a *DateHistogramAggregation) SubAggregation(name string, agg Aggregation) *DateHistogramAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *DateHistogramAggregation) Source() (interface{}, error) {
	params := map[string]interface{}{
		"field":             a.field,
		"calendar_interval": a.interval,
	}
	if a.format != "" {
		params["format"] = a.format
	}
	if a.timeZone != "" {
		params["time_zone"] = a.timeZone
	}
	if a.offset != "" {
		params["offset"] = a.offset
	}
	if a.minDocCount != nil {
		params["min_doc_count"] = *a.minDocCount
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	return wrapSubAggs(map[string]interface{}{"date_histogram": params}, a.subAggs)
}
