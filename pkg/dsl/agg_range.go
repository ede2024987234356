package dsl

// RangeAggregation buckets documents into user-defined numeric ranges.
// Each range is inclusive of the lower bound and exclusive of the upper.
type RangeAggregation struct {
	field   string
	ranges  []rangeEntry
	keyed   *bool
	missing interface{}
	subAggs map[string]Aggregation
}

type rangeEntry struct {
	key  string
	from interface{}
	to   interface{}
}

// NewRangeAggregation creates and initializes a new RangeAggregation.
func NewRangeAggregation(field string) *RangeAggregation {
	return &RangeAggregation{field: field}
}

// AddRange adds a bucket covering [from, to). Either bound may be nil
// to leave the range open on that side.
func (a *RangeAggregation) AddRange(from, to interface{}) *RangeAggregation {
	a.ranges = append(a.ranges, rangeEntry{from: from, to: to})
	return a
}

// AddRangeWithKey is AddRange with an explicit bucket key.
func (a *RangeAggregation) AddRangeWithKey(key string, from, to interface{}) *RangeAggregation {
	a.ranges = append(a.ranges, rangeEntry{key: key, from: from, to: to})
	return a
}

// Keyed toggles the keyed response form.
func (a *RangeAggregation) Keyed(keyed bool) *RangeAggregation {
	a.keyed = &keyed
	return a
}

// Missing sets the value used for documents missing the field.
func (a *RangeAggregation) Missing(missing interface{}) *RangeAggregation {
	a.missing = missing
	return a
}

// SubAggregation nests an aggregation inside each bucket.
func (a *RangeAggregation) SubAggregation(name string, agg Aggregation) *RangeAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *RangeAggregation) Source() (interface{}, error) {
	ranges := make([]interface{}, 0, len(a.ranges))
	for _, r := range a.ranges {
		entry := make(map[string]interface{})
		if r.key != "" {
			entry["key"] = r.key
		}
		if r.from != nil {
			entry["from"] = r.from
		}
		if r.to != nil {
			entry["to"] = r.to
		}
		ranges = append(ranges, entry)
	}
	params := map[string]interface{}{
		"field":  a.field,
		"ranges": ranges,
	}
	if a.keyed != nil {
		params["keyed"] = *a.keyed
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	return wrapSubAggs(map[string]interface{}{"range": params}, a.subAggs)
}

// DateRangeAggregation is a RangeAggregation dedicated to date values,
// with bounds expressed in date math.
type DateRangeAggregation struct {
	field   string
	ranges  []rangeEntry
	format  string
	keyed   *bool
	missing interface{}
	subAggs map[string]Aggregation
}

// NewDateRangeAggregation creates and initializes a new DateRangeAggregation.
func NewDateRangeAggregation(field string) *DateRangeAggregation {
	return &DateRangeAggregation{field: field}
}

// AddRange adds a bucket covering [from, to). Bounds may use date math
// such as "now-1M/M"; either may be nil.
func (a *DateRangeAggregation) AddRange(from, to interface{}) *DateRangeAggregation {
	a.ranges = append(a.ranges, rangeEntry{from: from, to: to})
	return a
}

// AddRangeWithKey is AddRange with an explicit bucket key.
func (a *DateRangeAggregation) AddRangeWithKey(key string, from, to interface{}) *DateRangeAggregation {
	a.ranges = append(a.ranges, rangeEntry{key: key, from: from, to: to})
	return a
}

// Format sets the date format used for bounds and bucket keys.
func (a *DateRangeAggregation) Format(format string) *DateRangeAggregation {
	a.format = format
	return a
}

// Keyed toggles the keyed response form.
func (a *DateRangeAggregation) Keyed(keyed bool) *DateRangeAggregation {
	a.keyed = &keyed
	return a
}

// Missing sets the value used for documents missing the field.
func (a *DateRangeAggregation) Missing(missing interface{}) *DateRangeAggregation {
	a.missing = missing
	return a
}

// SubAggregation nests an aggregation inside each bucket.
func (a *DateRangeAggregation) SubAggregation(name string, agg Aggregation) *DateRangeAggregation {
	if a.subAggs == nil {
		a.subAggs = make(map[string]Aggregation)
	}
	a.subAggs[name] = agg
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *DateRangeAggregation) Source() (interface{}, error) {
	ranges := make([]interface{}, 0, len(a.ranges))
	for _, r := range a.ranges {
		entry := make(map[string]interface{})
		if r.key != "" {
			entry["key"] = r.key
		}
		if r.from != nil {
			entry["from"] = r.from
		}
		if r.to != nil {
			entry["to"] = r.to
		}
		ranges = append(ranges, entry)
	}
	params := map[string]interface{}{
		"field":  a.field,
		"ranges": ranges,
	}
	if a.format != "" {
		params["format"] = a.format
	}
	if a.keyed != nil {
		params["keyed"] = *a.keyed
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	return wrapSubAggs(map[string]interface{}{"date_range": params}, a.subAggs)
}
