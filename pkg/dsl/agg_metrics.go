package dsl

// MetricAggregation is a single-value or multi-value metric aggregation
// over a field or script: avg, min, max, sum, stats, extended_stats or
// value_count. The aggregation kind is fixed by the constructor.
type MetricAggregation struct {
	kind    string
	field   string
	script  *Script
	missing interface{}
	format  string
}

// NewAvgAggregation computes the average of numeric values.
func NewAvgAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "avg", field: field}
}

// NewMinAggregation computes the minimum of numeric values.
func NewMinAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "min", field: field}
}

// NewMaxAggregation computes the maximum of numeric values.
func NewMaxAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "max", field: field}
}

// NewSumAggregation computes the sum of numeric values.
func NewSumAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "sum", field: field}
}

// NewStatsAggregation computes count, min, max, avg and sum in one pass.
func NewStatsAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "stats", field: field}
}

// NewExtendedStatsAggregation is NewStatsAggregation plus variance,
// standard deviation and bounds.
func NewExtendedStatsAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "extended_stats", field: field}
}

// NewValueCountAggregation counts the values extracted from the documents.
func NewValueCountAggregation(field string) *MetricAggregation {
	return &MetricAggregation{kind: "value_count", field: field}
}

// Script computes the metric from a script instead of a stored field.
func (a *MetricAggregation) Script(script *Script) *MetricAggregation {
	a.script = script
	return a
}

// Missing sets the value used for documents missing the field.
func (a *MetricAggregation) Missing(missing interface{}) *MetricAggregation {
	a.missing = missing
	return a
}

// Format sets the format of the returned value, e.g. "0000.00".
func (a *MetricAggregation) Format(format string) *MetricAggregation {
	a.format = format
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *MetricAggregation) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if a.field != "" {
		params["field"] = a.field
	}
	if a.script != nil {
		src, err := a.script.Source()
		if err != nil {
			return nil, err
		}
		params["script"] = src
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	if a.format != "" {
		params["format"] = a.format
	}
	return map[string]interface{}{a.kind: params}, nil
}

// CardinalityAggregation computes the approximate count of distinct values.
type CardinalityAggregation struct {
	field              string
	precisionThreshold *int
	missing            interface{}
}

// NewCardinalityAggregation creates and initializes a new CardinalityAggregation.
func NewCardinalityAggregation(field string) *CardinalityAggregation {
	return &CardinalityAggregation{field: field}
}

// PrecisionThreshold trades memory for accuracy below the given
// unique-value count.
func (a *CardinalityAggregation) PrecisionThreshold(threshold int) *CardinalityAggregation {
	a.precisionThreshold = &threshold
	return a
}

// Missing sets the value used for documents missing the field.
func (a *CardinalityAggregation) Missing(missing interface{}) *CardinalityAggregation {
	a.missing = missing
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *CardinalityAggregation) Source() (interface{}, error) {
	params := map[string]interface{}{"field": a.field}
	if a.precisionThreshold != nil {
		params["precision_threshold"] = *a.precisionThreshold
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	return map[string]interface{}{"cardinality": params}, nil
}

// PercentilesAggregation computes percentiles over numeric values.
type PercentilesAggregation struct {
	field    string
	percents []float64
	keyed    *bool
	missing  interface{}
}

// NewPercentilesAggregation creates and initializes a new PercentilesAggregation.
func NewPercentilesAggregation(field string) *PercentilesAggregation {
	return &PercentilesAggregation{field: field}
}

// Percents overrides the default set of percentiles to compute.
func (a *PercentilesAggregation) Percents(percents ...float64) *PercentilesAggregation {
	a.percents = percents
	return a
}

// Keyed toggles the keyed response form.
func (a *PercentilesAggregation) Keyed(keyed bool) *PercentilesAggregation {
	a.keyed = &keyed
	return a
}

// Missing sets the value used for documents missing the field.
func (a *PercentilesAggregation) Missing(missing interface{}) *PercentilesAggregation {
	a.missing = missing
	return a
}

// Source returns the JSON-serializable body of the aggregation.
func (a *PercentilesAggregation) Source() (interface{}, error) {
	params := map[string]interface{}{"field": a.field}
	if len(a.percents) > 0 {
		params["percents"] = a.percents
	}
	if a.keyed != nil {
		params["keyed"] = *a.keyed
	}
	if a.missing != nil {
		params["missing"] = a.missing
	}
	return map[string]interface{}{"percentiles": params}, nil
}
