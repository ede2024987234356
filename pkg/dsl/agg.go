package dsl

// subAggsSource compiles named sub-aggregations into an "aggregations" body.
func subAggsSource(aggs map[string]Aggregation) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(aggs))
	for name, agg := range aggs {
		src, err := agg.Source()
		if err != nil {
			return nil, err
		}
		out[name] = src
	}
	return out, nil
}

// wrapSubAggs attaches sub-aggregations to a compiled aggregation body.
func wrapSubAggs(body map[string]interface{}, aggs map[string]Aggregation) (map[string]interface{}, error) {
	if len(aggs) == 0 {
		return body, nil
	}
	sub, err := subAggsSource(aggs)
	if err != nil {
		return nil, err
	}
	body["aggregations"] = sub
	return body, nil
}
