package dsl

// GeoDistanceQuery matches documents whose geo-point field lies within
// the given distance of a central point.
type GeoDistanceQuery struct {
	field            string
	point            *GeoPoint
	distance         string
	distanceType     string
	validationMethod string
	boost            *float64
	queryName        string
}

// NewGeoDistanceQuery creates and initializes a new GeoDistanceQuery.
func NewGeoDistanceQuery(field string, point *GeoPoint, distance string) *GeoDistanceQuery {
	return &GeoDistanceQuery{field: field, point: point, distance: distance}
}

// DistanceType sets how the distance is computed: "arc" (default) or "plane".
func (q *GeoDistanceQuery) DistanceType(distanceType string) *GeoDistanceQuery {
	q.distanceType = distanceType
	return q
}

// ValidationMethod sets how invalid coordinates are handled:
// COERCE, IGNORE_MALFORMED or STRICT (default).
func (q *GeoDistanceQuery) ValidationMethod(method string) *GeoDistanceQuery {
	q.validationMethod = method
	return q
}

// Boost sets the boost for this query.
func (q *GeoDistanceQuery) Boost(boost float64) *GeoDistanceQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *GeoDistanceQuery) QueryName(name string) *GeoDistanceQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *GeoDistanceQuery) Source() (interface{}, error) {
	params := map[string]interface{}{
		"distance": q.distance,
		q.field:    q.point.Source(),
	}
	if q.distanceType != "" {
		params["distance_type"] = q.distanceType
	}
	if q.validationMethod != "" {
		m, err := checkGeoValidationMethod(q.validationMethod)
		if err != nil {
			return nil, err
		}
		params["validation_method"] = m
	}
	if q.boost != nil {
		params["boost"] = *q.boost
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"geo_distance": params}, nil
}
