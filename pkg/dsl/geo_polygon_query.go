package dsl

// GeoPolygonQuery matches documents whose geo-point field falls within
// the polygon described by the given points.
type GeoPolygonQuery struct {
	field            string
	points           []*GeoPoint
	validationMethod string
	boost            *float64
	queryName        string
}

// NewGeoPolygonQuery creates and initializes a new GeoPolygonQuery.
func NewGeoPolygonQuery(field string) *GeoPolygonQuery {
	return &GeoPolygonQuery{field: field}
}

// AddPoint appends a corner of the polygon.
func (q *GeoPolygonQuery) AddPoint(point *GeoPoint) *GeoPolygonQuery {
	q.points = append(q.points, point)
	return q
}

// AddLatLon appends a corner of the polygon from raw coordinates.
func (q *GeoPolygonQuery) AddLatLon(lat, lon float64) *GeoPolygonQuery {
	return q.AddPoint(GeoPointFromLatLon(lat, lon))
}

// ValidationMethod sets how invalid coordinates are handled:
// COERCE, IGNORE_MALFORMED or STRICT (default).
func (q *GeoPolygonQuery) ValidationMethod(method string) *GeoPolygonQuery {
	q.validationMethod = method
	return q
}

// Boost sets the boost for this query.
func (q *GeoPolygonQuery) Boost(boost float64) *GeoPolygonQuery {
	q.boost = &boost
	return q
}

// QueryName sets the query name for the query.
func (q *GeoPolygonQuery) QueryName(name string) *GeoPolygonQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *GeoPolygonQuery) Source() (interface{}, error) {
	points := make([]interface{}, 0, len(q.points))
	for _, p := range q.points {
		points = append(points, p.Source())
	}
	params := map[string]interface{}{
		q.field: map[string]interface{}{"points": points},
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
	return map[string]interface{}{"geo_polygon": params}, nil
}
