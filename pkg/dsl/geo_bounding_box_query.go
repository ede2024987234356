package dsl

import "errors"

// GeoBoundingBoxQuery matches documents whose geo-point field falls
// within the rectangle spanned by the top-left and bottom-right corners.
type GeoBoundingBoxQuery struct {
	field            string
	topLeft          *GeoPoint
	bottomRight      *GeoPoint
	validationMethod string
	queryName        string
}

// NewGeoBoundingBoxQuery creates and initializes a new GeoBoundingBoxQuery.
func NewGeoBoundingBoxQuery(field string) *GeoBoundingBoxQuery {
	return &GeoBoundingBoxQuery{field: field}
}

// TopLeft sets the top-left corner of the bounding box.
func (q *GeoBoundingBoxQuery) TopLeft(point *GeoPoint) *GeoBoundingBoxQuery {
	q.topLeft = point
	return q
}

// BottomRight sets the bottom-right corner of the bounding box.
func (q *GeoBoundingBoxQuery) BottomRight(point *GeoPoint) *GeoBoundingBoxQuery {
	q.bottomRight = point
	return q
}

// ValidationMethod sets how invalid coordinates are handled:
// COERCE, IGNORE_MALFORMED or STRICT (default).
func (q *GeoBoundingBoxQuery) ValidationMethod(method string) *GeoBoundingBoxQuery {
	q.validationMethod = method
	return q
}

// QueryName sets the query name for the query.
func (q *GeoBoundingBoxQuery) QueryName(name string) *GeoBoundingBoxQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *GeoBoundingBoxQuery) Source() (interface{}, error) {
	if q.topLeft == nil || q.bottomRight == nil {
		return nil, errors.New("dsl: geo_bounding_box requires both corners")
	}
	params := map[string]interface{}{
		q.field: map[string]interface{}{
			"top_left":     q.topLeft.Source(),
			"bottom_right": q.bottomRight.Source(),
		},
	}
	if q.validationMethod != "" {
		m, err := checkGeoValidationMethod(q.validationMethod)
		if err != nil {
			return nil, err
		}
		params["validation_method"] = m
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"geo_bounding_box": params}, nil
}
