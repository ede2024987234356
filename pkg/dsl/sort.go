package dsl

// FieldSort sorts hits by the value of a field.
type FieldSort struct {
	field        string
	ascending    bool
	mode         string
	missing      interface{}
	unmappedType string
	nestedPath   string
	nestedFilter Query
}

// NewFieldSort creates a new FieldSort, ascending by default.
func NewFieldSort(field string) *FieldSort {
	return &FieldSort{field: field, ascending: true}
}

// Asc sorts ascending.
func (s *FieldSort) Asc() *FieldSort {
	s.ascending = true
	return s
}

// Desc sorts descending.
func (s *FieldSort) Desc() *FieldSort {
	s.ascending = false
	return s
}

// Order sorts ascending if asc is true, descending otherwise.
func (s *FieldSort) Order(asc bool) *FieldSort {
	s.ascending = asc
	return s
}

// Mode sets how multi-valued fields are reduced to a sort value:
// "min", "max", "sum", "avg" or "median".
func (s *FieldSort) Mode(mode string) *FieldSort {
	s.mode = mode
	return s
}

// Missing sets where documents without the field sort: "_first",
// "_last" (default) or a literal value.
func (s *FieldSort) Missing(missing interface{}) *FieldSort {
	s.missing = missing
	return s
}

// UnmappedType avoids failing on indices that do not map the field.
func (s *FieldSort) UnmappedType(typ string) *FieldSort {
	s.unmappedType = typ
	return s
}

// Nested sorts by a field inside nested documents matching the filter.
// The filter may be nil.
func (s *FieldSort) Nested(path string, filter Query) *FieldSort {
	s.nestedPath = path
	s.nestedFilter = filter
	return s
}

// Source returns the JSON-serializable body of the sort clause.
func (s *FieldSort) Source() (interface{}, error) {
	params := map[string]interface{}{"order": sortOrder(s.ascending)}
	if s.mode != "" {
		params["mode"] = s.mode
	}
	if s.missing != nil {
		params["missing"] = s.missing
	}
	if s.unmappedType != "" {
		params["unmapped_type"] = s.unmappedType
	}
	if s.nestedPath != "" {
		nested := map[string]interface{}{"path": s.nestedPath}
		if s.nestedFilter != nil {
			filter, err := s.nestedFilter.Source()
			if err != nil {
				return nil, err
			}
			nested["filter"] = filter
		}
		params["nested"] = nested
	}
	return map[string]interface{}{s.field: params}, nil
}

// ScoreSort sorts hits by relevance score, descending by default.
type ScoreSort struct {
	ascending bool
}

// NewScoreSort creates a new ScoreSort.
func NewScoreSort() *ScoreSort {
	return &ScoreSort{}
}

// Asc sorts ascending.
func (s *ScoreSort) Asc() *ScoreSort {
	s.ascending = true
	return s
}

// Desc sorts descending.
func (s *ScoreSort) Desc() *ScoreSort {
	s.ascending = false
	return s
}

// Source returns the JSON-serializable body of the sort clause.
func (s *ScoreSort) Source() (interface{}, error) {
	return map[string]interface{}{
		"_score": map[string]interface{}{"order": sortOrder(s.ascending)},
	}, nil
}

// GeoDistanceSort sorts hits by distance from a point.
type GeoDistanceSort struct {
	field        string
	point        *GeoPoint
	ascending    bool
	unit         string
	distanceType string
	mode         string
}

// NewGeoDistanceSort creates a new GeoDistanceSort, nearest first.
func NewGeoDistanceSort(field string, point *GeoPoint) *GeoDistanceSort {
	return &GeoDistanceSort{field: field, point: point, ascending: true}
}

// Asc sorts nearest first.
func (s *GeoDistanceSort) Asc() *GeoDistanceSort {
	s.ascending = true
	return s
}

// Desc sorts farthest first.
func (s *GeoDistanceSort) Desc() *GeoDistanceSort {
	s.ascending = false
	return s
}

// Unit sets the distance unit of the returned sort values, e.g. "km".
func (s *GeoDistanceSort) Unit(unit string) *GeoDistanceSort {
	s.unit = unit
	return s
}

// DistanceType sets how the distance is computed: "arc" (default) or "plane".
func (s *GeoDistanceSort) DistanceType(distanceType string) *GeoDistanceSort {
	s.distanceType = distanceType
	return s
}

// Mode sets how multi-valued fields are reduced to a sort value.
func (s *GeoDistanceSort) Mode(mode string) *GeoDistanceSort {
	s.mode = mode
	return s
}

// Source returns the JSON-serializable body of the sort clause.
func (s *GeoDistanceSort) Source() (interface{}, error) {
	params := map[string]interface{}{
		s.field: s.point.Source(),
		"order": sortOrder(s.ascending),
	}
	if s.unit != "" {
		params["unit"] = s.unit
	}
	if s.distanceType != "" {
		params["distance_type"] = s.distanceType
	}
	if s.mode != "" {
		params["mode"] = s.mode
	}
	return map[string]interface{}{"_geo_distance": params}, nil
}

// ScriptSort sorts hits by the value returned by a script.
type ScriptSort struct {
	script    *Script
	typ       string
	ascending bool
	mode      string
}

// NewScriptSort creates a new ScriptSort. typ is the type of the
// script result, "string" or "number".
func NewScriptSort(script *Script, typ string) *ScriptSort {
	return &ScriptSort{script: script, typ: typ, ascending: true}
}

// Asc sorts ascending.
func (s *ScriptSort) Asc() *ScriptSort {
	s.ascending = true
	return s
}

// Desc sorts descending.
func (s *ScriptSort) Desc() *ScriptSort {
	s.ascending = false
	return s
}

// Mode sets how multiple script values per document are reduced.
func (s *ScriptSort) Mode(mode string) *ScriptSort {
	s.mode = mode
	return s
}

// Source returns the JSON-serializable body of the sort clause.
func (s *ScriptSort) Source() (interface{}, error) {
	script, err := s.script.Source()
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"script": script,
		"type":   s.typ,
		"order":  sortOrder(s.ascending),
	}
	if s.mode != "" {
		params["mode"] = s.mode
	}
	return map[string]interface{}{"_script": params}, nil
}

func sortOrder(asc bool) string {
	if asc {
		return "asc"
	}
	return "desc"
}
