package dsl

import (
	"fmt"
	"strings"

	"github.com/tyth/elastic4s/pkg/str"
)

// Geo validation methods accepted by Elasticsearch.
const (
	GeoValidationCoerce          = "COERCE"
	GeoValidationIgnoreMalformed = "IGNORE_MALFORMED"
	GeoValidationStrict          = "STRICT"
)

// checkGeoValidationMethod normalizes a geo validation method to the
// form Elasticsearch expects, rejecting unknown values.
func checkGeoValidationMethod(method string) (string, error) {
	m := strings.ToUpper(method)
	if !str.In(m, GeoValidationCoerce, GeoValidationIgnoreMalformed, GeoValidationStrict) {
		return "", fmt.Errorf("dsl: unknown geo validation method %q", method)
	}
	return m, nil
}
