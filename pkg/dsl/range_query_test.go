package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeQuery(t *testing.T) {
	q := NewRangeQuery("age").Gte(10).Lt(20).Boost(2.0)
	assert.JSONEq(t,
		`{"range":{"age":{"gte":10,"lt":20,"boost":2}}}`,
		marshalSource(t, q),
	)
}

func TestRangeQueryWithDates(t *testing.T) {
	q := NewRangeQuery("born").
		Gte("2012-01-01").
		Lte("now").
		Format("yyyy-MM-dd").
		TimeZone("Europe/Berlin").
		QueryName("born_range")
	assert.JSONEq(t,
		`{"range":{"born":{"gte":"2012-01-01","lte":"now","format":"yyyy-MM-dd","time_zone":"Europe/Berlin"},"_name":"born_range"}}`,
		marshalSource(t, q),
	)
}
