package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricAggregations(t *testing.T) {
	assert.JSONEq(t, `{"avg":{"field":"grade"}}`, marshalSource(t, NewAvgAggregation("grade")))
	assert.JSONEq(t, `{"sum":{"field":"price","missing":0}}`,
		marshalSource(t, NewSumAggregation("price").Missing(0)))
	assert.JSONEq(t, `{"max":{"field":"price","format":"0000.0"}}`,
		marshalSource(t, NewMaxAggregation("price").Format("0000.0")))
	assert.JSONEq(t, `{"value_count":{"field":"type"}}`,
		marshalSource(t, NewValueCountAggregation("type")))
}

func TestMetricAggregationWithScript(t *testing.T) {
	a := NewAvgAggregation("").Script(NewScript("doc.grade.value").Lang("painless"))
	assert.JSONEq(t,
		`{"avg":{"script":{"source":"doc.grade.value","lang":"painless"}}}`,
		marshalSource(t, a),
	)
}

func TestCardinalityAggregation(t *testing.T) {
	a := NewCardinalityAggregation("author").PrecisionThreshold(100)
	assert.JSONEq(t,
		`{"cardinality":{"field":"author","precision_threshold":100}}`,
		marshalSource(t, a),
	)
}

func TestPercentilesAggregation(t *testing.T) {
	a := NewPercentilesAggregation("load_time").Percents(95, 99, 99.9)
	assert.JSONEq(t,
		`{"percentiles":{"field":"load_time","percents":[95,99,99.9]}}`,
		marshalSource(t, a),
	)
}

func TestTermsAggregation(t *testing.T) {
	a := NewTermsAggregation("genre").Size(10).OrderBy("_count", false)
	assert.JSONEq(t,
		`{"terms":{"field":"genre","size":10,"order":{"_count":"desc"}}}`,
		marshalSource(t, a),
	)
}

func TestTermsAggregationWithSubAggregation(t *testing.T) {
	a := NewTermsAggregation("genre").
		Size(5).
		SubAggregation("avg_price", NewAvgAggregation("price"))
	assert.JSONEq(t, `{
		"terms":{"field":"genre","size":5},
		"aggregations":{"avg_price":{"avg":{"field":"price"}}}
	}`, marshalSource(t, a))
}

func TestHistogramAggregation(t *testing.T) {
	a := NewHistogramAggregation("price", 50).MinDocCount(1)
	assert.JSONEq(t,
		`{"histogram":{"field":"price","interval":50,"min_doc_count":1}}`,
		marshalSource(t, a),
	)
}

func TestDateHistogramAggregation(t *testing.T) {
	a := NewDateHistogramAggregation("date", "1M").
		Format("yyyy-MM-dd").
		TimeZone("Europe/Berlin")
	assert.JSONEq(t, `{
		"date_histogram":{
			"field":"date",
			"calendar_interval":"1M",
			"format":"yyyy-MM-dd",
			"time_zone":"Europe/Berlin"
		}
	}`, marshalSource(t, a))
}

func TestRangeAggregation(t *testing.T) {
	a := NewRangeAggregation("price").
		AddRange(nil, 50).
		AddRangeWithKey("mid", 50, 100).
		AddRange(100, nil)
	assert.JSONEq(t, `{
		"range":{
			"field":"price",
			"ranges":[
				{"to":50},
				{"key":"mid","from":50,"to":100},
				{"from":100}
			]
		}
	}`, marshalSource(t, a))
}

func TestDateRangeAggregation(t *testing.T) {
	a := NewDateRangeAggregation("date").
		Format("yyyy").
		AddRange(nil, "now-10y").
		AddRange("now-10y", nil)
	assert.JSONEq(t, `{
		"date_range":{
			"field":"date",
			"format":"yyyy",
			"ranges":[{"to":"now-10y"},{"from":"now-10y"}]
		}
	}`, marshalSource(t, a))
}

func TestFilterAggregation(t *testing.T) {
	a := NewFilterAggregation(NewTermQuery("type", "t-shirt")).
		SubAggregation("avg_price", NewAvgAggregation("price"))
	assert.JSONEq(t, `{
		"filter":{"term":{"type":"t-shirt"}},
		"aggregations":{"avg_price":{"avg":{"field":"price"}}}
	}`, marshalSource(t, a))
}

func TestFiltersAggregation(t *testing.T) {
	a := NewFiltersAggregation().
		Filter("errors", NewMatchQuery("body", "error")).
		Filter("warnings", NewMatchQuery("body", "warning")).
		OtherBucket(true)
	assert.JSONEq(t, `{
		"filters":{
			"filters":{
				"errors":{"match":{"body":{"query":"error"}}},
				"warnings":{"match":{"body":{"query":"warning"}}}
			},
			"other_bucket":true
		}
	}`, marshalSource(t, a))
}

func TestMissingAggregation(t *testing.T) {
	assert.JSONEq(t, `{"missing":{"field":"price"}}`,
		marshalSource(t, NewMissingAggregation("price")))
}

func TestGlobalAggregation(t *testing.T) {
	a := NewGlobalAggregation().
		SubAggregation("all_products", NewTermsAggregation("product"))
	assert.JSONEq(t, `{
		"global":{},
		"aggregations":{"all_products":{"terms":{"field":"product"}}}
	}`, marshalSource(t, a))
}

func TestNestedAggregation(t *testing.T) {
	a := NewNestedAggregation("resellers").
		SubAggregation("min_price", NewMinAggregation("resellers.price"))
	assert.JSONEq(t, `{
		"nested":{"path":"resellers"},
		"aggregations":{"min_price":{"min":{"field":"resellers.price"}}}
	}`, marshalSource(t, a))
}

func TestTopHitsAggregation(t *testing.T) {
	a := NewTopHitsAggregation().
		Size(3).
		Sort(NewFieldSort("date").Desc()).
		SourceIncludes("date", "title")
	assert.JSONEq(t, `{
		"top_hits":{
			"size":3,
			"sort":[{"date":{"order":"desc"}}],
			"_source":{"includes":["date","title"]}
		}
	}`, marshalSource(t, a))
}
