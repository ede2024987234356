package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolQuery(t *testing.T) {
	q := NewBoolQuery().
		Must(NewTermQuery("user", "olivere")).
		MustNot(NewRangeQuery("age").Lt(18)).
		Filter(NewTermQuery("account", "1")).
		Should(NewTermQuery("tag", "sometag"), NewTermQuery("tag", "sometagtag")).
		MinimumShouldMatch("1").
		Boost(10)
	assert.JSONEq(t, `{
		"bool":{
			"must":{"term":{"user":"olivere"}},
			"must_not":{"range":{"age":{"lt":18}}},
			"filter":{"term":{"account":"1"}},
			"should":[{"term":{"tag":"sometag"}},{"term":{"tag":"sometagtag"}}],
			"minimum_should_match":"1",
			"boost":10
		}
	}`, marshalSource(t, q))
}

func TestBoolQueryEmpty(t *testing.T) {
	assert.JSONEq(t, `{"bool":{}}`, marshalSource(t, NewBoolQuery()))
}

func TestConstantScoreQuery(t *testing.T) {
	q := NewConstantScoreQuery(NewTermQuery("user", "olivere")).Boost(2.5)
	assert.JSONEq(t,
		`{"constant_score":{"filter":{"term":{"user":"olivere"}},"boost":2.5}}`,
		marshalSource(t, q),
	)
}

func TestDisMaxQuery(t *testing.T) {
	q := NewDisMaxQuery(
		NewTermQuery("age", 34),
		NewTermQuery("age", 35),
	).TieBreaker(0.7)
	assert.JSONEq(t,
		`{"dis_max":{"queries":[{"term":{"age":34}},{"term":{"age":35}}],"tie_breaker":0.7}}`,
		marshalSource(t, q),
	)
}

func TestBoostingQuery(t *testing.T) {
	q := NewBoostingQuery(
		NewTermQuery("text", "apple"),
		NewTermQuery("text", "pie"),
		0.5,
	)
	assert.JSONEq(t, `{
		"boosting":{
			"positive":{"term":{"text":"apple"}},
			"negative":{"term":{"text":"pie"}},
			"negative_boost":0.5
		}
	}`, marshalSource(t, q))
}

func TestNestedQuery(t *testing.T) {
	q := NewNestedQuery("obj1", NewBoolQuery().Must(
		NewMatchQuery("obj1.name", "blue"),
		NewRangeQuery("obj1.count").Gt(5),
	)).ScoreMode("avg").IgnoreUnmapped(true)
	assert.JSONEq(t, `{
		"nested":{
			"path":"obj1",
			"score_mode":"avg",
			"ignore_unmapped":true,
			"query":{"bool":{"must":[
				{"match":{"obj1.name":{"query":"blue"}}},
				{"range":{"obj1.count":{"gt":5}}}
			]}}
		}
	}`, marshalSource(t, q))
}

func TestScriptQuery(t *testing.T) {
	q := NewScriptQuery(NewScript("doc['num1'].value > params.limit").
		Lang("painless").
		Param("limit", 5))
	assert.JSONEq(t, `{
		"script":{"script":{
			"source":"doc['num1'].value > params.limit",
			"lang":"painless",
			"params":{"limit":5}
		}}
	}`, marshalSource(t, q))
}
