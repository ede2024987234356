package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermQuery(t *testing.T) {
	q := NewTermQuery("user", "olivere")
	assert.JSONEq(t, `{"term":{"user":"olivere"}}`, marshalSource(t, q))
}

func TestTermQueryWithOptions(t *testing.T) {
	q := NewTermQuery("user", "olivere").Boost(2.0).QueryName("name")
	assert.JSONEq(t,
		`{"term":{"user":{"value":"olivere","boost":2},"_name":"name"}}`,
		marshalSource(t, q),
	)
}

func TestTermsQuery(t *testing.T) {
	q := NewTermsQuery("user", "olivere", "kimchy")
	assert.JSONEq(t, `{"terms":{"user":["olivere","kimchy"]}}`, marshalSource(t, q))
}

func TestExistsQuery(t *testing.T) {
	q := NewExistsQuery("user").QueryName("exists")
	assert.JSONEq(t, `{"exists":{"field":"user","_name":"exists"}}`, marshalSource(t, q))
}

func TestIdsQuery(t *testing.T) {
	q := NewIdsQuery("1", "2").Ids("3")
	assert.JSONEq(t, `{"ids":{"values":["1","2","3"]}}`, marshalSource(t, q))
}

func TestPrefixQuery(t *testing.T) {
	assert.JSONEq(t, `{"prefix":{"user":"oli"}}`, marshalSource(t, NewPrefixQuery("user", "oli")))
	assert.JSONEq(t,
		`{"prefix":{"user":{"value":"oli","rewrite":"constant_score"}}}`,
		marshalSource(t, NewPrefixQuery("user", "oli").Rewrite("constant_score")),
	)
}

func TestWildcardQuery(t *testing.T) {
	q := NewWildcardQuery("user", "oli*re").Boost(1.5)
	assert.JSONEq(t,
		`{"wildcard":{"user":{"wildcard":"oli*re","boost":1.5}}}`,
		marshalSource(t, q),
	)
}

func TestRegexpQuery(t *testing.T) {
	q := NewRegexpQuery("name.first", "s.*y").Flags("INTERSECTION|COMPLEMENT").MaxDeterminizedStates(20000)
	assert.JSONEq(t,
		`{"regexp":{"name.first":{"value":"s.*y","flags":"INTERSECTION|COMPLEMENT","max_determinized_states":20000}}}`,
		marshalSource(t, q),
	)
}

func TestFuzzyQuery(t *testing.T) {
	q := NewFuzzyQuery("user", "ki").Fuzziness("AUTO").PrefixLength(0).Transpositions(true)
	assert.JSONEq(t,
		`{"fuzzy":{"user":{"value":"ki","fuzziness":"AUTO","prefix_length":0,"transpositions":true}}}`,
		marshalSource(t, q),
	)
}
