// Package dsl implements typed builders for the Elasticsearch query DSL.
//
// Each builder is a definition object: a constructor takes the required
// fields, chained setters record the optional ones, and Source compiles
// the definition to the JSON body Elasticsearch expects. Fields that were
// never set are omitted from the output.
//
// The Query, Aggregation and Sorter interfaces are structurally identical
// to the ones in github.com/olivere/elastic, so any definition built here
// can be passed straight to that client's services.
package dsl

// Query represents one query of the Elasticsearch query DSL.
type Query interface {
	// Source returns the JSON-serializable body of the query.
	Source() (interface{}, error)
}

// Aggregation represents one aggregation of the Elasticsearch DSL.
type Aggregation interface {
	// Source returns the JSON-serializable body of the aggregation.
	Source() (interface{}, error)
}

// Sorter represents one element of a search request's sort clause.
type Sorter interface {
	// Source returns the JSON-serializable body of the sort clause.
	Source() (interface{}, error)
}

// sources flattens the sources of queries, failing on the first error.
func sources(queries []Query) (interface{}, error) {
	if len(queries) == 1 {
		return queries[0].Source()
	}
	srcs := make([]interface{}, 0, len(queries))
	for _, q := range queries {
		src, err := q.Source()
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}
