package dsl

import "errors"

// PercolatorQuery matches registered percolator queries against the
// given documents, inverting the usual search direction.
type PercolatorQuery struct {
	field                     string
	documents                 []interface{}
	indexedDocumentIndex      string
	indexedDocumentID         string
	indexedDocumentRouting    string
	indexedDocumentPreference string
	queryName                 string
}

// NewPercolatorQuery creates and initializes a new PercolatorQuery.
func NewPercolatorQuery(field string) *PercolatorQuery {
	return &PercolatorQuery{field: field}
}

// Document adds documents to percolate.
func (q *PercolatorQuery) Document(docs ...interface{}) *PercolatorQuery {
	q.documents = append(q.documents, docs...)
	return q
}

// IndexedDocument percolates a document already stored in an index
// instead of an inline one.
func (q *PercolatorQuery) IndexedDocument(index, id string) *PercolatorQuery {
	q.indexedDocumentIndex = index
	q.indexedDocumentID = id
	return q
}

// IndexedDocumentRouting sets the routing used to fetch the indexed document.
func (q *PercolatorQuery) IndexedDocumentRouting(routing string) *PercolatorQuery {
	q.indexedDocumentRouting = routing
	return q
}

// IndexedDocumentPreference sets the preference used to fetch the indexed document.
func (q *PercolatorQuery) IndexedDocumentPreference(preference string) *PercolatorQuery {
	q.indexedDocumentPreference = preference
	return q
}

// QueryName sets the query name for the query.
func (q *PercolatorQuery) QueryName(name string) *PercolatorQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *PercolatorQuery) Source() (interface{}, error) {
	if len(q.documents) == 0 && q.indexedDocumentID == "" {
		return nil, errors.New("dsl: percolator query requires a document or an indexed document reference")
	}
	params := map[string]interface{}{"field": q.field}
	switch len(q.documents) {
	case 0:
	case 1:
		params["document"] = q.documents[0]
	default:
		params["documents"] = q.documents
	}
	if q.indexedDocumentIndex != "" {
		params["index"] = q.indexedDocumentIndex
	}
	if q.indexedDocumentID != "" {
		params["id"] = q.indexedDocumentID
	}
	if q.indexedDocumentRouting != "" {
		params["routing"] = q.indexedDocumentRouting
	}
	if q.indexedDocumentPreference != "" {
		params["preference"] = q.indexedDocumentPreference
	}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"percolate": params}, nil
}
