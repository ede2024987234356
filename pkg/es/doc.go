// Package es extends github.com/olivere/elastic with Elasticsearch
// APIs the client doesn't cover, in the client's own service style.
package es
