package es

import (
	"context"
	"errors"
	"net/url"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/tidwall/gjson"              // Dynamic JSON parsing.
)

// ClosePointInTimeService releases a point in time before its
// keep-alive expires.
type ClosePointInTimeService struct {
	client *elastic.Client
	pretty bool
	id     string
}

// NewClosePointInTimeService returns a new ClosePointInTimeService.
func NewClosePointInTimeService(client *elastic.Client) *ClosePointInTimeService {
	return &ClosePointInTimeService{client: client}
}

// ID sets the point in time to close.
func (s *ClosePointInTimeService) ID(id string) *ClosePointInTimeService {
	s.id = id
	return s
}

// Pretty indicates that the JSON response be indented and human readable.
func (s *ClosePointInTimeService) Pretty(pretty bool) *ClosePointInTimeService {
	s.pretty = pretty
	return s
}

// buildURL builds the URL for the operation.
func (s *ClosePointInTimeService) buildURL() (string, url.Values, error) {
	params := url.Values{}
	if s.pretty {
		params.Set("pretty", "true")
	}
	return "/_pit", params, nil
}

// Validate checks if the operation is valid.
func (s *ClosePointInTimeService) Validate() error {
	if s.id == "" {
		return errors.New("missing required field: ID")
	}
	return nil
}

// Do executes the operation.
func (s *ClosePointInTimeService) Do(ctx context.Context) (*ClosePointInTimeResponse, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	path, params, err := s.buildURL()
	if err != nil {
		return nil, err
	}

	res, err := s.client.PerformRequest(ctx, elastic.PerformRequestOptions{
		Method: "DELETE",
		Path:   path,
		Params: params,
		Body:   map[string]interface{}{"id": s.id},
	})
	if err != nil {
		return nil, err
	}

	body, err := res.Body.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid json")
	}
	return &ClosePointInTimeResponse{
		Succeeded: gjson.GetBytes(body, "succeeded").Bool(),
		NumFreed:  int(gjson.GetBytes(body, "num_freed").Int()),
	}, nil
}

// ClosePointInTimeResponse represents the response from the
// Elasticsearch `DELETE /_pit` API.
type ClosePointInTimeResponse struct {
	// Succeeded is true if all search contexts were released.
	Succeeded bool

	// NumFreed is the number of search contexts released.
	NumFreed int
}
