package es

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	elastic "github.com/olivere/elastic/v7" // Elasticsearch client.
	"github.com/tidwall/gjson"              // Dynamic JSON parsing.
)

// OpenPointInTimeService opens a point in time against one or more
// indices, freezing the view that later searches operate on.
// The pinned elastic client predates the PIT API, hence the raw request.
type OpenPointInTimeService struct {
	client     *elastic.Client
	pretty     bool
	indices    []string
	keepAlive  string
	routing    string
	preference string
}

// NewOpenPointInTimeService returns a new OpenPointInTimeService.
func NewOpenPointInTimeService(client *elastic.Client) *OpenPointInTimeService {
	return &OpenPointInTimeService{client: client}
}

// Index sets the indices to open the point in time against.
func (s *OpenPointInTimeService) Index(indices ...string) *OpenPointInTimeService {
	s.indices = append(s.indices, indices...)
	return s
}

// KeepAlive sets how long the point in time stays alive, e.g. "1m".
func (s *OpenPointInTimeService) KeepAlive(keepAlive string) *OpenPointInTimeService {
	s.keepAlive = keepAlive
	return s
}

// Routing is a comma-separated list of specific routing values.
func (s *OpenPointInTimeService) Routing(routing string) *OpenPointInTimeService {
	s.routing = routing
	return s
}

// Preference specifies which shard copies to execute on.
func (s *OpenPointInTimeService) Preference(preference string) *OpenPointInTimeService {
	s.preference = preference
	return s
}

// Pretty indicates that the JSON response be indented and human readable.
func (s *OpenPointInTimeService) Pretty(pretty bool) *OpenPointInTimeService {
	s.pretty = pretty
	return s
}

// buildURL builds the URL for the operation.
func (s *OpenPointInTimeService) buildURL() (string, url.Values, error) {
	path := fmt.Sprintf("/%s/_pit", strings.Join(s.indices, ","))

	params := url.Values{}
	if s.pretty {
		params.Set("pretty", "true")
	}
	params.Set("keep_alive", s.keepAlive)
	if s.routing != "" {
		params.Set("routing", s.routing)
	}
	if s.preference != "" {
		params.Set("preference", s.preference)
	}
	return path, params, nil
}

// Validate checks if the operation is valid.
func (s *OpenPointInTimeService) Validate() error {
	var invalid []string
	if len(s.indices) == 0 {
		invalid = append(invalid, "Index")
	}
	if s.keepAlive == "" {
		invalid = append(invalid, "KeepAlive")
	}
	if len(invalid) > 0 {
		return fmt.Errorf("missing required fields: %v", invalid)
	}
	return nil
}

// Do executes the operation.
func (s *OpenPointInTimeService) Do(ctx context.Context) (*OpenPointInTimeResponse, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	path, params, err := s.buildURL()
	if err != nil {
		return nil, err
	}

	res, err := s.client.PerformRequest(ctx, elastic.PerformRequestOptions{
		Method: "POST",
		Path:   path,
		Params: params,
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
	id := gjson.GetBytes(body, "id")
	if !id.Exists() {
		return nil, errors.New("response has no point in time id")
	}
	return &OpenPointInTimeResponse{ID: id.String()}, nil
}

// OpenPointInTimeResponse represents the response from the
// Elasticsearch `POST /<index>/_pit` API.
type OpenPointInTimeResponse struct {
	// ID identifies the opened point in time in later search requests.
	ID string
}
