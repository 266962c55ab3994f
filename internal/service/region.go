package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrRegionUpstream is returned when the external regions API cannot be
// reached or answers with a non-200 status.
var ErrRegionUpstream = errors.New("region provider unavailable")

// RegionService proxies the external administrative-regions REST API. It
// holds no region data itself; responses are passed through verbatim.
type RegionService struct {
	BaseURL string
	Client  *http.Client
}

func NewRegionService(baseURL string) *RegionService {
	return &RegionService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *RegionService) Provinces(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, "/provinces.json")
}

func (s *RegionService) Province(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, "/province/"+url.PathEscape(id)+".json")
}

func (s *RegionService) Regencies(ctx context.Context, provinceID string) (json.RawMessage, error) {
	return s.get(ctx, "/regencies/"+url.PathEscape(provinceID)+".json")
}

func (s *RegionService) Districts(ctx context.Context, regencyID string) (json.RawMessage, error) {
	return s.get(ctx, "/districts/"+url.PathEscape(regencyID)+".json")
}

func (s *RegionService) Villages(ctx context.Context, districtID string) (json.RawMessage, error) {
	return s.get(ctx, "/villages/"+url.PathEscape(districtID)+".json")
}

// SearchByCity asks the provider for regions whose city name matches name.
func (s *RegionService) SearchByCity(ctx context.Context, name string) (json.RawMessage, error) {
	return s.get(ctx, "/search.json?name="+url.QueryEscape(name))
}

func (s *RegionService) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegionUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrRegionUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegionUpstream, err)
	}
	return json.RawMessage(body), nil
}
