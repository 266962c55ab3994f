package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionService_PassesUpstreamBodyThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/provinces.json":
			w.Write([]byte(`[{"id":"31","name":"DKI JAKARTA"}]`))
		case "/province/31.json":
			w.Write([]byte(`{"id":"31","name":"DKI JAKARTA"}`))
		case "/search.json":
			require.Equal(t, "jakarta pusat", r.URL.Query().Get("name"))
			w.Write([]byte(`[{"id":"3171","name":"KOTA JAKARTA PUSAT"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	svc := NewRegionService(upstream.URL)
	ctx := context.Background()

	body, err := svc.Provinces(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"31","name":"DKI JAKARTA"}]`, string(body))

	body, err = svc.Province(ctx, "31")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"31","name":"DKI JAKARTA"}`, string(body))

	body, err = svc.SearchByCity(ctx, "jakarta pusat")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"3171","name":"KOTA JAKARTA PUSAT"}]`, string(body))
}

func TestRegionService_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := NewRegionService(upstream.URL)

	_, err := svc.Provinces(context.Background())
	require.ErrorIs(t, err, ErrRegionUpstream)

	// Unreachable origin surfaces the same sentinel.
	down := NewRegionService("http://127.0.0.1:0")
	_, err = down.Regencies(context.Background(), "31")
	require.ErrorIs(t, err, ErrRegionUpstream)
}
