package adapters

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"rma-reconcile/internal/core/config"
	rmaports "rma-reconcile/internal/features/rma/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRmaAPIAdapter_FindAll_Success verifies corpus fetching and envelope
// unwrapping.
func TestRmaAPIAdapter_FindAll_Success(t *testing.T) {
	mockResponse := `{
		"success": true,
		"data": [
			{
				"rmaNumber": "RMA-2024-0001",
				"siteName": "Chennai Plant",
				"trackingNumber": "OUT-1",
				"shippedThru": "Blue Dart",
				"shippedDate": "2024-01-10"
			},
			{
				"rmaNumber": "RMA-2024-0002",
				"shipping": {
					"return": {
						"trackingNumber": "RET-2",
						"carrier": "DTDC"
					}
				}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rmas", r.URL.Path)

		expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("key_test:secret_test"))
		assert.Equal(t, expectedAuth, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	adapter := NewRmaAPIAdapter(config.RmaAPIConfig{
		URL:       server.URL,
		APIKey:    "key_test",
		APISecret: "secret_test",
	})

	records, err := adapter.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "RMA-2024-0001", records[0].RmaNumber)
	assert.Equal(t, "OUT-1", records[0].TrackingNumber)
	assert.Equal(t, "Blue Dart", records[0].ShippedThru)

	require.NotNil(t, records[1].Shipping)
	require.NotNil(t, records[1].Shipping.Return)
	assert.Equal(t, "RET-2", records[1].Shipping.Return.TrackingNumber)
}

// TestRmaAPIAdapter_FindByID_Success verifies single-record fetching.
func TestRmaAPIAdapter_FindByID_Success(t *testing.T) {
	mockResponse := `{
		"success": true,
		"data": {
			"rmaNumber": "RMA-2024-0003",
			"rmaReturnTrackingNumber": "D30048484",
			"rmaReturnShippedThru": "DTDC"
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rmas/abc123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	adapter := NewRmaAPIAdapter(config.RmaAPIConfig{URL: server.URL, APIKey: "k", APISecret: "s"})

	record, err := adapter.FindByID(context.Background(), "abc123")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "RMA-2024-0003", record.RmaNumber)
	assert.Equal(t, "D30048484", record.RmaReturnTrackingNumber)
}

// TestRmaAPIAdapter_FindByID_NotFound verifies the not-found sentinel mapping.
func TestRmaAPIAdapter_FindByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewRmaAPIAdapter(config.RmaAPIConfig{URL: server.URL, APIKey: "k", APISecret: "s"})

	record, err := adapter.FindByID(context.Background(), "missing")

	assert.Nil(t, record)
	assert.ErrorIs(t, err, rmaports.ErrRmaNotFound)
}

// TestRmaAPIAdapter_FindAll_ServerError verifies failure propagation.
func TestRmaAPIAdapter_FindAll_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewRmaAPIAdapter(config.RmaAPIConfig{URL: server.URL, APIKey: "k", APISecret: "s"})

	records, err := adapter.FindAll(context.Background())

	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status: 500")
}

// TestRmaAPIAdapter_HealthCheck verifies reachability probing.
func TestRmaAPIAdapter_HealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "limit=1", r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer server.Close()

	adapter := NewRmaAPIAdapter(config.RmaAPIConfig{URL: server.URL, APIKey: "k", APISecret: "s"})

	assert.NoError(t, adapter.HealthCheck())
}

// TestRmaAPIAdapter_HealthCheck_AuthFailure verifies credential rejection.
func TestRmaAPIAdapter_HealthCheck_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := NewRmaAPIAdapter(config.RmaAPIConfig{URL: server.URL, APIKey: "bad", APISecret: "creds"})

	err := adapter.HealthCheck()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 401")
}
