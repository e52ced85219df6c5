package selfclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_FetchAccount(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/"+id.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":             id,
			"account_number": "ACC-001",
			"routing_key":    "R1",
			"owner_name":     "Test User",
			"currency":       "ARS",
			"balance":        500.25,
			"status":         "ACTIVE",
			"branch_code":    "001",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())

	account, err := client.FetchAccount(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "Test User", account.OwnerName)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("500.25")))
}

func TestClient_FetchAccount_MissingBalanceDecodesToZero(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     id,
			"status": "ACTIVE",
		})
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())

	account, err := client.FetchAccount(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero())
}

func TestClient_FetchAccount_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())

	_, err := client.FetchAccount(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestClient_FetchAccount_UpstreamStatusForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())

	_, err := client.FetchAccount(context.Background(), uuid.New())

	require.Error(t, err)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, de.UpstreamStatus)
}

func TestClient_FetchAccount_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New(srv.URL, zap.NewNop())

	_, err := client.FetchAccount(context.Background(), uuid.New())

	require.Error(t, err)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindUpstream, de.Kind)
	assert.Equal(t, 0, de.UpstreamStatus)
}
