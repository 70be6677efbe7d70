package apiClient

import (
	"context"
	"encoding/json"
	Config "memoless-api/config"
	"memoless-api/utility/appError"
	"memoless-api/utility/errorcode"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestJoinsPaths(t *testing.T) {
	client := New(nil, Config.Data{}, "http://thornode:1317/api")

	req, err := client.NewRequest(http.MethodGet, "/thorchain/memo/check/BTC.BTC/100023", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://thornode:1317/api/thorchain/memo/check/BTC.BTC/100023", req.URL.String())

	req, err = client.NewRequest(http.MethodGet, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://thornode:1317/api", req.URL.String())
}

func TestDoDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.Header.Get("x-test"))
		json.NewEncoder(w).Encode(map[string]string{"hello": "world"})
	}))
	defer server.Close()

	client := New(nil, Config.Data{RequestTimeout: 5}, server.URL)
	req, err := client.NewRequest(http.MethodGet, "greeting", nil)
	require.NoError(t, err)
	client.AddHeader(req, map[string]string{"x-test": "value"})

	body := map[string]string{}
	_, err = client.Do(context.Background(), req, &body)
	require.NoError(t, err)
	assert.Equal(t, "world", body["hello"])
}

func TestDoReturnsStatusAndBodyOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	client := New(nil, Config.Data{RequestTimeout: 5}, server.URL)
	req, err := client.NewRequest(http.MethodGet, "missing", nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req, nil)
	require.Error(t, err)
	appErr := appError.As(err, "")
	assert.Equal(t, http.StatusNotFound, appErr.ErrCode)
	assert.Equal(t, `{"message":"not found"}`, appErr.ErrData)
}

func TestDoHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(nil, Config.Data{RequestTimeout: 5}, server.URL)
	req, err := client.NewRequest(http.MethodGet, "", nil)
	require.NoError(t, err)

	_, err = client.Do(ctx, req, nil)
	require.Error(t, err)
	assert.Equal(t, errorcode.CHAIN_UNAVAILABLE, appError.As(err, "").ErrType)
}
