package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-storefront/pkg/utils"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(utils.APIConfig{BaseURL: baseURL}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	_, err := New(utils.APIConfig{BaseURL: "not-a-url"}, zap.NewNop())
	require.Error(t, err)

	_, err = New(utils.APIConfig{BaseURL: "http://localhost:8080/api/v1"}, zap.NewNop())
	require.NoError(t, err)
}

func TestGet_BuildsURLAndDecodes(t *testing.T) {
	var gotPath, gotQuery, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]string{"id": "p1"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api/v1")

	var out struct {
		ID string `json:"id"`
	}
	query := url.Values{}
	query.Set("page", "2")
	err := client.Get(context.Background(), "/products", query, &out)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/products", gotPath)
	assert.Equal(t, "page=2", gotQuery)
	assert.Equal(t, "p1", out.ID)
	assert.NotEmpty(t, gotRequestID)
}

func TestPost_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "new"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	var out struct {
		ID string `json:"id"`
	}
	err := client.Post(context.Background(), "/products", map[string]string{"name": "Kopi"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Kopi", gotBody["name"])
	assert.Equal(t, "new", out.ID)
}

func TestDo_ServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	err := client.Post(context.Background(), "/auth/register/customer", nil, nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Message)
	assert.Equal(t, "Email already registered", Message(err, "fallback"))
	assert.True(t, IsStatus(err, http.StatusConflict))
}

func TestDo_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	err := client.Get(context.Background(), "/products", nil, nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "fallback", Message(err, "fallback"))
}

func TestDo_UnauthorizedReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	// 401 hanya jadi error biasa, tidak ada side effect lain
	err := client.Get(context.Background(), "/auth/profile", nil, nil)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestDo_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	var out map[string]any
	err := client.Get(context.Background(), "/products", nil, &out)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDo_CookieJarCarriesSession(t *testing.T) {
	var secondRequestCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "SESSION", Value: "abc123", Path: "/"})
			json.NewEncoder(w).Encode(map[string]string{"id": "u1"})
		case "/auth/profile":
			if c, err := r.Cookie("SESSION"); err == nil {
				secondRequestCookie = c.Value
			}
			json.NewEncoder(w).Encode(map[string]string{"id": "u1"})
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, client.Post(ctx, "/auth/login", map[string]string{"email": "a@b.c"}, nil))
	require.NoError(t, client.Get(ctx, "/auth/profile", nil, nil))

	assert.Equal(t, "abc123", secondRequestCookie)
}
