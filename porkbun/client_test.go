package porkbun

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsCredentialsInBody(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "SUCCESS", "records": []any{}})
	}))
	defer srv.Close()

	c := New("pk_test", "sk_test", srv.URL)
	_, err := c.Retrieve(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, "/dns/retrieve/example.com", gotPath)
	assert.Equal(t, "pk_test", gotPayload["apikey"])
	assert.Equal(t, "sk_test", gotPayload["secretapikey"])
}

func TestClientRetrieveByNameType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dns/retrieveByNameType/example.com/A/www", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "SUCCESS",
			"records": []map[string]any{
				{"id": "42", "name": "www.example.com", "type": "A", "content": "1.2.3.4", "ttl": "600"},
			},
		})
	}))
	defer srv.Close()

	c := New("pk", "sk", srv.URL)
	recs, err := c.RetrieveByNameType(context.Background(), "example.com", "A", "www")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "42", recs[0].ID)
	assert.Equal(t, "1.2.3.4", recs[0].Content)
	assert.Equal(t, "600", recs[0].TTL)
}

func TestClientCreate(t *testing.T) {
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dns/create/example.com", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "SUCCESS", "id": 12345})
	}))
	defer srv.Close()

	c := New("pk", "sk", srv.URL)
	prio := 10
	id, err := c.Create(context.Background(), "example.com", Request{
		Name: "@", Type: "MX", Content: "mail.example.com.", TTL: 3600, Prio: &prio,
	})
	require.NoError(t, err)
	assert.Equal(t, "12345", id)

	assert.Equal(t, "MX", gotPayload["type"])
	assert.Equal(t, "mail.example.com.", gotPayload["content"])
	assert.EqualValues(t, 3600, gotPayload["ttl"])
	assert.EqualValues(t, 10, gotPayload["prio"])
}

func TestClientCreateOmitsPrioWhenUnset(t *testing.T) {
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "SUCCESS", "id": 1})
	}))
	defer srv.Close()

	c := New("pk", "sk", srv.URL)
	_, err := c.Create(context.Background(), "example.com", Request{Name: "@", Type: "A", Content: "1.2.3.4", TTL: 600})
	require.NoError(t, err)
	assert.NotContains(t, gotPayload, "prio")
}

func TestClientErrorStatusSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ERROR", "message": "Invalid API key"})
	}))
	defer srv.Close()

	c := New("pk", "sk", srv.URL)
	_, err := c.Retrieve(context.Background(), "example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestClientEdit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dns/edit/example.com/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "SUCCESS"})
	}))
	defer srv.Close()

	c := New("pk", "sk", srv.URL)
	err := c.Edit(context.Background(), "example.com", "42", Request{Name: "@", Type: "A", Content: "5.6.7.8", TTL: 600})
	require.NoError(t, err)
}

func TestSplitDomain(t *testing.T) {
	tss := []struct {
		domain       string
		expectedRoot string
		expectedSub  string
	}{
		{"example.com", "example.com", ""},
		{"www.example.com", "example.com", "www"},
		{"a.b.example.com", "example.com", "a.b"},
		{"example.com.", "example.com", ""},
		{"localhost", "localhost", ""},
	}

	for _, ts := range tss {
		t.Run(ts.domain, func(t *testing.T) {
			root, sub := SplitDomain(ts.domain)
			assert.Equal(t, ts.expectedRoot, root)
			assert.Equal(t, ts.expectedSub, sub)
		})
	}
}
