package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikey/worlds/pkg/utils"
)

func TestFetcher_FetchCatalog(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"items":[
			{"name":"Alpha","file":"a.json","tags":"x, y"},
			{"title":"Beta","json_url":"https://cdn.example/b.json"}
		]}`))
	}))
	defer srv.Close()

	entries, err := NewFetcher().FetchCatalog(srv.URL+"/index.json", srv.URL+"/")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alpha", entries[0].Title)
	assert.Equal(t, srv.URL+"/a.json", entries[0].JSONURL)
	assert.Equal(t, []string{"x", "y"}, entries[0].Tags)
	assert.Equal(t, "https://cdn.example/b.json", entries[1].JSONURL)
	assert.Equal(t, utils.UserAgent, gotUA)
}

func TestFetcher_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := NewFetcher().FetchCatalog(srv.URL, srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog document")
}

func TestFetcher_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewFetcher().FetchCatalog(srv.URL, srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch catalog")
}

func TestFetcher_InvalidUTF8Replaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"name":"A` + string([]byte{0xff}) + `","file":"a.json"}]}`))
	}))
	defer srv.Close()

	entries, err := NewFetcher().FetchCatalog(srv.URL, srv.URL+"/")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A�", entries[0].Title)
}

func TestFetcher_EmptyCatalogIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unrelated":true}`))
	}))
	defer srv.Close()

	entries, err := NewFetcher().FetchCatalog(srv.URL, srv.URL)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
