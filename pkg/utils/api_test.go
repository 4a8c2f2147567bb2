package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Fetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	body, err := client.Fetch(srv.URL)

	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), body)
	assert.Equal(t, UserAgent, gotUA)
}

func TestClient_FetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Fetch(srv.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad status")
}

func TestClient_FetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(time.Second)
	_, err := client.Fetch(srv.URL)

	assert.Error(t, err)
}
