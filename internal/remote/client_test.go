package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersBody = `{
	"users": [
		{
			"id": 1,
			"firstName": "Emily",
			"lastName": "Johnson",
			"email": "emily.johnson@x.dummyjson.com",
			"age": 28,
			"phone": "+81 965-431-3024",
			"image": "https://dummyjson.com/icon/emilys/128",
			"address": {
				"address": "626 Main Street",
				"city": "Phoenix",
				"state": "Mississippi",
				"postalCode": "29112"
			}
		},
		{
			"id": 2,
			"firstName": "Michael",
			"lastName": "Williams",
			"email": "michael.williams@x.dummyjson.com",
			"age": 35,
			"phone": "+49 258-627-6644",
			"image": "https://dummyjson.com/icon/michaelw/128",
			"address": {
				"address": "385 Fifth Street",
				"city": "Houston",
				"state": "Alabama",
				"postalCode": "38807"
			}
		}
	],
	"total": 208,
	"skip": 0,
	"limit": 2
}`

func TestFetchDecodesUsers(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(usersBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	users, err := c.Fetch(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "20", gotLimit)

	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "Emily", users[0].FirstName)
	assert.Equal(t, "emily.johnson@x.dummyjson.com", users[0].Email)
	assert.Equal(t, "Phoenix", users[0].Address.City)
	assert.Equal(t, "29112", users[0].Address.PostalCode)
	assert.Equal(t, "Michael", users[1].FirstName)
}

func TestFetchSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchSurfacesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": [`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Fetch(context.Background(), 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchSurfacesConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody listening anymore

	c := NewClient(srv.URL, time.Second)
	_, err := c.Fetch(context.Background(), 20)
	require.Error(t, err)
}
