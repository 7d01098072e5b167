package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/micahco/dduwash/lib-bay"
)

// DummyResults is six bays updated at 2023-11-14T22:13:20Z.
var DummyResults = []bay.Result{
	{BayID: "Washbay 1", Status: bay.StatusEmpty, Timestamp: 1700000000},
	{BayID: "Washbay 2", Status: bay.StatusOccupied, Timestamp: 1700000000},
	{BayID: "Washbay 3", Status: bay.StatusMaintenance, Timestamp: 1700000000},
	{BayID: "Washbay 4", Status: bay.StatusEmpty, Timestamp: 1700000000},
	{BayID: "Washbay 5", Status: bay.StatusOccupied, Timestamp: 1700000000},
	{BayID: "Washbay 6", Status: bay.StatusEmpty, Timestamp: 1700000000},
}

// DummyResultsJSON is DummyResults in the API format.
const DummyResultsJSON = `[
	{"bay_id": "Washbay 1", "status": 0, "timestamp": 1700000000},
	{"bay_id": "Washbay 2", "status": 1, "timestamp": 1700000000},
	{"bay_id": "Washbay 3", "status": 2, "timestamp": 1700000000},
	{"bay_id": "Washbay 4", "status": 0, "timestamp": 1700000000},
	{"bay_id": "Washbay 5", "status": 1, "timestamp": 1700000000},
	{"bay_id": "Washbay 6", "status": 0, "timestamp": 1700000000}
]`

// DummyAPI is a status API server for tests.
type DummyAPI struct {
	*httptest.Server

	code  atomic.Int32
	body  atomic.Value
	count atomic.Int32
}

// StartDummyAPI starts a DummyAPI that replies DummyResultsJSON on /api.
func StartDummyAPI(t testing.TB) *DummyAPI {
	t.Helper()

	api := &DummyAPI{}
	api.Set(http.StatusOK, DummyResultsJSON)

	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		api.count.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(api.code.Load()))
		w.Write([]byte(api.body.Load().(string)))
	}))
	t.Cleanup(api.Close)

	return api
}

// Set changes the response.
func (api *DummyAPI) Set(code int, body string) {
	api.code.Store(int32(code))
	api.body.Store(body)
}

// Count returns how many times /api was requested.
func (api *DummyAPI) Count() int {
	return int(api.count.Load())
}

// BayClient makes a client for /api of this server.
func (api *DummyAPI) BayClient(t testing.TB) *bay.Client {
	t.Helper()

	c, err := bay.NewClient(api.URL, "/api")
	if err != nil {
		t.Fatalf("failed to make client: %s", err)
	}
	return c
}

// FetcherFunc is a bay.Fetcher made from a function.
type FetcherFunc func(ctx context.Context) ([]bay.Result, error)

func (f FetcherFunc) Fetch(ctx context.Context) ([]bay.Result, error) {
	return f(ctx)
}

// CountingFetcher is a bay.Fetcher that replies fixed values and counts calls.
type CountingFetcher struct {
	Results []bay.Result
	Err     error

	count atomic.Int32
}

func (f *CountingFetcher) Fetch(ctx context.Context) ([]bay.Result, error) {
	f.count.Add(1)
	return f.Results, f.Err
}

// Count returns how many times Fetch was called.
func (f *CountingFetcher) Count() int {
	return int(f.count.Load())
}
