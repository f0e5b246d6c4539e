package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/inovacc/clientdir/internal/remote"
	"github.com/stretchr/testify/require"
)

func fixtureClients() []model.Client {
	return []model.Client{
		{
			ID:       1,
			Name:     "Leanne Graham",
			Username: "Bret",
			Email:    "Sincere@april.biz",
			Phone:    "1-770-736-8031 x56442",
			Website:  "hildegard.org",
			Address: &model.Address{
				Street:  "Kulas Light",
				Suite:   "Apt. 556",
				City:    "Gwenborough",
				Zipcode: "92998-3874",
			},
			Company: model.Company{
				Name:        "Romaguera-Crona",
				CatchPhrase: "Multi-layered client-server neural-net",
				BS:          "harness real-time e-markets",
			},
		},
		{
			ID:       2,
			Name:     "Ada Lovelace",
			Username: "ada",
			Email:    "ada@lovelace.io",
			Phone:    "555-0100",
			Company:  model.Company{Name: "Analytical Engines"},
		},
	}
}

// fakeCollection serves the fixture clients the way the demo endpoint does:
// creates echo the body with id 11, nothing is stored.
type fakeCollection struct {
	mu        sync.Mutex
	failIDs   map[int]bool
	requests  []string
	createdID int
}

func (f *fakeCollection) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.requests...)
}

func (f *fakeCollection) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/users/"))

	if f.failIDs[id] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(fixtureClients())

	case http.MethodPost:
		var body map[string]any

		_ = json.NewDecoder(r.Body).Decode(&body)
		body["id"] = f.createdID

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)

	case http.MethodPut:
		var body map[string]any

		_ = json.NewDecoder(r.Body).Decode(&body)
		body["id"] = id

		_ = json.NewEncoder(w).Encode(body)

	case http.MethodDelete:
		_, _ = io.WriteString(w, "{}")

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestCollection(t *testing.T, failIDs ...int) (*fakeCollection, *core.Directory) {
	t.Helper()

	fc := &fakeCollection{failIDs: map[int]bool{}, createdID: 11}
	for _, id := range failIDs {
		fc.failIDs[id] = true
	}

	srv := httptest.NewServer(fc)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := remote.NewClient(srv.URL+"/users", remote.ClientOptions{Logger: logger})
	require.NoError(t, err)

	dir := core.NewDirectory(client, core.DirectoryOptions{Logger: logger})
	require.NoError(t, dir.Load(context.Background()))

	return fc, dir
}
