package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
)

// FakeCDN imitates the subset of Data Dragon the app reads
type FakeCDN struct {
	Server *httptest.Server

	mu         sync.Mutex
	versions   []string
	champions  map[string]ChampionFixture
	listStatus int    // non-zero overrides the listing response code
	listBody   string // non-empty overrides the listing body

	listHits   atomic.Int64
	detailHits atomic.Int64
}

// NewFakeCDN starts a fake CDN serving champs at the given versions.
// The server is closed when the test ends.
func NewFakeCDN(t *testing.T, versions []string, champs ...ChampionFixture) *FakeCDN {
	t.Helper()

	f := &FakeCDN{
		versions:  versions,
		champions: make(map[string]ChampionFixture, len(champs)),
	}
	for _, c := range champs {
		f.champions[c.ID] = c
	}

	r := chi.NewRouter()
	r.Get("/api/versions.json", f.handleVersions)
	r.Route("/cdn/{version}/data/{locale}", func(r chi.Router) {
		r.Get("/champion.json", f.handleListing)
		r.Get("/champion/{file}", f.handleDetail)
	})

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the server base URL
func (f *FakeCDN) URL() string {
	return f.Server.URL
}

// FailListing makes the listing endpoint answer with status
func (f *FakeCDN) FailListing(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listStatus = status
}

// SetListingBody replaces the listing payload with raw text
func (f *FakeCDN) SetListingBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listBody = body
}

// ListingHits returns how many times champion.json was requested
func (f *FakeCDN) ListingHits() int {
	return int(f.listHits.Load())
}

// DetailHits returns how many times a champion/{id}.json was requested
func (f *FakeCDN) DetailHits() int {
	return int(f.detailHits.Load())
}

func (f *FakeCDN) knownVersion(v string) bool {
	for _, known := range f.versions {
		if known == v {
			return true
		}
	}
	return false
}

func (f *FakeCDN) handleVersions(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, f.versions)
}

func (f *FakeCDN) handleListing(w http.ResponseWriter, r *http.Request) {
	f.listHits.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	version := chi.URLParam(r, "version")
	if !f.knownVersion(version) {
		http.Error(w, "AccessDenied", http.StatusForbidden)
		return
	}
	if f.listStatus != 0 {
		http.Error(w, http.StatusText(f.listStatus), f.listStatus)
		return
	}
	if f.listBody != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(f.listBody))
		return
	}

	data := make(map[string]ChampionFixture, len(f.champions))
	for id, c := range f.champions {
		c.Version = version
		c.Lore = "" // listing never carries lore
		data[id] = c
	}
	writeJSON(w, map[string]any{
		"type":    "champion",
		"format":  "standAloneComplex",
		"version": version,
		"data":    data,
	})
}

func (f *FakeCDN) handleDetail(w http.ResponseWriter, r *http.Request) {
	f.detailHits.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	version := chi.URLParam(r, "version")
	id, ok := strings.CutSuffix(chi.URLParam(r, "file"), ".json")
	if !ok || !f.knownVersion(version) {
		http.Error(w, "AccessDenied", http.StatusForbidden)
		return
	}

	// File names are case-sensitive, like the real CDN
	champ, found := f.champions[id]
	if !found {
		http.Error(w, "AccessDenied", http.StatusForbidden)
		return
	}

	champ.Version = version
	writeJSON(w, map[string]any{
		"type":    "champion",
		"format":  "standAloneComplex",
		"version": version,
		"data":    map[string]ChampionFixture{champ.ID: champ},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
