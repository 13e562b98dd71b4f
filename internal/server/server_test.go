package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/pageset"
	"github.com/yanizio/pagepath/internal/theme"
	"github.com/yanizio/pagepath/internal/view"
)

type fakeStore map[string]*pageset.PageSet

func (f fakeStore) Enrich(_ context.Context, doc document.Document, id string) (document.Document, error) {
	ps, ok := f[id]
	if !ok {
		return nil, pageset.ErrNotFound
	}
	return pageset.Enrich(doc, ps), nil
}

func newTestServer(t *testing.T, d Deps) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(d))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	var sb strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	return resp.StatusCode, sb.String()
}

const storeDoc = `{"id":"123","name":"Main St","locale":"en",
	"address":{"countryCode":"US"},
	"__":{"pathInfo":{"template":"stores/[[id]]","primaryLocale":"en","breadcrumbTemplates":["[[address.countryCode]]"]}}}`

func TestRoutes(t *testing.T) {
	store := fakeStore{
		"locations": {
			ID:       "locations",
			Type:     document.PageSetEntity,
			PathInfo: &document.PathInfo{Template: "locations/[[id]]", PrimaryLocale: "en"},
		},
	}
	srv := newTestServer(t, Deps{
		PageSets: store,
		Views:    view.NewEngine(&theme.Manager{}, "", 1, view.CacheDefault),
	})

	cases := []struct {
		name   string
		path   string
		body   string
		status int
		want   string
	}{
		{"entity url", "/v1/url",
			`{"document":` + storeDoc + `,"relativePrefixToRoot":"../"}`,
			http.StatusOK, `{"url":"../stores/123","strategy":"path_info"}`},
		{"exhausted", "/v1/url", `{"document":{"id":"x"}}`,
			http.StatusUnprocessableEntity, `could not resolve url`},
		{"bad json", "/v1/url", `{"document":`, http.StatusBadRequest, `invalid request body`},
		{"no document", "/v1/url", `{}`, http.StatusBadRequest, `document is required`},
		{"stored page set", "/v1/url",
			`{"document":{"id":"9","locale":"en"},"pageSetId":"locations"}`,
			http.StatusOK, `"url":"locations/9"`},
		{"unknown page set", "/v1/url",
			`{"document":{"id":"9","locale":"en"},"pageSetId":"nope"}`,
			http.StatusNotFound, `page set not found`},
		{"child needs profile", "/v1/child-url", `{"document":{}}`,
			http.StatusBadRequest, `profile is required`},
		{"child url", "/v1/child-url",
			`{"document":{"locale":"en","__":{"pathInfo":{"sourceEntityPageSetTemplate":"stores/[[id]]","primaryLocale":"en"}}},"profile":{"id":"7"}}`,
			http.StatusOK, `"url":"stores/7"`},
		{"location path", "/v1/location-path",
			`{"document":{"slug":"custom/slug"},"relativePrefixToRoot":"../"}`,
			http.StatusOK, `"url":"../custom/slug"`},
		{"breadcrumbs", "/v1/breadcrumbs", `{"document":` + storeDoc + `,"pageId":"p"}`,
			http.StatusOK, `"strategy":"path_info"`},
		{"list child", "/v1/list-child",
			`{"document":{"locale":"es","__":{"pathInfo":{"primaryLocale":"en"}}},"child":{"slug":"va"}}`,
			http.StatusOK, `{"href":"es/va"}`},
		{"list child numeric slug", "/v1/list-child",
			`{"document":{},"child":{"slug":5}}`,
			http.StatusOK, `{"href":5}`},
		{"list child absent slug", "/v1/list-child",
			`{"document":{"locale":"es","__":{"pathInfo":{"primaryLocale":"en"}}},"child":{"name":"x"}}`,
			http.StatusOK, `{"href":null}`},
		{"large numeric id keeps precision", "/v1/url",
			`{"document":{"id":9007199254740993,"locale":"en","__":{"pathInfo":{"template":"stores/[[id]]","primaryLocale":"en"}}}}`,
			http.StatusOK, `"url":"stores/9007199254740993"`},
		{"listing", "/v1/listing",
			`{"document":{"dm_directoryChildren":[{"name":"b","slug":"b"},{"name":"A","slug":"a"}]}}`,
			http.StatusOK, `{"links":[{"label":"A","href":"a"},{"label":"b","href":"b"}]}`},
		{"listing keeps slugless child", "/v1/listing",
			`{"document":{"dm_directoryChildren":[{"name":"A"},{"name":"B","slug":"b"}]}}`,
			http.StatusOK, `{"links":[{"label":"A","href":""},{"label":"B","href":"b"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := post(t, srv, tc.path, tc.body)
			if status != tc.status {
				t.Fatalf("status = %d, want %d (body %s)", status, tc.status, body)
			}
			if !strings.Contains(body, tc.want) {
				t.Fatalf("body %s does not contain %s", body, tc.want)
			}
		})
	}
}

func TestPage(t *testing.T) {
	srv := newTestServer(t, Deps{Views: view.NewEngine(&theme.Manager{}, "", 1, view.CacheDefault)})
	resp, err := http.Post(srv.URL+"/v1/page", "application/json",
		strings.NewReader(`{"document":`+storeDoc+`,"relativePrefixToRoot":"../","pageId":"main"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q", ct)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("security headers missing")
	}
}

func TestPageSetWithoutStore(t *testing.T) {
	srv := newTestServer(t, Deps{})
	status, body := post(t, srv, "/v1/url", `{"document":{"id":"1"},"pageSetId":"x"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d (%s)", status, body)
	}
	status, _ = post(t, srv, "/v1/page", `{"document":{"id":"1"}}`)
	if status != http.StatusNotImplemented {
		t.Fatalf("page status = %d", status)
	}
}

func TestBodyLimit(t *testing.T) {
	srv := newTestServer(t, Deps{MaxBodyBytes: 16})
	status, _ := post(t, srv, "/v1/url", `{"document":{"id":"1234567890123"}}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, Deps{})
	for _, path := range []string{"/healthz", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s = %d", path, resp.StatusCode)
		}
	}
}

func TestForceHTTPS(t *testing.T) {
	h := NewRouter(Deps{ForceHTTPS: true})
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Host = "paths.example.com"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestErrorBodyShape(t *testing.T) {
	srv := newTestServer(t, Deps{})
	_, body := post(t, srv, "/v1/url", `{}`)
	var eb errorBody
	if err := json.Unmarshal([]byte(body), &eb); err != nil || eb.Error == "" {
		t.Fatalf("error body = %s (%v)", body, err)
	}
}
