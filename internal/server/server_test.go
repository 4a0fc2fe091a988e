package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"portview/internal/importer"
	"portview/internal/store"
)

type testServer struct {
	URL    string
	client *http.Client
	close  func()
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	im := importer.New()
	im.Log = log
	im.Now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	handler, err := New(Config{
		Store:    store.New(store.Seed()),
		Importer: im,
		BasePath: "/v0",
		Log:      log,
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	ts := &testServer{
		URL:    "http://" + ln.Addr().String(),
		client: &http.Client{Timeout: 5 * time.Second},
		close:  func() { srv.Close() },
	}
	t.Cleanup(ts.close)
	return ts
}

func (s *testServer) getJSON(t *testing.T, path string, out any) int {
	t.Helper()
	resp, err := s.client.Get(s.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	if code := ts.getJSON(t, "/v0/health", &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body["status"] != "ok" {
		t.Fatalf("body: %v", body)
	}
}

func TestGetPortfolio(t *testing.T) {
	ts := newTestServer(t)
	var body struct {
		ID     string `json:"id"`
		Counts struct {
			Actions int `json:"actions"`
		} `json:"counts"`
	}
	if code := ts.getJSON(t, "/v0/portfolio", &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body.ID != "portfolio-1" || body.Counts.Actions != 5 {
		t.Fatalf("body: %+v", body)
	}
}

func TestImportMergeAndReset(t *testing.T) {
	ts := newTestServer(t)
	csv := "name,budget\nNew Initiative,1000\n"
	resp, err := ts.client.Post(ts.URL+"/v0/imports/actions", "text/csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("post import: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var outcome importer.Outcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		t.Fatalf("decode outcome: %v", err)
	}
	if !outcome.Success || outcome.Message != "Successfully imported 1 actions" {
		t.Fatalf("outcome: %+v", outcome)
	}

	var p struct {
		Counts struct {
			Actions int `json:"actions"`
		} `json:"counts"`
	}
	ts.getJSON(t, "/v0/portfolio", &p)
	if p.Counts.Actions != 6 {
		t.Fatalf("merge did not land: %d actions", p.Counts.Actions)
	}

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/v0/portfolio/reset", nil)
	resetResp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	resetResp.Body.Close()
	ts.getJSON(t, "/v0/portfolio", &p)
	if p.Counts.Actions != 5 {
		t.Fatalf("reset did not restore seed: %d actions", p.Counts.Actions)
	}
}

func TestImportBadFileStillOK(t *testing.T) {
	ts := newTestServer(t)
	resp, err := ts.client.Post(ts.URL+"/v0/imports/actions", "text/csv", strings.NewReader("name\n"))
	if err != nil {
		t.Fatalf("post import: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("a malformed file is an outcome, not an HTTP error: status %d", resp.StatusCode)
	}
	var outcome importer.Outcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		t.Fatalf("decode outcome: %v", err)
	}
	if outcome.Success {
		t.Fatal("expected failed outcome")
	}
	if !strings.HasPrefix(outcome.Message, "Import failed: ") {
		t.Fatalf("message: %q", outcome.Message)
	}
}

func TestImportUnknownKind(t *testing.T) {
	ts := newTestServer(t)
	resp, err := ts.client.Post(ts.URL+"/v0/imports/widgets", "text/csv", strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("post import: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Code != "invalid_import_kind" {
		t.Fatalf("code: %q", envelope.Error.Code)
	}
}

func TestReplacePortfolio(t *testing.T) {
	ts := newTestServer(t)
	var doc map[string]any
	ts.getJSON(t, "/v0/portfolio", &doc)
	delete(doc, "counts")
	doc["id"] = "p-2"
	body, _ := json.Marshal(doc)
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/v0/portfolio", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var p struct {
		ID string `json:"id"`
	}
	ts.getJSON(t, "/v0/portfolio", &p)
	if p.ID != "p-2" {
		t.Fatalf("replace did not take: %q", p.ID)
	}
}

func TestGraphEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var g struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
		Edges []struct {
			Source string `json:"source"`
		} `json:"edges"`
	}
	if code := ts.getJSON(t, "/v0/graph", &g); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(g.Nodes) != 17 || len(g.Edges) != 6 {
		t.Fatalf("seed graph shape: %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
}

func TestTimelineEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var v struct {
		TotalMilestones int `json:"total_milestones"`
	}
	if code := ts.getJSON(t, "/v0/timeline", &v); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if v.TotalMilestones != 15 {
		t.Fatalf("seed milestones: %d", v.TotalMilestones)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var m struct {
		TotalActions     int    `json:"total_actions"`
		FormattedFunding string `json:"formatted_funding"`
	}
	if code := ts.getJSON(t, "/v0/metrics", &m); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if m.TotalActions != 5 || m.FormattedFunding != "$15,000,000" {
		t.Fatalf("metrics: %+v", m)
	}
}

func TestTemplateDownload(t *testing.T) {
	ts := newTestServer(t)
	resp, err := ts.client.Get(ts.URL + "/v0/templates/actions")
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type: %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(data), "name,description,status") {
		t.Fatalf("template body: %q", string(data)[:40])
	}

	resp, err = ts.client.Get(ts.URL + "/v0/templates/widgets")
	if err != nil {
		t.Fatalf("get bad template: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown kind status %d", resp.StatusCode)
	}
}
