package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"chess-eval/position"
)

const hangingQueen = "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewApplication(position.Default, io.Discard))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, u string, v any) int {
	t.Helper()
	resp, err := http.Get(u)
	if err != nil {
		t.Fatalf("GET %s: %v", u, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", u, err)
	}
	return resp.StatusCode
}

func TestEvalStartPosition(t *testing.T) {
	srv := newTestServer(t)
	var ev Evaluation
	if code := getJSON(t, srv.URL+"/eval", &ev); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if ev.Score != 0 || ev.Mate || !ev.WhiteToMove || ev.Backend != position.Default {
		t.Fatalf("unexpected start evaluation %+v", ev)
	}
}

func TestEvalWithMovesAndBackend(t *testing.T) {
	srv := newTestServer(t)
	q := url.Values{}
	q.Set("backend", position.Dragontooth)
	q.Add("move", "f2f3")
	q.Add("move", "e7e5")
	q.Add("move", "g2g4")
	q.Add("move", "d8h4")
	var ev Evaluation
	if code := getJSON(t, srv.URL+"/eval?"+q.Encode(), &ev); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !ev.Mate || ev.Score <= 0 || ev.Relative >= 0 || ev.Backend != position.Dragontooth {
		t.Fatalf("expected white to be mated, got %+v", ev)
	}
	if ev.Score != ev.Breakdown.Total() {
		t.Fatalf("score %d does not match breakdown %d", ev.Score, ev.Breakdown.Total())
	}
}

func TestEvalErrors(t *testing.T) {
	srv := newTestServer(t)
	for _, u := range []string{
		"/eval?backend=nope",
		"/eval?fen=" + url.QueryEscape("not a fen"),
		"/eval?move=e2e5",
	} {
		var er errorResponse
		if code := getJSON(t, srv.URL+u, &er); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", u, code)
		}
		if er.Error == "" {
			t.Errorf("%s: expected an error message", u)
		}
	}
	resp, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestEvalPost(t *testing.T) {
	srv := newTestServer(t)
	body, _ := json.Marshal(Request{FEN: hangingQueen, Best: true})
	resp, err := http.Post(srv.URL+"/eval", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var ev Evaluation
	if err := json.NewDecoder(resp.Body).Decode(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.BestMove != "e4d5" {
		t.Fatalf("expected best move e4d5, got %+v", ev)
	}

	resp, err = http.Post(srv.URL+"/eval", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", resp.StatusCode)
	}
}

func TestBest(t *testing.T) {
	srv := newTestServer(t)
	var ev Evaluation
	getJSON(t, srv.URL+"/best?fen="+url.QueryEscape(hangingQueen), &ev)
	if ev.BestMove != "e4d5" {
		t.Fatalf("expected e4d5, got %q", ev.BestMove)
	}
}

func TestBackends(t *testing.T) {
	srv := newTestServer(t)
	var got struct {
		Default  string   `json:"default"`
		Backends []string `json:"backends"`
	}
	getJSON(t, srv.URL+"/backends", &got)
	if got.Default != position.Default || len(got.Backends) != len(position.Backends()) {
		t.Fatalf("unexpected backends response %+v", got)
	}
}

func TestWebsocket(t *testing.T) {
	srv := newTestServer(t)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Request{Moves: []string{"e2e4"}}); err != nil {
		t.Fatal(err)
	}
	var ev Evaluation
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.WhiteToMove || !strings.HasPrefix(ev.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b") {
		t.Fatalf("unexpected evaluation %+v", ev)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("nonsense")); err != nil {
		t.Fatal(err)
	}
	var er errorResponse
	if err := conn.ReadJSON(&er); err != nil {
		t.Fatal(err)
	}
	if er.Error == "" {
		t.Fatalf("expected an error reply")
	}
}
