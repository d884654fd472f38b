// Package server exposes the evaluator over HTTP and websockets.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"chess-eval/engine"
	"chess-eval/position"
)

const DefaultPort = 8080

var log = slog.Default().With("package", "server")

// Request describes a position: a FEN (start position when empty), an
// optional move list played from it and an optional backend override.
type Request struct {
	FEN     string   `json:"fen"`
	Moves   []string `json:"moves,omitempty"`
	Backend string   `json:"backend,omitempty"`
	Best    bool     `json:"best,omitempty"`
}

// Evaluation is the response for one position. Score is Black-positive;
// Relative is from the side to move.
type Evaluation struct {
	FEN         string           `json:"fen"`
	Backend     string           `json:"backend"`
	Score       int              `json:"score"`
	Relative    int              `json:"relative"`
	Mate        bool             `json:"mate"`
	WhiteToMove bool             `json:"whiteToMove"`
	Breakdown   engine.Breakdown `json:"breakdown"`
	BestMove    string           `json:"bestMove,omitempty"`
	BestScore   int              `json:"bestScore,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Application struct {
	router   *mux.Router
	backend  string
	upgrader websocket.Upgrader
}

// NewApplication builds the router. Access logs go to accessLog in Apache
// common format.
func NewApplication(backend string, accessLog io.Writer) *Application {
	if backend == "" {
		backend = position.Default
	}
	app := &Application{
		router:  mux.NewRouter(),
		backend: backend,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	logged := func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(accessLog, next)
	}
	app.router.NotFoundHandler = logged(http.HandlerFunc(notFoundHandler))
	app.router.Use(logged)

	app.router.HandleFunc("/backends", app.backendsHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/eval", app.evalQueryHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/eval", app.evalBodyHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/best", app.bestHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/ws", app.wsHandler)
	return app
}

func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

// Evaluate resolves req to a board and scores it.
func (app *Application) Evaluate(req Request) (*Evaluation, error) {
	backend := req.Backend
	if backend == "" {
		backend = app.backend
	}
	fen := req.FEN
	if fen == "" {
		fen = position.StartFEN
	}
	board, err := position.Parse(backend, fen)
	if err != nil {
		return nil, err
	}
	if board, err = position.PlayMoves(board, req.Moves...); err != nil {
		return nil, err
	}

	bd := engine.EvaluateDetailed(board)
	ev := &Evaluation{
		FEN:         board.FEN(),
		Backend:     backend,
		Score:       bd.Total(),
		Relative:    engine.RelativeScore(bd.Total(), board.WhiteToMove()),
		Mate:        board.InCheckmate(),
		WhiteToMove: board.WhiteToMove(),
		Breakdown:   bd,
	}
	if req.Best {
		if best, score, ok := engine.SelectMove(board); ok {
			ev.BestMove, ev.BestScore = best.Move, score
		}
	}
	return ev, nil
}

func (app *Application) backendsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Default  string   `json:"default"`
		Backends []string `json:"backends"`
	}{app.backend, position.Backends()})
}

func (app *Application) evalQueryHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	app.respond(w, Request{FEN: q.Get("fen"), Moves: q["move"], Backend: q.Get("backend")})
}

func (app *Application) evalBodyHandler(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{fmt.Sprintf("decode request: %v", err)})
		return
	}
	app.respond(w, req)
}

func (app *Application) bestHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	app.respond(w, Request{FEN: q.Get("fen"), Moves: q["move"], Backend: q.Get("backend"), Best: true})
}

func (app *Application) respond(w http.ResponseWriter, req Request) {
	ev, err := app.Evaluate(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Error writing response", "error", err)
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "File Not Found", http.StatusNotFound)
}

// wsHandler answers every JSON Request message on the connection with an
// Evaluation, or an error object, until the client goes away.
func (app *Application) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Error upgrading websocket", "error", err)
		return
	}
	log.Info("New websocket connection", "remote", conn.RemoteAddr().String())
	go func() {
		defer conn.Close()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn("Error reading message", "error", err)
				}
				return
			}
			var req Request
			var reply any
			if err := json.Unmarshal(message, &req); err != nil {
				reply = errorResponse{fmt.Sprintf("decode request: %v", err)}
			} else if ev, err := app.Evaluate(req); err != nil {
				reply = errorResponse{err.Error()}
			} else {
				reply = ev
			}
			if err := conn.WriteJSON(reply); err != nil {
				log.Warn("Error writing message", "error", err)
				return
			}
		}
	}()
}
