package main

import (
	"bytes"
	"strings"
	"testing"

	"chess-eval/position"
)

func runUCI(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	uciLoop(strings.NewReader(script), &out)
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := runUCI(t, "uci\nisready\nquit\n")
	for _, want := range []string{"id name", "option name Backend type combo default goose var dragontooth var goose", "uciok", "readyok"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestUCIGoTakesHangingQueen(t *testing.T) {
	out := runUCI(t, "position fen 4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1\ngo wtime 1000 btime 1000\n")
	if !strings.Contains(out, "bestmove e4d5") {
		t.Fatalf("expected bestmove e4d5, got:\n%s", out)
	}
}

func TestUCIPositionMovesAndEval(t *testing.T) {
	out := runUCI(t, "position startpos moves f2f3 e7e5 g2g4\nd\ngo\n")
	if !strings.Contains(out, "Fen: rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b") {
		t.Fatalf("unexpected position:\n%s", out)
	}
	if !strings.Contains(out, "bestmove d8h4") || !strings.Contains(out, "score mate 1") {
		t.Fatalf("expected the mating move:\n%s", out)
	}

	out = runUCI(t, "eval\n")
	if !strings.Contains(out, "Total:\t\t0 (equal)") {
		t.Fatalf("start position eval:\n%s", out)
	}
}

func TestUCISetBackend(t *testing.T) {
	for _, backend := range position.Backends() {
		out := runUCI(t, "position startpos moves e2e4\nsetoption name Backend value "+backend+"\nd\n")
		if strings.Contains(out, "info string") {
			t.Fatalf("%s: unexpected error output:\n%s", backend, out)
		}
		if !strings.Contains(out, "Fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b") {
			t.Fatalf("%s: position lost on backend switch:\n%s", backend, out)
		}
	}
	out := runUCI(t, "setoption name Backend value stockfish\n")
	if !strings.Contains(out, "unknown board backend") {
		t.Fatalf("expected unknown backend error:\n%s", out)
	}
}

func TestUCIMatedPositionHasNoMove(t *testing.T) {
	out := runUCI(t, "position startpos moves f2f3 e7e5 g2g4 d8h4\ngo\n")
	if !strings.Contains(out, "bestmove 0000") {
		t.Fatalf("expected bestmove 0000:\n%s", out)
	}
}
