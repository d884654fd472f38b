package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chess-eval/engine"
	"chess-eval/position"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

type uciState struct {
	backend string
	board   position.Board
	out     io.Writer
}

func newUCIState(out io.Writer) *uciState {
	return &uciState{
		backend: position.Default,
		board:   position.MustParse(position.Default, position.StartFEN),
		out:     out,
	}
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	state := newUCIState(out)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name GooseEval 1.0")
			fmt.Fprintln(out, "id author Goose")
			fmt.Fprintf(out, "option name Backend type combo default %s", position.Default)
			for _, name := range position.Backends() {
				fmt.Fprintf(out, " var %s", name)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			state.board = position.MustParse(state.backend, position.StartFEN)
		case "quit":
			return
		case "stop":
			// Move selection is a single ply; there is nothing running to stop.
		case "position":
			state.position(tokens[1:])
		case "go":
			state.goCommand()
		case "eval":
			fmt.Fprint(out, engine.EvaluateDetailed(state.board).String())
		case "d":
			fmt.Fprintln(out, "Fen:", state.board.FEN())
		case "setoption":
			state.setOption(tokens[1:])
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

func (s *uciState) position(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "info string Malformed position command")
		return
	}
	var fen string
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = position.StartFEN
	case "fen":
		i := 0
		for i < len(rest) && strings.ToLower(rest[i]) != "moves" {
			i++
		}
		fen = strings.Join(rest[:i], " ")
		rest = rest[i:]
		if fen == "" {
			fmt.Fprintln(s.out, "info string Invalid fen position")
			return
		}
	default:
		fmt.Fprintln(s.out, "info string Invalid position subcommand")
		return
	}
	board, err := position.Parse(s.backend, fen)
	if err != nil {
		fmt.Fprintln(s.out, "info string", err)
		return
	}
	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, mv := range rest[1:] {
			next, err := board.Play(mv)
			if err != nil {
				fmt.Fprintln(s.out, "info string", err)
				break
			}
			board = next
		}
	}
	s.board = board
}

// goCommand picks a move from one ply of static evaluation. Time controls and
// depth limits are accepted but have no effect.
func (s *uciState) goCommand() {
	best, score, ok := engine.SelectMove(s.board)
	if !ok {
		fmt.Fprintln(s.out, "bestmove 0000")
		return
	}
	rel := engine.RelativeScore(score, s.board.WhiteToMove())
	if engine.IsMateScore(rel) {
		mate := 1
		if rel < 0 {
			mate = -1
		}
		fmt.Fprintf(s.out, "info depth 1 score mate %d pv %s\n", mate, best.Move)
	} else {
		fmt.Fprintf(s.out, "info depth 1 score cp %d pv %s\n", rel, best.Move)
	}
	fmt.Fprintln(s.out, "bestmove", best.Move)
}

// setOption handles "setoption name <id> value <x>".
func (s *uciState) setOption(args []string) {
	var name, value string
	for i := 0; i+1 < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "name":
			name = strings.ToLower(args[i+1])
		case "value":
			value = strings.ToLower(args[i+1])
		}
	}
	switch name {
	case "backend":
		board, err := position.Parse(value, s.board.FEN())
		if err != nil {
			fmt.Fprintln(s.out, "info string", err)
			return
		}
		s.backend, s.board = value, board
	default:
		fmt.Fprintln(s.out, "info string Unknown option", name)
	}
}
