package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"chess-eval/batch"
	"chess-eval/engine"
	"chess-eval/game"
	"chess-eval/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to initial position)")
	backend := flag.String("backend", position.Default, "Board backend ("+strings.Join(position.Backends(), ", ")+")")
	file := flag.String("file", "", "Evaluate every FEN/EPD line of this file ('-' for stdin)")
	pgnFile := flag.String("pgn", "", "Score every ply of the main line of this PGN file")
	workers := flag.Int("workers", 0, "Worker goroutines for -file (0 = NumCPU)")
	debug := flag.Bool("debug", false, "Print the per-term breakdown for -fen")
	asJSON := flag.Bool("json", false, "Emit JSON lines instead of text")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *file != "":
		err = runFile(ctx, *file, *backend, *workers, *asJSON)
	case *pgnFile != "":
		err = runPGN(ctx, *pgnFile, *backend, *asJSON)
	default:
		err = runFEN(*fen, *backend, *debug, *asJSON)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFEN(fen, backend string, debug, asJSON bool) error {
	board, err := position.Parse(backend, fen)
	if err != nil {
		return err
	}
	bd := engine.EvaluateDetailed(board)
	switch {
	case asJSON:
		return json.NewEncoder(os.Stdout).Encode(bd)
	case debug:
		fmt.Print(bd.String())
	default:
		fmt.Println(bd.Total())
	}
	return nil
}

func runFile(ctx context.Context, path, backend string, workers int, asJSON bool) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	svc := &batch.Service{Backend: backend, Workers: workers}
	results, err := svc.Run(ctx, r)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	failed := 0
	for _, res := range results {
		if res.Err != "" {
			failed++
		}
		if asJSON {
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}
		if res.Err != "" {
			fmt.Printf("%d\terror\t%s\n", res.Line, res.Err)
		} else {
			fmt.Printf("%d\t%d\t%s\n", res.Line, res.Score, res.FEN)
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d positions failed\n", failed, len(results))
	}
	return nil
}

func runPGN(ctx context.Context, path, backend string, asJSON bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	plies, err := game.ScoreGame(ctx, string(data), game.WithBackend(backend))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	for i := range plies {
		if asJSON {
			if err := enc.Encode(&plies[i]); err != nil {
				return err
			}
			continue
		}
		fmt.Println(plies[i].String())
	}
	return nil
}
