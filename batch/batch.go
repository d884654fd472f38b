// Package batch evaluates many FEN or EPD lines concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"chess-eval/engine"
	"chess-eval/position"
)

var log = slog.Default().With("package", "batch")

// MaxWorkers caps the worker pool.
const MaxWorkers = 64

// Result is the evaluation of one input line. Err is set, and Score left at
// zero, when the line could not be parsed.
type Result struct {
	Line  int    `json:"line"`
	FEN   string `json:"fen"`
	Score int    `json:"score"`
	Mate  bool   `json:"mate"`
	Err   string `json:"error,omitempty"`
}

type Service struct {
	Backend string
	Workers int
}

type job struct {
	line int
	text string
}

// Run reads one position per line from r and returns the results in input
// order. Blank lines and lines starting with '#' are skipped. Only read
// errors and cancellation abort the run.
func (s *Service) Run(ctx context.Context, r io.Reader) ([]Result, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = engine.Clamp(workers, 1, MaxWorkers)

	g, ctx := errgroup.WithContext(ctx)

	var jobs = make(chan job, 128)
	var results = make(chan Result, 128)

	g.Go(func() error {
		defer close(jobs)
		return readLines(ctx, r, jobs)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return s.evaluate(ctx, jobs, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var collected []Result
	for res := range results {
		collected = append(collected, res)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].Line < collected[j].Line })
	log.Info("Batch evaluated", "positions", len(collected), "workers", workers)
	return collected, nil
}

func readLines(ctx context.Context, r io.Reader, jobs chan<- job) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job{line: line, text: text}:
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read positions: %w", err)
	}
	return nil
}

func (s *Service) evaluate(ctx context.Context, jobs <-chan job, results chan<- Result) error {
	for j := range jobs {
		res := Result{Line: j.line}
		fen, err := NormalizeFEN(j.text)
		if err == nil {
			res.FEN = fen
			var board position.Board
			board, err = position.Parse(s.Backend, fen)
			if err == nil {
				res.Score = engine.Evaluate(board)
				res.Mate = board.InCheckmate()
			}
		}
		if err != nil {
			log.Warn("Skipping position", "line", j.line, "error", err)
			res.Err = err.Error()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}

// NormalizeFEN turns a FEN or EPD record into a six-field FEN. EPD operations
// after the fourth field are dropped and the move counters default to "0 1".
func NormalizeFEN(text string) (string, error) {
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return "", fmt.Errorf("expected at least 4 FEN fields, got %d in %q", len(fields), text)
	}
	if len(fields) >= 6 && isCounter(fields[4]) && isCounter(fields[5]) {
		return strings.Join(fields[:6], " "), nil
	}
	return strings.Join(fields[:4], " ") + " 0 1", nil
}

func isCounter(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}
