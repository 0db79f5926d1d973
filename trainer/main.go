package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// trainer drives AI-vs-AI games against a running backend to warm the
// memo caches and report win rates per side.
type trainer struct {
	client       *http.Client
	baseURL      string
	pollInterval time.Duration
}

type statusResponse struct {
	Status    string            `json:"status"`
	Winner    int               `json:"winner"`
	BoardSize int               `json:"board_size"`
	History   []json.RawMessage `json:"history"`
}

type memoStatsResponse map[string]int

func main() {
	addr := flag.String("addr", "http://localhost:8080", "backend base URL")
	games := flag.Int("games", 10, "number of self-play games to run")
	size := flag.Int("size", 6, "board size")
	level := flag.Int("level", 4, "search depth for both sides")
	flag.Parse()

	t := &trainer{
		client:       &http.Client{Timeout: 30 * time.Second},
		baseURL:      *addr,
		pollInterval: 200 * time.Millisecond,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wins := map[int]int{}
	var moves int
	for i := 0; i < *games; i++ {
		result, err := t.playGame(ctx, *size, *level)
		if err != nil {
			log.Fatalf("game %d failed: %v", i+1, err)
		}
		wins[result.Winner]++
		moves += len(result.History)
		log.Printf("game %d/%d: winner=%d moves=%d", i+1, *games, result.Winner, len(result.History))
	}

	stats, err := t.memoStats()
	if err != nil {
		log.Printf("could not read memo stats: %v", err)
	}
	avg := 0
	if *games > 0 {
		avg = moves / *games
	}
	log.Printf("done: red=%d blue=%d avg_moves=%d memo=%v", wins[1], wins[2], avg, stats)
}

func (t *trainer) playGame(ctx context.Context, size, level int) (statusResponse, error) {
	start := map[string]any{
		"settings": map[string]any{
			"board_size": size,
			"red_type":   "ai",
			"blue_type":  "ai",
			"ai_level":   level,
		},
	}
	if _, err := t.post("/api/start", start); err != nil {
		return statusResponse{}, fmt.Errorf("start: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return statusResponse{}, ctx.Err()
		case <-time.After(t.pollInterval):
		}
		status, err := t.fetchStatus()
		if err != nil {
			return statusResponse{}, err
		}
		if status.Status == "finished" {
			return status, nil
		}
	}
}

func (t *trainer) fetchStatus() (statusResponse, error) {
	var status statusResponse
	body, err := t.get("/api/status")
	if err != nil {
		return status, err
	}
	err = json.Unmarshal(body, &status)
	return status, err
}

func (t *trainer) memoStats() (memoStatsResponse, error) {
	body, err := t.get("/api/cache/memo")
	if err != nil {
		return nil, err
	}
	var stats memoStatsResponse
	err = json.Unmarshal(body, &stats)
	return stats, err
}

func (t *trainer) get(path string) ([]byte, error) {
	resp, err := t.client.Get(t.baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s: %s", path, resp.Status, body)
	}
	return body, nil
}

func (t *trainer) post(path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := t.client.Post(t.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("POST %s: %s: %s", path, resp.Status, body)
	}
	return body, nil
}
