package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// Posts every statute .txt file in a directory to the server's /ingest
// endpoint.
func main() {
	serverURL := flag.String("server-url", "http://localhost:8080", "Base URL of the running server")
	lawsDir := flag.String("laws-dir", "testdata/laws", "Directory containing statute .txt files")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*lawsDir, "*.txt"))
	if err != nil {
		slog.Error("Failed to read laws directory", "dir", *lawsDir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		slog.Error("No .txt files found", "dir", *lawsDir)
		os.Exit(1)
	}

	failed := 0
	for _, file := range files {
		if err := ingestFile(*serverURL, file); err != nil {
			slog.Error("Failed to ingest file", "file", file, "error", err)
			failed++
			continue
		}
		slog.Info("Successfully ingested file", "file", file)
	}

	if failed > 0 {
		slog.Error("Ingestion finished with failures", "failed", failed, "total", len(files))
		os.Exit(1)
	}
	slog.Info("Ingestion complete!", "total", len(files))
}

func ingestFile(serverURL, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	reqBody := map[string]any{
		"text": string(content),
		"id":   filepath.Base(file),
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := http.Post(serverURL+"/ingest", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}
