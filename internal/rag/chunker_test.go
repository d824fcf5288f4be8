package rag

import (
	"strings"
	"testing"
)

func TestChunker_ChunkText(t *testing.T) {
	tests := []struct {
		name         string
		chunkSize    int
		chunkOverlap int
		text         string
		want         []string
	}{
		{
			name:         "empty text",
			chunkSize:    100,
			chunkOverlap: 20,
			text:         "",
			want:         []string{},
		},
		{
			name:         "text smaller than chunk size",
			chunkSize:    100,
			chunkOverlap: 20,
			text:         "Điều 1. Phạm vi điều chỉnh",
			want:         []string{"Điều 1. Phạm vi điều chỉnh"},
		},
		{
			name:         "split on word boundaries without overlap",
			chunkSize:    10,
			chunkOverlap: 0,
			text:         "one two three four five six",
			want:         []string{"one two", "three", "four five", "six"},
		},
		{
			name:         "single word larger than chunk size kept whole",
			chunkSize:    5,
			chunkOverlap: 2,
			text:         "verylongword",
			want:         []string{"verylongword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(tt.chunkSize, tt.chunkOverlap)
			got := c.ChunkText(tt.text)

			if len(got) != len(tt.want) {
				t.Fatalf("ChunkText() returned %d chunks, want %d. Got: %v", len(got), len(tt.want), got)
			}
			for i, chunk := range got {
				if chunk != tt.want[i] {
					t.Errorf("ChunkText() chunk[%d] = %q, want %q", i, chunk, tt.want[i])
				}
			}
		})
	}
}

func TestChunker_ChunkTextOverlap(t *testing.T) {
	c := NewChunker(20, 2)
	got := c.ChunkText(strings.Repeat("word ", 20))

	if len(got) < 2 {
		t.Fatalf("ChunkText() returned %d chunks, want at least 2", len(got))
	}

	// Every chunk after the first must start with the tail of its
	// predecessor, so an article straddling a boundary survives whole in at
	// least one chunk.
	for i := 1; i < len(got); i++ {
		prev := strings.Fields(got[i-1])
		curr := strings.Fields(got[i])
		tail := strings.Join(prev[len(prev)-2:], " ")
		head := strings.Join(curr[:2], " ")
		if tail != head {
			t.Errorf("chunk[%d] does not start with the overlap of chunk[%d]: %q vs %q", i, i-1, head, tail)
		}
	}
}

func TestChunker_getOverlapWords(t *testing.T) {
	tests := []struct {
		name         string
		chunkOverlap int
		words        []string
		want         []string
	}{
		{
			name:         "no overlap",
			chunkOverlap: 0,
			words:        []string{"one", "two", "three"},
			want:         []string{},
		},
		{
			name:         "overlap smaller than words",
			chunkOverlap: 2,
			words:        []string{"one", "two", "three", "four", "five"},
			want:         []string{"four", "five"},
		},
		{
			name:         "overlap larger than words clamps to all words",
			chunkOverlap: 10,
			words:        []string{"one", "two", "three"},
			want:         []string{"one", "two", "three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(100, tt.chunkOverlap)
			got := c.getOverlapWords(tt.words)

			if len(got) != len(tt.want) {
				t.Fatalf("getOverlapWords() = %v, want %v", got, tt.want)
			}
			for i, word := range got {
				if word != tt.want[i] {
					t.Errorf("getOverlapWords()[%d] = %q, want %q", i, word, tt.want[i])
				}
			}
		})
	}
}

func TestChunker_calculateSize(t *testing.T) {
	c := NewChunker(100, 20)

	if got := c.calculateSize([]string{}); got != 0 {
		t.Errorf("calculateSize(empty) = %d, want 0", got)
	}
	// "one two three" including the two joining spaces.
	if got := c.calculateSize([]string{"one", "two", "three"}); got != 13 {
		t.Errorf("calculateSize() = %d, want 13", got)
	}
}
