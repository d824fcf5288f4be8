package rag

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/qdrant/go-client/qdrant"
)

//go:generate mockgen -source=ingest.go -destination=mock_ingest.go -package=rag

// TextChunker defines the interface for text chunking operations
type TextChunker interface {
	ChunkText(text string) []string
}

// VectorUpserter defines the vector-store operations ingestion depends on.
type VectorUpserter interface {
	EnsureCollection(ctx context.Context, vectorSize uint64) error
	UpsertPoints(ctx context.Context, pointsToUpsert []*qdrant.PointStruct) error
}

// Ingestor chunks statute documents, embeds the chunks and stores them in
// the vector database.
type Ingestor struct {
	chunker  TextChunker
	embedder EmbeddingClient
	store    VectorUpserter
}

// NewIngestor creates an ingestor and ensures the target collection exists.
// text-embedding-3-large produces 3072-dimensional vectors.
func NewIngestor(ctx context.Context, chunker TextChunker, embedder EmbeddingClient, store VectorUpserter) (*Ingestor, error) {
	if err := store.EnsureCollection(ctx, 3072); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	return &Ingestor{
		chunker:  chunker,
		embedder: embedder,
		store:    store,
	}, nil
}

// Ingest chunks the document, embeds each chunk and upserts the points.
func (in *Ingestor) Ingest(ctx context.Context, text string, docID string) error {
	chunks := in.chunker.ChunkText(text)
	if len(chunks) == 0 {
		return fmt.Errorf("no chunks created from text")
	}

	pointsToUpsert := make([]*qdrant.PointStruct, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := in.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to generate embedding for chunk %d: %w", i, err)
		}

		// Ids derived from (doc_id, chunk index) keep re-ingestion of the
		// same document idempotent; anonymous documents fall back to
		// timestamp-derived ids.
		var pointID uint64
		if docID != "" {
			h := fnv.New64a()
			fmt.Fprintf(h, "%s:%d", docID, i)
			pointID = h.Sum64()
		} else {
			pointID = uint64(time.Now().UnixNano()) + uint64(i)
		}

		pointsToUpsert = append(pointsToUpsert, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(pointID),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":        chunk,
				"doc_id":      docID,
				"chunk_index": int64(i),
			}),
		})
	}

	if err := in.store.UpsertPoints(ctx, pointsToUpsert); err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}
