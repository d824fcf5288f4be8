package rag

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// SearchHit is one scored passage returned from the vector store.
type SearchHit struct {
	ID    string
	Score float32
	Text  string
}

// QdrantClient wraps the Qdrant client with the statute-store operations the
// assistant needs.
type QdrantClient struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantClient creates a new Qdrant client
func NewQdrantClient(host string, port int, collection string) (*QdrantClient, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	qc := &QdrantClient{
		client:     client,
		collection: collection,
	}

	return qc, nil
}

// EnsureCollection ensures the collection exists with the correct configuration
func (qc *QdrantClient) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	// Check if collection exists by trying to get it
	_, err := qc.client.GetCollectionInfo(ctx, qc.collection)
	if err == nil {
		return nil // Collection exists
	}

	// Create collection if it doesn't exist
	err = qc.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: qc.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// UpsertPoints upserts statute chunks into the collection
func (qc *QdrantClient) UpsertPoints(ctx context.Context, pointsToUpsert []*qdrant.PointStruct) error {
	_, err := qc.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: qc.collection,
		Points:         pointsToUpsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// Search returns the passages most similar to the query vector, ordered by
// relevance rank.
func (qc *QdrantClient) Search(ctx context.Context, vector []float32, limit uint64) ([]SearchHit, error) {
	searchResult, err := qc.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: qc.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	hits := make([]SearchHit, 0, len(searchResult))
	for _, result := range searchResult {
		if result.Payload == nil {
			continue
		}
		textValue, ok := result.Payload["text"]
		if !ok || textValue == nil || textValue.GetStringValue() == "" {
			continue
		}
		hits = append(hits, SearchHit{
			ID:    pointIDString(result.Id),
			Score: result.Score,
			Text:  textValue.GetStringValue(),
		})
	}

	return hits, nil
}

func pointIDString(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if uuid := id.GetUuid(); uuid != "" {
		return uuid
	}
	return strconv.FormatUint(id.GetNum(), 10)
}
