package rag

import (
	"context"
	"log/slog"
)

//go:generate mockgen -source=retriever.go -destination=mock_retriever.go -package=rag

// EmbeddingClient defines the embedding operation the retriever depends on.
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// VectorSearcher defines the similarity-search operation the retriever
// depends on.
type VectorSearcher interface {
	Search(ctx context.Context, vector []float32, limit uint64) ([]SearchHit, error)
}

// Retriever finds statute passages relevant to a question. Retrieve never
// fails outward: any upstream error degrades to an empty passage list.
type Retriever struct {
	embedder EmbeddingClient
	searcher VectorSearcher
}

// NewRetriever creates a retriever over the given embedding client and
// vector store.
func NewRetriever(embedder EmbeddingClient, searcher VectorSearcher) *Retriever {
	return &Retriever{
		embedder: embedder,
		searcher: searcher,
	}
}

// Retrieve returns up to topK passages ordered by relevance. Errors are
// logged and absorbed into an empty list.
func (r *Retriever) Retrieve(ctx context.Context, question string, topK int) []string {
	hits, err := r.Search(ctx, question, topK)
	if err != nil {
		slog.Warn("Passage retrieval failed, returning no passages", "error", err)
		return []string{}
	}

	passages := make([]string, 0, len(hits))
	for _, hit := range hits {
		passages = append(passages, hit.Text)
	}
	return passages
}

// Search embeds the question and queries the vector store, surfacing errors
// to the caller. The /retrieve endpoint uses this form to report scores and
// chunk ids.
func (r *Retriever) Search(ctx context.Context, question string, topK int) ([]SearchHit, error) {
	embedding, err := r.embedder.GenerateEmbedding(ctx, question)
	if err != nil {
		return nil, err
	}
	return r.searcher.Search(ctx, embedding, uint64(topK))
}
