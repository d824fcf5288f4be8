package rag

import (
	"context"
	"log/slog"

	"github.com/hieuailearning/ai-legal-assistant/internal/cache"
	"github.com/hieuailearning/ai-legal-assistant/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=rag

// PassageRetriever defines the retrieval step of the single-shot path.
type PassageRetriever interface {
	Retrieve(ctx context.Context, question string, topK int) []string
}

// AnswerGenerator defines the generation step of the single-shot path.
type AnswerGenerator interface {
	Generate(ctx context.Context, question string, passages []string) (string, error)
}

// Answer is the outcome of a single-shot question.
type Answer struct {
	Text         string
	ContextCount int
	CacheHit     bool
}

// Service runs the cached single-shot answering path: cache check, retrieve,
// generate, cache write. The cache is injected by the caller and shared
// across requests; everything else is per-request.
type Service struct {
	retriever PassageRetriever
	answerer  AnswerGenerator
	cache     *cache.Cache
	topK      int
}

// NewService creates the single-shot answering service.
func NewService(retriever PassageRetriever, answerer AnswerGenerator, responseCache *cache.Cache, topK int) *Service {
	return &Service{
		retriever: retriever,
		answerer:  answerer,
		cache:     responseCache,
		topK:      topK,
	}
}

// Answer returns the answer for the question, serving from the response
// cache when an identical (normalized) question was answered before.
func (s *Service) Answer(ctx context.Context, question string) (Answer, error) {
	if answer, _, contextCount, ok := s.cache.Get(question); ok {
		metrics.CacheHitsTotal.Inc()
		slog.Info("Cache hit", "question", question)
		return Answer{Text: answer, ContextCount: contextCount, CacheHit: true}, nil
	}
	metrics.CacheMissesTotal.Inc()

	passages := s.retriever.Retrieve(ctx, question, s.topK)

	answer, err := s.answerer.Generate(ctx, question, passages)
	if err != nil {
		return Answer{}, err
	}

	s.cache.Set(question, answer, len(passages))
	return Answer{Text: answer, ContextCount: len(passages)}, nil
}
