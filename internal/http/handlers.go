package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hieuailearning/ai-legal-assistant/internal/agent"
	"github.com/hieuailearning/ai-legal-assistant/internal/cache"
	"github.com/hieuailearning/ai-legal-assistant/internal/rag"
	"github.com/hieuailearning/ai-legal-assistant/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=http

// AgentRunner defines the staged pipeline behind the /agent endpoint.
type AgentRunner interface {
	Run(ctx context.Context, req agent.Request) agent.Response
}

// AnswerService defines the cached single-shot path behind the /rag endpoint.
type AnswerService interface {
	Answer(ctx context.Context, question string) (rag.Answer, error)
}

// PassageSearcher defines the scored passage search behind /retrieve.
type PassageSearcher interface {
	Search(ctx context.Context, question string, topK int) ([]rag.SearchHit, error)
}

// Ingester defines the document ingestion behind /ingest.
type Ingester interface {
	Ingest(ctx context.Context, text string, docID string) error
}

// AgentReq is the /agent request body. Optional fields are pointers so an
// absent field takes its default while an explicit out-of-range value is
// rejected.
type AgentReq struct {
	Question   string `json:"question"`
	TopK       *int   `json:"top_k"`
	TotalSteps *int   `json:"total_steps"`
	TimeoutSec *int   `json:"timeout_sec"`
}

// AskReq is the /rag request body.
type AskReq struct {
	Question string `json:"question"`
}

// RetrieveReq is the /retrieve request body.
type RetrieveReq struct {
	Question string `json:"question"`
	TopK     *int   `json:"top_k"`
}

// IngestReq is the /ingest request body.
type IngestReq struct {
	Text string `json:"text"`
	ID   string `json:"id,omitempty"`
}

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	runner   AgentRunner
	service  AnswerService
	searcher PassageSearcher
	ingester Ingester
	cache    *cache.Cache
}

// NewHandlers initializes handlers with dependencies.
func NewHandlers(runner AgentRunner, service AnswerService, searcher PassageSearcher, ingester Ingester, responseCache *cache.Cache) *Handler {
	return &Handler{
		runner:   runner,
		service:  service,
		searcher: searcher,
		ingester: ingester,
		cache:    responseCache,
	}
}

// AgentHandler runs the staged retrieve → generate → format pipeline.
// Validation failures are rejected before any step runs; everything after
// validation is encoded from the executor's response as-is.
func (h *Handler) AgentHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var body AgentReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}

	req := agent.Request{
		Question:   body.Question,
		TopK:       agent.DefaultTopK,
		TotalSteps: agent.DefaultTotalSteps,
		TimeoutSec: agent.DefaultTimeoutSec,
	}
	if body.TopK != nil {
		req.TopK = *body.TopK
	}
	if body.TotalSteps != nil {
		req.TotalSteps = *body.TotalSteps
	}
	if body.TimeoutSec != nil {
		req.TimeoutSec = *body.TimeoutSec
	}

	if fields := req.Validate(); len(fields) > 0 {
		slog.Info("Agent request rejected by validation", "fields", len(fields))
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Input data is not valid", fields)
		return
	}

	resp := h.runner.Run(r.Context(), req)
	writeJSON(w, resp.StatusCode, resp)
}

// AskHandler answers a question through the cached single-shot path.
func (h *Handler) AskHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req AskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Question is required", nil)
		return
	}

	answer, err := h.service.Answer(r.Context(), req.Question)
	if err != nil {
		slog.Error("Error answering question", "error", err, "question", req.Question)
		errorEnvelope(w, http.StatusInternalServerError, "internal_error",
			"An error occurred while processing your request", nil)
		return
	}

	writeJSON(w, http.StatusOK, types.AnswerResponse{
		Status: "success",
		Data: types.AnswerData{
			Answer:       strings.TrimSpace(answer.Text),
			Question:     req.Question,
			ContextCount: answer.ContextCount,
		},
		CacheHit: answer.CacheHit,
	})
}

// RetrieveHandler returns the scored passages for a question without
// generating an answer.
func (h *Handler) RetrieveHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req RetrieveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Question is required", nil)
		return
	}
	topK := agent.DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	if topK < agent.MinTopK || topK > agent.MaxTopK {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "top_k is out of range", nil)
		return
	}

	hits, err := h.searcher.Search(r.Context(), req.Question, topK)
	if err != nil {
		slog.Error("Error retrieving passages", "error", err, "question", req.Question)
		errorEnvelope(w, http.StatusInternalServerError, "internal_error",
			"An error occurred while processing your request", nil)
		return
	}

	result := make([]types.RetrieveHit, 0, len(hits))
	for _, hit := range hits {
		result = append(result, types.RetrieveHit{
			ChunkID: hit.ID,
			Score:   hit.Score,
			Content: hit.Text,
		})
	}
	writeJSON(w, http.StatusOK, result)
}

// IngestHandler chunks, embeds and stores a statute document.
func (h *Handler) IngestHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req IngestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Invalid request body", nil)
		return
	}
	if req.Text == "" {
		errorEnvelope(w, http.StatusBadRequest, "validation_error", "Text is required", nil)
		return
	}

	if err := h.ingester.Ingest(r.Context(), req.Text, req.ID); err != nil {
		slog.Error("Error ingesting document", "error", err, "doc_id", req.ID)
		errorEnvelope(w, http.StatusInternalServerError, "internal_error",
			"Failed to ingest document", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// CacheStatsHandler exposes a diagnostic snapshot of the response cache.
func (h *Handler) CacheStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Snapshot())
}

// HealthHandler reports liveness for deployment platforms.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "AI Legal Assistant",
	})
}

// RootHandler lists the service endpoints.
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "AI Legal Assistant",
		"status":  "running",
		"endpoints": map[string]string{
			"health":   "/health",
			"metrics":  "/metrics",
			"retrieve": "/retrieve",
			"rag":      "/rag",
			"agent":    "/agent",
			"ingest":   "/ingest",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorEnvelope(w http.ResponseWriter, status int, errType, message string, fields []types.FieldError) {
	writeJSON(w, status, types.ErrorResponse{
		Status: "error",
		Error: types.ErrorDetail{
			Type:    errType,
			Message: message,
			Fields:  fields,
		},
	})
}
