package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/hieuailearning/ai-legal-assistant/internal/agent"
	"github.com/hieuailearning/ai-legal-assistant/internal/cache"
	"github.com/hieuailearning/ai-legal-assistant/internal/rag"
)

const testQuestion = "Chương II điều 29 bộ luật hàng hải nói gì?"

func newTestHandler(ctrl *gomock.Controller) (*Handler, *MockAgentRunner, *MockAnswerService, *MockPassageSearcher, *MockIngester) {
	runner := NewMockAgentRunner(ctrl)
	service := NewMockAnswerService(ctrl)
	searcher := NewMockPassageSearcher(ctrl)
	ingester := NewMockIngester(ctrl)
	h := NewHandlers(runner, service, searcher, ingester, cache.New(time.Hour, 10))
	return h, runner, service, searcher, ingester
}

func marshalBody(t *testing.T, body interface{}) []byte {
	t.Helper()
	if str, ok := body.(string); ok {
		return []byte(str)
	}
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return data
}

func TestHandler_AgentHandler(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name         string
		requestBody  interface{}
		setupMocks   func(*MockAgentRunner)
		wantStatus   int
		wantContains string
	}{
		{
			name:        "defaults applied and success returned",
			requestBody: AgentReq{Question: testQuestion},
			setupMocks: func(runner *MockAgentRunner) {
				runner.EXPECT().
					Run(gomock.Any(), agent.Request{
						Question:   testQuestion,
						TopK:       agent.DefaultTopK,
						TotalSteps: agent.DefaultTotalSteps,
						TimeoutSec: agent.DefaultTimeoutSec,
					}).
					Return(agent.Response{
						Success:       true,
						StatusCode:    http.StatusOK,
						StepCompleted: 3,
						Data:          "formatted answer\nNguồn:\nĐoạn 1: ...",
						Message:       "Successfully formatted answer with citations",
					})
			},
			wantStatus:   http.StatusOK,
			wantContains: "Nguồn",
		},
		{
			name: "explicit parameters forwarded",
			requestBody: AgentReq{
				Question:   testQuestion,
				TopK:       intp(10),
				TotalSteps: intp(1),
				TimeoutSec: intp(30),
			},
			setupMocks: func(runner *MockAgentRunner) {
				runner.EXPECT().
					Run(gomock.Any(), agent.Request{
						Question:   testQuestion,
						TopK:       10,
						TotalSteps: 1,
						TimeoutSec: 30,
					}).
					Return(agent.Response{
						Success:       true,
						StatusCode:    http.StatusOK,
						StepCompleted: 1,
						Data:          []string{"passage"},
						Message:       "Successfully retrieved law passages",
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "executor status code passed through",
			requestBody: AgentReq{Question: testQuestion, TotalSteps: intp(2)},
			setupMocks: func(runner *MockAgentRunner) {
				runner.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(agent.Response{
						Success:       false,
						StatusCode:    http.StatusRequestTimeout,
						StepCompleted: 1,
						Data:          []string{"passage"},
						Message:       "Step 2 (generate answer) timed out. Returning passages from step 1.",
					})
			},
			wantStatus:   http.StatusRequestTimeout,
			wantContains: "passage",
		},
		{
			name:         "invalid JSON",
			requestBody:  "invalid json",
			setupMocks:   func(*MockAgentRunner) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "validation_error",
		},
		{
			name:         "question too short rejected before pipeline",
			requestBody:  AgentReq{Question: "ngắn"},
			setupMocks:   func(*MockAgentRunner) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "question",
		},
		{
			name:         "top_k out of range",
			requestBody:  AgentReq{Question: testQuestion, TopK: intp(50)},
			setupMocks:   func(*MockAgentRunner) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "top_k",
		},
		{
			name:         "total_steps out of range",
			requestBody:  AgentReq{Question: testQuestion, TotalSteps: intp(4)},
			setupMocks:   func(*MockAgentRunner) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "total_steps",
		},
		{
			name:         "timeout out of range",
			requestBody:  AgentReq{Question: testQuestion, TimeoutSec: intp(301)},
			setupMocks:   func(*MockAgentRunner) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "timeout_sec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, runner, _, _, _ := newTestHandler(ctrl)
			tt.setupMocks(runner)

			req := httptest.NewRequest(http.MethodPost, "/agent", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.AgentHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("AgentHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("AgentHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestHandler_AskHandler(t *testing.T) {
	tests := []struct {
		name         string
		requestBody  interface{}
		setupMocks   func(*MockAnswerService)
		wantStatus   int
		wantContains string
	}{
		{
			name:        "fresh answer",
			requestBody: AskReq{Question: testQuestion},
			setupMocks: func(service *MockAnswerService) {
				service.EXPECT().
					Answer(gomock.Any(), testQuestion).
					Return(rag.Answer{Text: "Theo chương II điều 29...", ContextCount: 5}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"cache_hit":false`,
		},
		{
			name:        "cached answer",
			requestBody: AskReq{Question: testQuestion},
			setupMocks: func(service *MockAnswerService) {
				service.EXPECT().
					Answer(gomock.Any(), testQuestion).
					Return(rag.Answer{Text: "Theo chương II điều 29...", ContextCount: 5, CacheHit: true}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"cache_hit":true`,
		},
		{
			name:        "answer whitespace trimmed",
			requestBody: AskReq{Question: testQuestion},
			setupMocks: func(service *MockAnswerService) {
				service.EXPECT().
					Answer(gomock.Any(), testQuestion).
					Return(rag.Answer{Text: "  padded answer \n", ContextCount: 1}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"answer":"padded answer"`,
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockAnswerService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:         "empty question",
			requestBody:  AskReq{Question: "   "},
			setupMocks:   func(*MockAnswerService) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "Question is required",
		},
		{
			name:        "service failure hidden behind envelope",
			requestBody: AskReq{Question: testQuestion},
			setupMocks: func(service *MockAnswerService) {
				service.EXPECT().
					Answer(gomock.Any(), testQuestion).
					Return(rag.Answer{}, errors.New("qdrant payload corrupted"))
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, service, _, _ := newTestHandler(ctrl)
			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/rag", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.AskHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("AskHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("AskHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
			if tt.wantStatus == http.StatusInternalServerError && bytes.Contains(w.Body.Bytes(), []byte("qdrant")) {
				t.Errorf("AskHandler() leaked internal error text: %s", w.Body.String())
			}
		})
	}
}

func TestHandler_RetrieveHandler(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name         string
		requestBody  interface{}
		setupMocks   func(*MockPassageSearcher)
		wantStatus   int
		wantContains string
	}{
		{
			name:        "successful retrieval",
			requestBody: RetrieveReq{Question: testQuestion, TopK: intp(2)},
			setupMocks: func(searcher *MockPassageSearcher) {
				searcher.EXPECT().
					Search(gomock.Any(), testQuestion, 2).
					Return([]rag.SearchHit{
						{ID: "12", Score: 0.91, Text: "Điều 29. Nội dung..."},
						{ID: "13", Score: 0.85, Text: "Điều 30. Nội dung..."},
					}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"chunk_id":"12"`,
		},
		{
			name:        "default top_k",
			requestBody: RetrieveReq{Question: testQuestion},
			setupMocks: func(searcher *MockPassageSearcher) {
				searcher.EXPECT().
					Search(gomock.Any(), testQuestion, agent.DefaultTopK).
					Return([]rag.SearchHit{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing question",
			requestBody: RetrieveReq{},
			setupMocks:  func(*MockPassageSearcher) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "top_k out of range",
			requestBody: RetrieveReq{Question: testQuestion, TopK: intp(0)},
			setupMocks:  func(*MockPassageSearcher) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "search failure",
			requestBody: RetrieveReq{Question: testQuestion},
			setupMocks: func(searcher *MockPassageSearcher) {
				searcher.EXPECT().
					Search(gomock.Any(), testQuestion, agent.DefaultTopK).
					Return(nil, errors.New("embedding API unavailable"))
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, _, searcher, _ := newTestHandler(ctrl)
			tt.setupMocks(searcher)

			req := httptest.NewRequest(http.MethodPost, "/retrieve", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.RetrieveHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("RetrieveHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("RetrieveHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestHandler_IngestHandler(t *testing.T) {
	tests := []struct {
		name        string
		requestBody interface{}
		setupMocks  func(*MockIngester)
		wantStatus  int
	}{
		{
			name:        "successful ingestion",
			requestBody: IngestReq{Text: "Điều 29. Nội dung...", ID: "bo-luat-hang-hai.txt"},
			setupMocks: func(ingester *MockIngester) {
				ingester.EXPECT().
					Ingest(gomock.Any(), "Điều 29. Nội dung...", "bo-luat-hang-hai.txt").
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "ingestion without ID",
			requestBody: IngestReq{Text: "test document"},
			setupMocks: func(ingester *MockIngester) {
				ingester.EXPECT().
					Ingest(gomock.Any(), "test document", "").
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockIngester) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "empty text",
			requestBody: IngestReq{Text: ""},
			setupMocks:  func(*MockIngester) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "ingestion fails",
			requestBody: IngestReq{Text: "text", ID: "doc"},
			setupMocks: func(ingester *MockIngester) {
				ingester.EXPECT().
					Ingest(gomock.Any(), "text", "doc").
					Return(errors.New("ingestion error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, _, _, ingester := newTestHandler(ctrl)
			tt.setupMocks(ingester)

			req := httptest.NewRequest(http.MethodPost, "/ingest", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.IngestHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("IngestHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Errorf("IngestHandler() invalid JSON response: %v", err)
				}
				if response["status"] != "success" {
					t.Errorf("IngestHandler() status = %q, want %q", response["status"], "success")
				}
			}
		})
	}
}

func TestHandler_CacheStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newTestHandler(ctrl)
	h.cache.Set("what is maritime law?", "answer", 3)

	req := httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	w := httptest.NewRecorder()

	h.CacheStatsHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("CacheStatsHandler() status = %d, want %d", w.Code, http.StatusOK)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("what is maritime law?")) {
		t.Errorf("CacheStatsHandler() body = %s, want cached question listed", w.Body.String())
	}
}

func TestHandler_HealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.HealthHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("HealthHandler() status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("HealthHandler() invalid JSON: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("HealthHandler() status = %q, want %q", response["status"], "healthy")
	}
}

func TestRouter_ServiceEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newTestHandler(ctrl)
	r := NewRouter(h)

	for _, path := range []string{"/", "/health", "/cache/stats", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}
