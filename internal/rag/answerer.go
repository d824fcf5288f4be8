package rag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hieuailearning/ai-legal-assistant/internal/llm"
)

//go:generate mockgen -source=answerer.go -destination=mock_answerer.go -package=rag

// CompletionClient defines the answer-generation operation the answerer
// depends on.
type CompletionClient interface {
	GenerateAnswer(ctx context.Context, contextText, question string) (string, error)
}

// Localized answers returned when the LLM call degrades.
const (
	AnswerNoContext = "Không tìm thấy thông tin liên quan để trả lời câu hỏi của bạn."
	AnswerBusy      = "Hệ thống đang bận, vui lòng thử lại sau."
	AnswerQuota     = "Hệ thống đã vượt quá giới hạn sử dụng API hôm nay. Vui lòng thử lại vào ngày mai hoặc liên hệ quản trị viên để nâng cấp."
	AnswerNetwork   = "Lỗi mạng, vui lòng thử lại sau."
)

const (
	defaultCallTimeout  = 60 * time.Second
	defaultRetryTimeout = 15 * time.Second
)

// Answerer produces a free-text answer from a question and retrieved
// passages. Transient LLM failures (its own call timeout, quota exhaustion,
// network errors) are absorbed into localized degraded answers; only
// unexpected failures are returned as errors. Network errors get exactly one
// retry with a shorter timeout; quota and timeout failures are deterministic
// for the remainder of the window and are not retried.
type Answerer struct {
	client       CompletionClient
	callTimeout  time.Duration
	retryTimeout time.Duration
}

// NewAnswerer creates an answerer over the given completion client.
func NewAnswerer(client CompletionClient) *Answerer {
	return &Answerer{
		client:       client,
		callTimeout:  defaultCallTimeout,
		retryTimeout: defaultRetryTimeout,
	}
}

// Generate answers the question from the passages. An empty passage list
// short-circuits to a localized "no relevant information" answer without
// calling the LLM.
func (a *Answerer) Generate(ctx context.Context, question string, passages []string) (string, error) {
	if len(passages) == 0 {
		return AnswerNoContext, nil
	}

	contextText := BuildContext(passages)

	callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()

	answer, err := a.client.GenerateAnswer(callCtx, contextText, question)
	if err == nil {
		return answer, nil
	}

	switch {
	case llm.IsQuotaExceeded(err):
		slog.Warn("LLM quota exceeded", "error", err)
		return AnswerQuota, nil
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("LLM call timed out", "error", err)
		return AnswerBusy, nil
	case llm.IsNetworkError(err):
		slog.Info("Network error calling LLM, retrying once", "error", err)
		return a.retry(ctx, contextText, question)
	default:
		return "", err
	}
}

// retry performs the single bounded retry for transient network failures.
func (a *Answerer) retry(ctx context.Context, contextText, question string) (string, error) {
	retryCtx, cancel := context.WithTimeout(ctx, a.retryTimeout)
	defer cancel()

	answer, err := a.client.GenerateAnswer(retryCtx, contextText, question)
	if err == nil {
		return answer, nil
	}

	switch {
	case llm.IsQuotaExceeded(err):
		slog.Warn("LLM quota exceeded on retry", "error", err)
		return AnswerQuota, nil
	case errors.Is(err, context.DeadlineExceeded):
		return AnswerBusy, nil
	case llm.IsNetworkError(err):
		slog.Warn("Retry failed", "error", err)
		return AnswerNetwork, nil
	default:
		return "", err
	}
}

// BuildContext renders passages as the numbered context block fed to the
// LLM prompt.
func BuildContext(passages []string) string {
	var b strings.Builder
	for i, passage := range passages {
		fmt.Fprintf(&b, "Đoạn %d: %s\n", i+1, passage)
	}
	return b.String()
}
