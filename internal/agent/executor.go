package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

//go:generate mockgen -source=executor.go -destination=mock_collaborators.go -package=agent

// Retriever defines the step-1 collaborator. It never fails outward; an
// upstream failure surfaces as an empty passage list.
type Retriever interface {
	Retrieve(ctx context.Context, question string, topK int) []string
}

// Answerer defines the step-2 collaborator. Transient upstream failures are
// absorbed into degraded answer text; only unexpected failures return an
// error.
type Answerer interface {
	Generate(ctx context.Context, question string, passages []string) (string, error)
}

// Formatter defines the step-3 collaborator.
type Formatter interface {
	Format(answer string, passages []string) string
}

// Executor drives the staged retrieve → generate → format pipeline. Steps
// run strictly in order, each under a fresh deadline; on failure the
// response carries the most complete partial result available instead of an
// opaque error. The executor itself never retries.
type Executor struct {
	retriever Retriever
	answerer  Answerer
	formatter Formatter
}

// NewExecutor creates a pipeline executor over the three collaborators.
func NewExecutor(retriever Retriever, answerer Answerer, formatter Formatter) *Executor {
	return &Executor{
		retriever: retriever,
		answerer:  answerer,
		formatter: formatter,
	}
}

// stepOutcome carries a collaborator result across the timeout boundary.
type stepOutcome[T any] struct {
	value T
	err   error
}

// runStep runs fn under its own deadline. On expiry the in-flight call is
// abandoned: its context is canceled, its eventual result is discarded via
// the buffered channel, and the caller proceeds immediately.
func runStep[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	stepCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan stepOutcome[T], 1)
	go func() {
		value, err := fn(stepCtx)
		ch <- stepOutcome[T]{value: value, err: err}
	}()

	select {
	case out := <-ch:
		return out.value, out.err
	case <-stepCtx.Done():
		var zero T
		return zero, stepCtx.Err()
	}
}

// Run executes up to req.TotalSteps pipeline steps and always returns a
// well-formed response. The request must already be validated.
func (e *Executor) Run(ctx context.Context, req Request) Response {
	start := time.Now()
	stepTimeout := time.Duration(req.TimeoutSec) * time.Second

	slog.Info("Starting agent request",
		"total_steps", req.TotalSteps,
		"timeout_sec", req.TimeoutSec,
		"question", req.Question,
	)

	var (
		passages      []string
		answer        string
		stepCompleted int
	)

	// Step 1: retrieve passages.
	if req.TotalSteps >= 1 {
		stepStart := time.Now()
		result, err := runStep(ctx, stepTimeout, func(ctx context.Context) ([]string, error) {
			return e.retriever.Retrieve(ctx, req.Question, req.TopK), nil
		})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				slog.Warn("Step 1 timed out", "timeout_sec", req.TimeoutSec)
				return e.failure(start, http.StatusRequestTimeout, stepCompleted, nil,
					fmt.Sprintf("Step 1 (retrieve passages) timed out after %ds", req.TimeoutSec))
			}
			return e.internalFailure(start, stepCompleted, passages, answer, err)
		}
		passages = result
		stepCompleted = 1
		slog.Info("Step 1 completed", "elapsed", time.Since(stepStart), "passages", len(passages))

		if req.TotalSteps == 1 {
			return e.success(start, stepCompleted, passages, "Successfully retrieved law passages")
		}
	}

	// Step 2: generate answer. Requires passages from step 1.
	if req.TotalSteps >= 2 {
		if len(passages) == 0 {
			slog.Warn("Cannot proceed to step 2: no passages retrieved")
			return e.failure(start, http.StatusBadRequest, stepCompleted, nil,
				"Cannot generate answer: no passages retrieved in step 1")
		}

		stepStart := time.Now()
		result, err := runStep(ctx, stepTimeout, func(ctx context.Context) (string, error) {
			return e.answerer.Generate(ctx, req.Question, passages)
		})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				slog.Warn("Step 2 timed out", "timeout_sec", req.TimeoutSec)
				return e.failure(start, http.StatusRequestTimeout, stepCompleted, passages,
					fmt.Sprintf("Step 2 (generate answer) timed out after %ds. Returning passages from step 1.", req.TimeoutSec))
			}
			return e.internalFailure(start, stepCompleted, passages, answer, err)
		}
		answer = result
		stepCompleted = 2
		slog.Info("Step 2 completed", "elapsed", time.Since(stepStart))

		if req.TotalSteps == 2 {
			return e.success(start, stepCompleted, answer, "Successfully generated answer")
		}
	}

	// Step 3: format citation. Requires passages and a non-empty answer.
	if req.TotalSteps >= 3 {
		if len(passages) == 0 || answer == "" {
			slog.Warn("Cannot proceed to step 3: missing passages or answer")
			return e.failure(start, http.StatusBadRequest, stepCompleted,
				bestPartial(stepCompleted, passages, answer),
				"Cannot format citation: missing data from previous steps")
		}

		stepStart := time.Now()
		result, err := runStep(ctx, stepTimeout, func(ctx context.Context) (string, error) {
			return e.formatter.Format(answer, passages), nil
		})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				slog.Warn("Step 3 timed out", "timeout_sec", req.TimeoutSec)
				return e.failure(start, http.StatusRequestTimeout, stepCompleted, answer,
					fmt.Sprintf("Step 3 (format citation) timed out after %ds. Returning answer from step 2.", req.TimeoutSec))
			}
			return e.internalFailure(start, stepCompleted, passages, answer, err)
		}
		stepCompleted = 3
		slog.Info("Step 3 completed", "elapsed", time.Since(stepStart))

		return e.success(start, stepCompleted, result, "Successfully formatted answer with citations")
	}

	// Unreachable for validated requests; kept as a guard so a logic error
	// still yields a well-formed response.
	slog.Error("Agent executor reached fallback return, this should not happen",
		"total_steps", req.TotalSteps, "step_completed", stepCompleted)
	return e.failure(start, http.StatusInternalServerError, stepCompleted, nil,
		"Unknown error occurred")
}

func (e *Executor) success(start time.Time, stepCompleted int, data any, message string) Response {
	elapsed := time.Since(start).Seconds()
	slog.Info("Request completed successfully", "elapsed_sec", elapsed, "step_completed", stepCompleted)
	return Response{
		Success:       true,
		StatusCode:    http.StatusOK,
		StepCompleted: stepCompleted,
		Data:          data,
		Message:       message,
		ExecutionTime: elapsed,
	}
}

func (e *Executor) failure(start time.Time, statusCode, stepCompleted int, data any, message string) Response {
	return Response{
		Success:       false,
		StatusCode:    statusCode,
		StepCompleted: stepCompleted,
		Data:          data,
		Message:       message,
		ExecutionTime: time.Since(start).Seconds(),
	}
}

// internalFailure converts an unexpected collaborator error into a 500
// response carrying the highest completed step's payload. The raw error is
// logged, never shown to the caller.
func (e *Executor) internalFailure(start time.Time, stepCompleted int, passages []string, answer string, err error) Response {
	slog.Error("Unexpected error in agent step", "step", stepCompleted+1, "error", err)
	return e.failure(start, http.StatusInternalServerError, stepCompleted,
		bestPartial(stepCompleted, passages, answer),
		"An unexpected error occurred. Returning partial results.")
}

// bestPartial picks the most complete artifact available: the answer when
// step 2 produced one, otherwise the step-1 passages, otherwise nothing.
func bestPartial(stepCompleted int, passages []string, answer string) any {
	if stepCompleted >= 2 && answer != "" {
		return answer
	}
	if stepCompleted >= 1 && len(passages) > 0 {
		return passages
	}
	return nil
}
