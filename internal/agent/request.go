package agent

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hieuailearning/ai-legal-assistant/internal/types"
)

// Request bounds for the staged pipeline.
const (
	MinQuestionLen = 10
	MaxQuestionLen = 1000
	MinTopK        = 1
	MaxTopK        = 20
	MinTotalSteps  = 1
	MaxTotalSteps  = 3
	MinTimeoutSec  = 5
	MaxTimeoutSec  = 300

	DefaultTopK       = 5
	DefaultTotalSteps = 3
	DefaultTimeoutSec = 20
)

// Request describes one staged pipeline run.
type Request struct {
	Question   string
	TopK       int
	TotalSteps int
	TimeoutSec int
}

// Validate normalizes the question (trimming surrounding whitespace) and
// returns one entry per invalid field. A nil result means the request may
// run.
func (r *Request) Validate() []types.FieldError {
	var fields []types.FieldError

	r.Question = strings.TrimSpace(r.Question)
	if r.Question == "" {
		fields = append(fields, types.FieldError{
			Field: "question",
			Error: "question cannot be empty or only whitespace",
		})
	} else if n := utf8.RuneCountInString(r.Question); n < MinQuestionLen || n > MaxQuestionLen {
		fields = append(fields, types.FieldError{
			Field: "question",
			Error: fmt.Sprintf("question must be between %d and %d characters", MinQuestionLen, MaxQuestionLen),
		})
	}

	if r.TopK < MinTopK || r.TopK > MaxTopK {
		fields = append(fields, types.FieldError{
			Field: "top_k",
			Error: fmt.Sprintf("top_k must be between %d and %d", MinTopK, MaxTopK),
		})
	}

	if r.TotalSteps < MinTotalSteps || r.TotalSteps > MaxTotalSteps {
		fields = append(fields, types.FieldError{
			Field: "total_steps",
			Error: fmt.Sprintf("total_steps must be between %d and %d", MinTotalSteps, MaxTotalSteps),
		})
	}

	if r.TimeoutSec < MinTimeoutSec || r.TimeoutSec > MaxTimeoutSec {
		fields = append(fields, types.FieldError{
			Field: "timeout_sec",
			Error: fmt.Sprintf("timeout_sec must be between %d and %d seconds", MinTimeoutSec, MaxTimeoutSec),
		})
	}

	return fields
}

// Response is the envelope returned by the staged pipeline: the best
// available result plus how far the pipeline got.
type Response struct {
	Success       bool    `json:"success"`
	StatusCode    int     `json:"status_code"`
	StepCompleted int     `json:"step_completed"`
	Data          any     `json:"data"`
	Message       string  `json:"message"`
	ExecutionTime float64 `json:"execution_time"`
}
