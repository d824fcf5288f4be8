package types

// AnswerData is the payload of a successful single-shot answer.
type AnswerData struct {
	Answer       string `json:"answer"`
	Question     string `json:"question"`
	ContextCount int    `json:"context_count"`
}

// AnswerResponse is the envelope returned by the /rag endpoint.
type AnswerResponse struct {
	Status   string     `json:"status"`
	Data     AnswerData `json:"data"`
	CacheHit bool       `json:"cache_hit"`
}

// RetrieveHit is one passage returned by the /retrieve endpoint.
type RetrieveHit struct {
	ChunkID string  `json:"chunk_id"`
	Score   float32 `json:"score"`
	Content string  `json:"content"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ErrorDetail carries the machine-readable error kind and a safe message.
type ErrorDetail struct {
	Type    string       `json:"type"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}
