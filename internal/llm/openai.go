package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/hieuailearning/ai-legal-assistant/internal/metrics"
)

// systemPrompt frames the model as a Vietnamese legal assistant that answers
// strictly from the supplied statute passages.
const systemPrompt = "Với vai trò là 1 trợ lý ảo pháp luật chuyên nghiệp, hãy trả lời câu hỏi dựa trên các nội dung được cung cấp.\n" +
	"Trả lời câu hỏi theo 3 trường hợp:\n" +
	"Trường hợp 1: Nếu tìm thấy nội dung thích hợp trong tài liệu, trả lời 'Theo chương ... điều ... bộ luật abc ..., nội dung'\n" +
	"Trường hợp 2: Nếu không tìm thấy nội dung thích hợp trong tài liệu, trả lời: 'Không tìm thấy thông tin liên quan đến câu hỏi.'\n" +
	"Trường hợp 3: Nếu câu hỏi linh tinh hoặc không liên quan đến pháp luật, trả lời: 'Chào bạn, tôi đã sẵn sàng trả lời với vai trò là một trợ lý ảo pháp luật. Vui lòng đặt câu hỏi lại để tôi có thể trả lời.'\n" +
	"Trả lời ngắn gọn."

const answerPromptTemplate = "Dựa trên các nội dung sau:\n{context}\nCâu hỏi: {question}\nVui lòng trả lời câu hỏi dựa trên thông tin được cung cấp ở trên."

// GenerateAnswer generates an answer for the question using the supplied
// passage context. Errors are wrapped and classifiable via IsQuotaExceeded
// and IsNetworkError.
func (c *Client) GenerateAnswer(ctx context.Context, contextText, question string) (string, error) {
	answerPrompt := strings.ReplaceAll(answerPromptTemplate, "{context}", contextText)
	answerPrompt = strings.ReplaceAll(answerPrompt, "{question}", question)

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(answerPrompt),
		},
		Temperature: param.Opt[float64]{Value: 0.2},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	metrics.LLMTokens.WithLabelValues("input").Add(float64(res.Usage.PromptTokens))
	metrics.LLMTokens.WithLabelValues("output").Add(float64(res.Usage.CompletionTokens))
	metrics.LLMTokens.WithLabelValues("total").Add(float64(res.Usage.TotalTokens))

	return res.Choices[0].Message.Content, nil
}

// GenerateEmbedding generates an embedding for the given text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfString: param.Opt[string]{Value: text},
	}
	res, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	// Convert []float64 to []float32 for Qdrant
	embedding := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}
