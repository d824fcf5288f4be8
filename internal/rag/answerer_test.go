package rag

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quotaErr() error {
	return &openai.Error{StatusCode: http.StatusTooManyRequests}
}

func networkErr() error {
	return &url.Error{Op: "Post", URL: "https://api.openai.com/v1/chat/completions", Err: errors.New("connection reset by peer")}
}

func TestAnswerer_Generate(t *testing.T) {
	question := "Chương II điều 29 bộ luật hàng hải nói gì?"
	passages := []string{"Điều 29. Nội dung...", "Điều 30. Nội dung..."}
	contextText := BuildContext(passages)

	tests := []struct {
		name       string
		passages   []string
		setupMocks func(*MockCompletionClient)
		want       string
		wantErr    bool
	}{
		{
			name:     "successful generation",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				client.EXPECT().
					GenerateAnswer(gomock.Any(), contextText, question).
					Return("Theo chương II điều 29...", nil)
			},
			want: "Theo chương II điều 29...",
		},
		{
			name:       "empty passages short-circuit",
			passages:   []string{},
			setupMocks: func(*MockCompletionClient) {},
			want:       AnswerNoContext,
		},
		{
			name:     "quota exceeded degrades without retry",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				client.EXPECT().
					GenerateAnswer(gomock.Any(), contextText, question).
					Return("", quotaErr())
			},
			want: AnswerQuota,
		},
		{
			name:     "call timeout degrades without retry",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				client.EXPECT().
					GenerateAnswer(gomock.Any(), contextText, question).
					Return("", context.DeadlineExceeded)
			},
			want: AnswerBusy,
		},
		{
			name:     "network error retried once then succeeds",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				gomock.InOrder(
					client.EXPECT().
						GenerateAnswer(gomock.Any(), contextText, question).
						Return("", networkErr()),
					client.EXPECT().
						GenerateAnswer(gomock.Any(), contextText, question).
						Return("Theo chương II điều 29...", nil),
				)
			},
			want: "Theo chương II điều 29...",
		},
		{
			name:     "network error retried once then degrades",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				gomock.InOrder(
					client.EXPECT().
						GenerateAnswer(gomock.Any(), contextText, question).
						Return("", networkErr()),
					client.EXPECT().
						GenerateAnswer(gomock.Any(), contextText, question).
						Return("", networkErr()),
				)
			},
			want: AnswerNetwork,
		},
		{
			name:     "quota on retry degrades to quota answer",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				gomock.InOrder(
					client.EXPECT().
						GenerateAnswer(gomock.Any(), contextText, question).
						Return("", networkErr()),
					client.EXPECT().
						GenerateAnswer(gomock.Any(), contextText, question).
						Return("", quotaErr()),
				)
			},
			want: AnswerQuota,
		},
		{
			name:     "unexpected error propagates",
			passages: passages,
			setupMocks: func(client *MockCompletionClient) {
				client.EXPECT().
					GenerateAnswer(gomock.Any(), contextText, question).
					Return("", errors.New("no choices in response"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := NewMockCompletionClient(ctrl)
			tt.setupMocks(client)

			a := NewAnswerer(client)
			got, err := a.Generate(context.Background(), question, tt.passages)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildContext(t *testing.T) {
	got := BuildContext([]string{"first passage", "second passage"})
	assert.Equal(t, "Đoạn 1: first passage\nĐoạn 2: second passage\n", got)
}
