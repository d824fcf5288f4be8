package rag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieuailearning/ai-legal-assistant/internal/cache"
)

func TestService_AnswerMissThenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	question := "Chương II điều 29 bộ luật hàng hải nói gì?"
	passages := []string{"Điều 29. Nội dung...", "Điều 30. Nội dung..."}

	retriever := NewMockPassageRetriever(ctrl)
	answerer := NewMockAnswerGenerator(ctrl)
	// The collaborators run exactly once; the second call is served from
	// cache.
	retriever.EXPECT().Retrieve(gomock.Any(), question, 5).Return(passages)
	answerer.EXPECT().Generate(gomock.Any(), question, passages).
		Return("Theo chương II điều 29...", nil)

	s := NewService(retriever, answerer, cache.New(time.Hour, 10), 5)

	first, err := s.Answer(context.Background(), question)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.Equal(t, "Theo chương II điều 29...", first.Text)
	assert.Equal(t, 2, first.ContextCount)

	second, err := s.Answer(context.Background(), question)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.ContextCount, second.ContextCount)
}

func TestService_AnswerNormalizedQuestionHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	retriever := NewMockPassageRetriever(ctrl)
	answerer := NewMockAnswerGenerator(ctrl)
	retriever.EXPECT().Retrieve(gomock.Any(), "What is maritime law?", 5).Return([]string{"p"})
	answerer.EXPECT().Generate(gomock.Any(), "What is maritime law?", []string{"p"}).
		Return("answer", nil)

	s := NewService(retriever, answerer, cache.New(time.Hour, 10), 5)

	_, err := s.Answer(context.Background(), "What is maritime law?")
	require.NoError(t, err)

	hit, err := s.Answer(context.Background(), "  WHAT IS MARITIME LAW?  ")
	require.NoError(t, err)
	assert.True(t, hit.CacheHit)
	assert.Equal(t, "answer", hit.Text)
}

func TestService_AnswerNoPassagesStillCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	retriever := NewMockPassageRetriever(ctrl)
	answerer := NewMockAnswerGenerator(ctrl)
	retriever.EXPECT().Retrieve(gomock.Any(), "unanswerable question here", 5).Return([]string{})
	answerer.EXPECT().Generate(gomock.Any(), "unanswerable question here", []string{}).
		Return(AnswerNoContext, nil)

	s := NewService(retriever, answerer, cache.New(time.Hour, 10), 5)

	got, err := s.Answer(context.Background(), "unanswerable question here")
	require.NoError(t, err)
	assert.Equal(t, AnswerNoContext, got.Text)
	assert.Equal(t, 0, got.ContextCount)

	hit, err := s.Answer(context.Background(), "unanswerable question here")
	require.NoError(t, err)
	assert.True(t, hit.CacheHit)
}

func TestService_AnswerErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	retriever := NewMockPassageRetriever(ctrl)
	answerer := NewMockAnswerGenerator(ctrl)
	retriever.EXPECT().Retrieve(gomock.Any(), "failing question here?", 5).
		Return([]string{"p"}).Times(2)
	gomock.InOrder(
		answerer.EXPECT().Generate(gomock.Any(), "failing question here?", []string{"p"}).
			Return("", errors.New("boom")),
		answerer.EXPECT().Generate(gomock.Any(), "failing question here?", []string{"p"}).
			Return("recovered", nil),
	)

	s := NewService(retriever, answerer, cache.New(time.Hour, 10), 5)

	_, err := s.Answer(context.Background(), "failing question here?")
	require.Error(t, err)

	// The failure left no entry behind, so the next call runs the full path.
	got, err := s.Answer(context.Background(), "failing question here?")
	require.NoError(t, err)
	assert.False(t, got.CacheHit)
	assert.Equal(t, "recovered", got.Text)
}
