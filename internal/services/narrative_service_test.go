package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"transaction-insights/internal/llm"
	"transaction-insights/internal/llm/llm_mocks"
	"transaction-insights/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type NarrativeServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	client  *llm_mocks.MockClient
	service NarrativeServiceInterface
	ctx     context.Context
}

func TestNarrativeServiceSuite(t *testing.T) {
	suite.Run(t, new(NarrativeServiceTestSuite))
}

func (s *NarrativeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = llm_mocks.NewMockClient(s.ctrl)
	s.service = NewNarrativeService(s.client, "Naira")
	s.ctx = context.Background()
}

func (s *NarrativeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NarrativeServiceTestSuite) TestSummarizeBuildsFixedPrompt() {
	rows := []models.Row{{"total_deposits": "450000.00", "highest_deposit_category": "salary"}}

	s.client.EXPECT().Complete(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		s.Empty(req.Tools)
		s.Require().Len(req.Messages, 2)
		s.Equal(llm.SystemMessage("You are a helpful financial assistant."), req.Messages[0])

		prompt := req.Messages[1].Content
		s.Equal(llm.RoleUser, req.Messages[1].Role)
		s.Contains(prompt, "provide a concise 2-3 sentence summary addressing the user as 'you'")
		s.Contains(prompt, "The default currency is in Naira.\n")
		s.Contains(prompt, "Financial Data:\n"+narrativeSeparator+"\n")
		s.Contains(prompt, `[{"highest_deposit_category":"salary","total_deposits":"450000.00"}]`)
		s.Contains(prompt, narrativeSeparator+"\n\nPlease provide your summary.")
		return llm.ChatResponse{Content: "You received ₦450,000, mostly from your salary."}, nil
	})

	summary, err := s.service.Summarize(s.ctx, rows)
	s.NoError(err)
	s.Equal("You received ₦450,000, mostly from your salary.", summary)
}

func (s *NarrativeServiceTestSuite) TestSummarizeErrorResult() {
	s.client.EXPECT().Complete(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		s.Contains(req.Messages[1].Content, `{"error":"database error: timeout"}`)
		return llm.ChatResponse{Content: "We could not fetch your data right now."}, nil
	})

	summary, err := s.service.Summarize(s.ctx, ErrorResult(errors.New("database error: timeout")))
	s.NoError(err)
	s.NotEmpty(summary)
}

func (s *NarrativeServiceTestSuite) TestSummarizeWrapsLLMError() {
	s.client.EXPECT().Complete(s.ctx, gomock.Any()).Return(llm.ChatResponse{}, errors.New("rate limited"))

	_, err := s.service.Summarize(s.ctx, []models.Row{})
	s.EqualError(err, "narrative generation failed: rate limited")
}

func (s *NarrativeServiceTestSuite) TestRenderResultFallsBackToFormatting() {
	s.Equal("[]", renderResult([]models.Row{}))
	s.True(strings.HasPrefix(renderResult(map[string]any{"bad": func() {}}), "map[bad:"))
}
