package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"article_pipeline/internal/domain"
	"article_pipeline/internal/service/mocks"
)

type countingPolicy struct {
	waits atomic.Int32
	err   error
}

func (c *countingPolicy) Wait(context.Context) error {
	c.waits.Add(1)
	return c.err
}

type BatchTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	articles *mocks.MockArticleGenerator
	policy   *countingPolicy
	batch    *Batch
	topic    domain.Topic
}

func (s *BatchTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.articles = mocks.NewMockArticleGenerator(s.ctrl)
	s.policy = &countingPolicy{}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.batch = NewBatch(s.articles, s.policy, logger)
	s.topic = domain.Topic{ID: "topic-7", TopicInsight: domain.TopicInsight{Title: "副业"}}
}

func (s *BatchTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBatchTestSuite(t *testing.T) {
	suite.Run(t, new(BatchTestSuite))
}

func (s *BatchTestSuite) TestAngleRotation() {
	var angles []string
	s.articles.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.GenerationParameters) (*domain.GeneratedArticle, error) {
			angles = append(angles, p.UniqueAngle)
			s.Equal("topic-7", p.Topic.ID)
			return &domain.GeneratedArticle{ID: p.UniqueAngle}, nil
		}).Times(7)

	results, err := s.batch.Run(s.ctx, s.topic, domain.GenerationParameters{Length: "800-1200"}, 7, nil)
	s.Require().NoError(err)
	s.Len(results, 7)

	s.Equal(Angles[:], angles[:5])
	s.Equal(Angles[0]+"（维度 2）", angles[5])
	s.Equal(Angles[1]+"（维度 2）", angles[6])
	s.Equal(int32(6), s.policy.waits.Load(), "no wait after the last item")
}

func (s *BatchTestSuite) TestFailuresAreSkipped() {
	var calls int
	s.articles.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.GenerationParameters) (*domain.GeneratedArticle, error) {
			calls++
			if calls == 2 {
				return nil, domain.NewStageError(domain.StageDraft, errors.New("boom"))
			}
			return &domain.GeneratedArticle{ID: p.UniqueAngle}, nil
		}).Times(3)

	var progress []float64
	results, err := s.batch.Run(s.ctx, s.topic, domain.GenerationParameters{}, 3, func(done, total int, pct float64) {
		s.Equal(3, total)
		s.Equal(len(progress)+1, done)
		progress = append(progress, pct)
	})

	s.NoError(err)
	s.Len(results, 2)
	s.Equal(Angles[0], results[0].ID)
	s.Equal(Angles[2], results[1].ID)
	s.Require().Len(progress, 3)
	s.InDelta(33.33, progress[0], 0.01)
	s.InDelta(66.67, progress[1], 0.01)
	s.Equal(100.0, progress[2])
}

func (s *BatchTestSuite) TestPacingErrorStopsBatch() {
	s.policy.err = context.Canceled
	s.articles.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&domain.GeneratedArticle{ID: "a"}, nil).Times(1)

	results, err := s.batch.Run(s.ctx, s.topic, domain.GenerationParameters{}, 4, nil)
	s.ErrorIs(err, context.Canceled)
	s.Len(results, 1)
}

func (s *BatchTestSuite) TestParamsAreNotShared() {
	params := domain.GenerationParameters{
		ReferenceArticles: []domain.ReferenceArticle{{Title: "ref"}},
	}
	s.articles.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.GenerationParameters) (*domain.GeneratedArticle, error) {
			p.ReferenceArticles[0].Title = "mutated"
			return &domain.GeneratedArticle{}, nil
		}).Times(2)

	_, err := s.batch.Run(s.ctx, s.topic, params, 2, nil)
	s.NoError(err)
	s.Equal("ref", params.ReferenceArticles[0].Title)
	s.Empty(params.UniqueAngle)
}

func (s *BatchTestSuite) TestNegativeCountIsRejected() {
	s.articles.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

	var calls int
	results, err := s.batch.Run(s.ctx, s.topic, domain.GenerationParameters{}, -1, func(int, int, float64) { calls++ })
	s.Require().ErrorIs(err, ErrInvalidCount)
	s.Nil(results)
	s.Zero(calls)
	s.Zero(s.policy.waits.Load())
}

func (s *BatchTestSuite) TestZeroCountReturnsEmpty() {
	results, err := s.batch.Run(s.ctx, s.topic, domain.GenerationParameters{}, 0, nil)
	s.Require().NoError(err)
	s.Empty(results)
	s.Zero(s.policy.waits.Load())
}

func (s *BatchTestSuite) TestAngleFor() {
	s.Equal(Angles[4], AngleFor(4))
	s.Equal(Angles[0]+"（维度 3）", AngleFor(10))
}
