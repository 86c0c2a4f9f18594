package episode_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/afiaWhiteprints/esosa/internal/ai"
	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/episode"
	"github.com/afiaWhiteprints/esosa/internal/episode/mocks"
)

type GeneratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	generator  *mocks.MockContentGenerator
	researcher *mocks.MockResearcher
	store      *mocks.MockStore
	tx         *mocks.MockTransactionManager
	publisher  *mocks.MockPublisher
	svc        *episode.Generator
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.generator = mocks.NewMockContentGenerator(s.ctrl)
	s.researcher = mocks.NewMockResearcher(s.ctrl)
	s.store = mocks.NewMockStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.svc = episode.NewGenerator(
		s.generator,
		s.researcher,
		s.store,
		s.tx,
		s.publisher,
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
	)
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func promptContaining(substr string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		prompt, ok := x.(string)
		return ok && strings.Contains(prompt, substr)
	})
}

// runTransaction makes the transaction mock execute the callback so the
// store expectations inside it are exercised.
func (s *GeneratorTestSuite) runTransaction() {
	s.tx.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *GeneratorTestSuite) expectPrompts() {
	s.generator.EXPECT().Prompts().Return(ai.DefaultPrompts()).AnyTimes()
}

func (s *GeneratorTestSuite) TestExplicitTopicProducesFullBundle() {
	s.expectPrompts()

	outline := domain.EpisodeOutline{
		Title: "Bootstrapping a podcast studio",
		Segments: []domain.OutlineSegment{
			{Name: "intro", DurationMinutes: 3},
			{Name: "deep dive", DurationMinutes: 35, TalkingPoints: []string{"costs", "gear"}},
			{Name: "outro", DurationMinutes: 2},
		},
	}
	s.generator.EXPECT().
		GenerateOutline(gomock.Any(), domain.TopicSuggestion{Title: "Bootstrapping a podcast studio"}, 45, "energetic", "indie creators").
		Return(outline, nil)
	s.generator.EXPECT().
		GenerateTalkingPoints(gomock.Any(), gomock.Any(), 10).
		Return([]string{"point one", "point two"}, nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("script_sections"), gomock.Any()).
		Return(`{"episode_title": "Bootstrapping a podcast studio", "script_sections": [{"section_name": "intro", "script": "welcome"}]}`, nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("INTRO:"), gomock.Any()).
		Return("INTRO: hey there. OUTRO: thanks for listening.", nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("show notes"), gomock.Any()).
		Return("notes text", nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("social media copy"), gomock.Any()).
		Return("tweet text", nil)

	s.runTransaction()
	s.store.EXPECT().
		SaveEpisode(gomock.Any(), gomock.Any(), episode.SessionTypeEpisode).
		Return(int64(7), nil)
	s.store.EXPECT().
		AddTopicToHistory(gomock.Any(), "Bootstrapping a podcast studio", gomock.Any()).
		Return(nil).
		Times(1)

	content, err := s.svc.GenerateEpisode(context.Background(), episode.Request{
		Topic:           "Bootstrapping a podcast studio",
		DurationMinutes: 45,
		HostStyle:       "energetic",
		TargetAudience:  "indie creators",
	})

	s.Require().NoError(err)
	s.Equal("Bootstrapping a podcast studio", content.Topic)
	s.Equal([]string{"point one", "point two"}, content.TalkingPoints)
	s.Empty(content.Script.Err)
	s.Require().Len(content.Script.Sections, 1)
	s.Equal("welcome", content.Script.Sections[0].Script)
	s.Contains(content.IntroOutro, "INTRO:")
	s.Equal("notes text", content.ShowNotes)
	s.Equal("tweet text", content.SocialContent)
}

func (s *GeneratorTestSuite) TestTopicComesFromResearch() {
	s.expectPrompts()

	relevance := 9.0
	record := &domain.SessionRecord{
		RankedTopics: []domain.TopicSuggestion{
			{Title: "Creator burnout is peaking", RelevanceScore: &relevance, UnifiedScore: 8.2},
			{Title: "Second place topic"},
		},
	}
	s.researcher.EXPECT().
		Research(gomock.Any(), gomock.Any()).
		Return(record, nil)

	s.generator.EXPECT().
		GenerateOutline(gomock.Any(), record.RankedTopics[0], 30, "conversational", gomock.Any()).
		Return(domain.EpisodeOutline{Title: "Creator burnout is peaking"}, nil)
	s.generator.EXPECT().
		GenerateTalkingPoints(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"a point"}, nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("text", nil).
		Times(4)

	s.runTransaction()
	s.store.EXPECT().
		SaveEpisode(gomock.Any(), gomock.Any(), episode.SessionTypeEpisode).
		Return(int64(1), nil)
	s.store.EXPECT().
		AddTopicToHistory(gomock.Any(), "Creator burnout is peaking", gomock.Any()).
		Return(nil).
		Times(1)

	content, err := s.svc.GenerateEpisode(context.Background(), episode.Request{
		Research: &domain.ResearchRequest{Niche: "creator economy", Keywords: []string{"burnout"}},
	})

	s.Require().NoError(err)
	s.Equal("Creator burnout is peaking", content.Topic)
	s.Equal(30, content.DurationMinutes)
}

func (s *GeneratorTestSuite) TestResearchWithoutTopicsFails() {
	s.researcher.EXPECT().
		Research(gomock.Any(), gomock.Any()).
		Return(&domain.SessionRecord{}, nil)

	_, err := s.svc.GenerateEpisode(context.Background(), episode.Request{
		Research: &domain.ResearchRequest{Niche: "creator economy"},
	})

	s.Require().Error(err)
	s.Contains(err.Error(), "no usable topics")
}

func (s *GeneratorTestSuite) TestNoTopicAndNoResearchFails() {
	_, err := s.svc.GenerateEpisode(context.Background(), episode.Request{})
	s.Require().Error(err)
}

func (s *GeneratorTestSuite) TestOutlineFailureAborts() {
	s.generator.EXPECT().
		GenerateOutline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.EpisodeOutline{}, errors.New("backend down"))

	_, err := s.svc.GenerateEpisode(context.Background(), episode.Request{Topic: "anything"})

	s.Require().Error(err)
	s.Contains(err.Error(), "generate outline")
}

func (s *GeneratorTestSuite) TestLaterStepsDegradeWithoutFailing() {
	s.expectPrompts()

	s.generator.EXPECT().
		GenerateOutline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.EpisodeOutline{Title: "Resilient episode"}, nil)
	s.generator.EXPECT().
		GenerateTalkingPoints(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limited"))
	s.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("rate limited")).
		Times(4)

	s.runTransaction()
	s.store.EXPECT().
		SaveEpisode(gomock.Any(), gomock.Any(), episode.SessionTypeEpisode).
		Return(int64(3), nil)
	s.store.EXPECT().
		AddTopicToHistory(gomock.Any(), "Resilient episode", gomock.Any()).
		Return(nil)

	content, err := s.svc.GenerateEpisode(context.Background(), episode.Request{Topic: "Resilient episode"})

	s.Require().NoError(err)
	s.Empty(content.TalkingPoints)
	s.Contains(content.Script.Err, "generation failed")
	s.Empty(content.IntroOutro)
	s.Empty(content.ShowNotes)
	s.Empty(content.SocialContent)
}

func (s *GeneratorTestSuite) TestPersistFailureFailsTheOperation() {
	s.expectPrompts()

	s.generator.EXPECT().
		GenerateOutline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.EpisodeOutline{Title: "Lost episode"}, nil)
	s.generator.EXPECT().
		GenerateTalkingPoints(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"p"}, nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("text", nil).
		Times(4)

	s.tx.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := s.svc.GenerateEpisode(context.Background(), episode.Request{Topic: "Lost episode"})

	s.Require().Error(err)
	s.Contains(err.Error(), "persist episode")
}

func (s *GeneratorTestSuite) TestPublishesWhenRequested() {
	s.expectPrompts()

	s.generator.EXPECT().
		GenerateOutline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.EpisodeOutline{Title: "Published episode"}, nil)
	s.generator.EXPECT().
		GenerateTalkingPoints(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"p"}, nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("text", nil).
		Times(4)

	s.runTransaction()
	s.store.EXPECT().
		SaveEpisode(gomock.Any(), gomock.Any(), episode.SessionTypeEpisode).
		Return(int64(42), nil)
	s.store.EXPECT().
		AddTopicToHistory(gomock.Any(), "Published episode", gomock.Any()).
		Return(nil)
	s.publisher.EXPECT().
		EpisodeGenerated(gomock.Any(), int64(42), gomock.Any()).
		Return(nil)

	_, err := s.svc.GenerateEpisode(context.Background(), episode.Request{
		Topic:   "Published episode",
		Publish: true,
	})
	s.Require().NoError(err)
}

func (s *GeneratorTestSuite) TestPrepareInterviewBuildsQuestionsAndResearch() {
	s.expectPrompts()

	guest := domain.GuestInfo{Name: "Ada Umeh", Expertise: "audio engineering"}
	record := &domain.SessionRecord{SearchKeywords: []string{"audio"}}

	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("interview questions"), gomock.Any()).
		Return(`["What got you into audio?", "What do beginners get wrong?"]`, nil)
	s.researcher.EXPECT().
		Research(gomock.Any(), gomock.Any()).
		Return(record, nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("INTRO:"), gomock.Any()).
		Return("INTRO: welcome Ada.", nil)
	s.generator.EXPECT().
		Generate(gomock.Any(), promptContaining("preparation notes"), gomock.Any()).
		Return("- listen to her latest mix\n- avoid label disputes", nil)
	s.store.EXPECT().
		SaveInterviewPrep(gomock.Any(), gomock.Any()).
		Return(int64(9), nil)

	prep, err := s.svc.PrepareInterview(context.Background(), guest, "studio acoustics", 40,
		&domain.ResearchRequest{Niche: "audio", Keywords: []string{"audio"}})

	s.Require().NoError(err)
	s.Equal(guest, prep.Guest)
	s.Equal("studio acoustics", prep.Topic)
	s.Equal(40, prep.LengthMinutes)
	s.Equal([]string{"What got you into audio?", "What do beginners get wrong?"}, prep.Questions)
	s.Same(record, prep.BackgroundResearch)
	s.Equal([]string{"listen to her latest mix", "avoid label disputes"}, prep.PrepNotes)
}

func (s *GeneratorTestSuite) TestPrepareInterviewRequiresGuestName() {
	_, err := s.svc.PrepareInterview(context.Background(), domain.GuestInfo{}, "anything", 30, nil)
	s.Require().Error(err)
}

func (s *GeneratorTestSuite) TestPrepareInterviewFallsBackToExpertiseTopic() {
	s.expectPrompts()

	guest := domain.GuestInfo{Name: "Sam Ide", Expertise: "newsletter growth"}
	s.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("[]", nil).
		Times(3)
	s.store.EXPECT().
		SaveInterviewPrep(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	prep, err := s.svc.PrepareInterview(context.Background(), guest, "", 0, nil)

	s.Require().NoError(err)
	s.Equal("newsletter growth", prep.Topic)
	s.Equal(30, prep.LengthMinutes)
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
