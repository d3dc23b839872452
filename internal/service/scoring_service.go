package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/model"
)

// MaxOptionScore is the fixed per-question maximum used as the percentage
// denominator. It is deliberately NOT derived from the actual options: a
// bracket whose options never reach 5 points can never show 100%. Kept for
// compatibility with every previously stored score.
const MaxOptionScore = 5

// ScoringResult is the outcome of scoring one answer sheet. TotalScore and
// the band are deterministic in the inputs; Rank is drawn uniformly within
// the band on every call.
type ScoringResult struct {
	TotalScore  int
	Rank        int
	Description string
}

// rankBand maps a minimum percentage onto a display-rank range. The rank is
// a pseudo-rank: there is no population to rank against, so the value is
// drawn at random within the band the percentage selects.
type rankBand struct {
	minPercentage float64
	rankLow       int
	rankHigh      int
	description   string
}

var rankBands = []rankBand{
	{80, 1, 10, "Excellent development! Keep up the supportive environment."},
	{60, 11, 30, "Good development. Keep practising the related skills regularly."},
	{40, 31, 60, "Normal development. Training the related abilities is recommended."},
	{0, 61, 100, "Consider consulting a professional for a personalised training plan."},
}

type ScoringService interface {
	// ComputeResult scores an answer sheet against its questionnaire.
	// answers holds one option index per question, nil where the question
	// was left unanswered; nil answers contribute zero.
	ComputeResult(questions []model.Question, answers []*int) (*ScoringResult, error)
}

type scoringService struct {
	// rand.Rand is not safe for concurrent use and every request shares
	// this one, so draws go through mu.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScoringService() ScoringService {
	return &scoringService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *scoringService) ComputeResult(questions []model.Question, answers []*int) (*ScoringResult, error) {
	if len(questions) == 0 {
		return nil, apperrors.ErrEmptyQuestionnaire
	}

	totalScore := 0
	for i, question := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		idx := *answers[i]
		if idx < 0 || idx >= len(question.Options) {
			return nil, apperrors.ErrInvalidAnswer
		}
		totalScore += question.Options[idx].Score
	}

	maxScore := len(questions) * MaxOptionScore
	percentage := float64(totalScore) / float64(maxScore) * 100

	band := bandFor(percentage)
	s.mu.Lock()
	rank := band.rankLow + s.rng.Intn(band.rankHigh-band.rankLow+1)
	s.mu.Unlock()

	return &ScoringResult{
		TotalScore:  totalScore,
		Rank:        rank,
		Description: band.description,
	}, nil
}

func bandFor(percentage float64) rankBand {
	for _, band := range rankBands {
		if percentage >= band.minPercentage {
			return band
		}
	}
	return rankBands[len(rankBands)-1]
}
