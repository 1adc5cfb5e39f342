package genai

import "context"

// ScoreInput carries the data a scorer may consider for one application.
type ScoreInput struct {
	ApplicantSkills []string
	JobSkills       []string
	CoverLetter     string
}

// Scorer rates an application 0-100. The interface exists so a real model can
// be plugged in later; the default implementation makes no judgement.
type Scorer interface {
	Score(ctx context.Context, in ScoreInput) (int, error)
}

// NopScorer returns a neutral score for every application.
type NopScorer struct{}

func (NopScorer) Score(_ context.Context, _ ScoreInput) (int, error) {
	return 50, nil
}
