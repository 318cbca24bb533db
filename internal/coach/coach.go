// Package coach builds the supportive reply for an entry: a message, an
// optional reflection question and an optional coping technique.
package coach

import (
	"math/rand"
	"strings"

	"github.com/mindwell/reframe-server/internal/lexicon"
	"github.com/mindwell/reframe-server/internal/models"
)

// Generator selects coaching content. The random source is injected so
// tests can fix a seed; selection is only random when no keyword family
// distinguishes the input.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the coaching result for (mood, raw text, reframe text).
// Moods bucket into positive, challenging and neutral; only the
// challenging bucket ever carries a coping technique.
func (g *Generator) Generate(mood, text, reframe string) models.CoachingResult {
	switch {
	case lexicon.PositiveMoods[mood]:
		return models.CoachingResult{
			Message:            g.pick(lexicon.PositiveResponses),
			ReflectionQuestion: lexicon.PositiveQuestion,
		}
	case lexicon.ChallengingMoods[mood]:
		return g.generateChallenging(mood, text)
	default:
		return models.CoachingResult{
			Message:            lexicon.NeutralMessage,
			ReflectionQuestion: g.pick(lexicon.ReflectionQuestions),
		}
	}
}

func (g *Generator) generateChallenging(mood, text string) models.CoachingResult {
	result := models.CoachingResult{
		Message: g.pick(lexicon.SupportiveResponses),
	}

	lower := strings.ToLower(text)

	// Keyword families are checked in fixed priority order; mood membership
	// backs up the textual scan so an explicit mood choice still lands on
	// the matching technique.
	switch {
	case containsAny(lower, lexicon.AnxietyWords) || mood == models.MoodAnxious || mood == models.MoodWorried:
		result.CopingTechnique = technique(lexicon.TechniqueBreathing)
		result.ReflectionQuestion = lexicon.AnxietyQuestion
	case containsAny(lower, lexicon.OverwhelmWords) || mood == models.MoodOverwhelmed || mood == models.MoodStressed:
		result.CopingTechnique = technique(lexicon.TechniqueGrounding)
		result.ReflectionQuestion = lexicon.OverwhelmQuestion
	case containsAny(lower, lexicon.AngerWords) || mood == models.MoodAngry || mood == models.MoodFrustrated:
		result.CopingTechnique = technique(lexicon.TechniqueRelaxation)
		result.ReflectionQuestion = lexicon.AngerQuestion
	case containsAny(lower, lexicon.SadnessWords) || mood == models.MoodSad || mood == models.MoodHurt:
		result.CopingTechnique = technique(lexicon.TechniqueCompassion)
		result.ReflectionQuestion = lexicon.SadnessQuestion
	default:
		result.CopingTechnique = technique(g.rng.Intn(len(lexicon.CopingTechniques)))
		result.ReflectionQuestion = g.pick(lexicon.ReflectionQuestions)
	}

	return result
}

func technique(i int) *models.CopingTechnique {
	t := lexicon.CopingTechniques[i]
	return &t
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
