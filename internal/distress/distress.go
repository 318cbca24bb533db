// Package distress scores an entry into an ordinal distress level and
// decides when to surface a therapist-support recommendation.
package distress

import (
	"strings"

	"github.com/mindwell/reframe-server/internal/lexicon"
	"github.com/mindwell/reframe-server/internal/models"
)

// Record is the distress assessment for one entry.
type Record struct {
	Level             string
	Triggers          []string
	ShouldShowSupport bool
}

// Signal weights. The exact table is a local choice; the invariants that
// matter are monotonicity and the crisis floor of at least "high".
const (
	weightCrisis       = 3
	weightHopelessness = 2
	weightMood         = 1
	weightFrequency    = 1

	frequencyLowBar  = 5
	frequencyHighBar = 8
)

// Detect scores (text, mood, recentNegativeCount) into a Record.
// recentNegativeCount is how many of the user's recent entries carried a
// challenging mood.
func Detect(text, mood string, recentNegativeCount int) Record {
	lower := strings.ToLower(text)

	var score int
	var triggers []string

	crisisHits := matchFamily(lower, lexicon.CrisisWords)
	if len(crisisHits) > 0 {
		score += weightCrisis * len(crisisHits)
		triggers = append(triggers, crisisHits...)
	}

	hopelessHits := matchFamily(lower, lexicon.HopelessnessWords)
	if len(hopelessHits) > 0 {
		score += weightHopelessness
		triggers = append(triggers, hopelessHits...)
	}

	if lexicon.ChallengingMoods[mood] {
		score += weightMood
	}

	switch {
	case recentNegativeCount >= frequencyHighBar:
		score += 2 * weightFrequency
	case recentNegativeCount >= frequencyLowBar:
		score += weightFrequency
	}

	level := levelFor(score)

	// A crisis keyword alone forces at least "high".
	if len(crisisHits) > 0 && models.LevelRank(level) < models.LevelRank(models.LevelHigh) {
		level = models.LevelHigh
	}

	// Mood-based scoring without textual corroboration must not trigger
	// the support flag on its own.
	show := models.LevelRank(level) >= models.LevelRank(models.LevelModerate) && len(triggers) > 0

	return Record{
		Level:             level,
		Triggers:          triggers,
		ShouldShowSupport: show,
	}
}

func levelFor(score int) string {
	switch {
	case score >= 5:
		return models.LevelSevere
	case score >= 3:
		return models.LevelHigh
	case score >= 2:
		return models.LevelModerate
	default:
		return models.LevelLow
	}
}

func matchFamily(lower string, words []string) []string {
	var hits []string
	for _, w := range words {
		if strings.Contains(lower, w) {
			hits = append(hits, w)
		}
	}
	return hits
}
