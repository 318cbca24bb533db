package distress

import "github.com/mindwell/reframe-server/internal/models"

// Recommendation policy parameters.
const (
	// CooldownDays is the minimum gap between two shown recommendations.
	CooldownDays = 7
	// HistoryWindow is how many recent distress levels the policy inspects.
	HistoryWindow = 10
)

// ShouldRecommend decides whether to surface a therapist-support prompt.
// The cooldown always wins; a severe level then always shows; otherwise a
// sustained pattern is required: a majority of the recorded recent levels
// at moderate or above. Pure function, evaluated at most once per shown
// recommendation (callers record the event before re-evaluating).
func ShouldRecommend(level string, recentLevels []string, daysSinceLast int) bool {
	if daysSinceLast < CooldownDays {
		return false
	}

	if level == models.LevelSevere {
		return true
	}

	if len(recentLevels) == 0 {
		return false
	}

	window := recentLevels
	if len(window) > HistoryWindow {
		window = window[:HistoryWindow]
	}

	elevated := 0
	for _, l := range window {
		if models.LevelRank(l) >= models.LevelRank(models.LevelModerate) {
			elevated++
		}
	}
	return elevated*2 > len(window)
}
