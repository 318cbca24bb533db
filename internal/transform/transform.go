// Package transform builds the four-step reframe narrative for an entry:
// acknowledge, reflect, reframe, act. Two content paths share the step
// shape: the standard path and the inner-child path.
package transform

import (
	"math/rand"

	"github.com/mindwell/reframe-server/internal/lexicon"
	"github.com/mindwell/reframe-server/internal/models"
)

// Mode selects the generation path.
type Mode int

const (
	ModeStandard Mode = iota
	ModeInnerChild
)

// StepCount is invariant for every mood/mode combination.
const StepCount = 4

// Generator builds transformation narratives. The random source is
// injected so tests can fix a seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// moodBundle is the standard-mode template pool for one mood family.
type moodBundle struct {
	acknowledge []string
	reflect     []string
	actions     []string
}

var bundles = map[string]moodBundle{
	models.MoodAnxious: {
		acknowledge: []string{
			"Anxiety is your mind trying to protect you from an imagined future.",
			"You're carrying worry right now, and that takes real energy.",
		},
		reflect: []string{
			"Notice where the anxiety lives in your body. Naming it loosens its grip.",
			"Ask yourself: is this fear about something happening now, or something imagined?",
		},
		actions: []string{
			"Take five slow breaths, then write down the one worry you can act on today.",
			"Step outside for a short walk and let your senses anchor you in the present.",
		},
	},
	models.MoodSad: {
		acknowledge: []string{
			"Sadness is a sign that something mattered to you. Let it be here.",
			"You're allowed to feel heavy right now. This feeling deserves space.",
		},
		reflect: []string{
			"What is this sadness asking you to honor or let go of?",
			"Think of a time sadness eventually softened. What helped it move?",
		},
		actions: []string{
			"Reach out to one person who feels safe and share a little of this.",
			"Do one small kind thing for yourself tonight, like you would for a friend.",
		},
	},
	models.MoodAngry: {
		acknowledge: []string{
			"Anger often guards something tender underneath, like hurt or unfairness.",
			"Your anger is information. Something crossed a line that matters to you.",
		},
		reflect: []string{
			"What value of yours was stepped on? That's what the anger is defending.",
			"Imagine the energy of this anger redirected. What could it build?",
		},
		actions: []string{
			"Write the angry version first, then the version you'd actually send.",
			"Move your body for ten minutes and let the charge discharge safely.",
		},
	},
	models.MoodStressed: {
		acknowledge: []string{
			"Stress means you're holding more than feels manageable right now.",
			"Your system is working hard. It makes sense that you feel stretched.",
		},
		reflect: []string{
			"Which of these pressures is truly yours to carry today?",
			"What would you drop first if you gave yourself permission?",
		},
		actions: []string{
			"Pick the single smallest task on your list and finish only that one.",
			"Block fifteen unscheduled minutes today that belong to no one but you.",
		},
	},
	models.MoodGrateful: {
		acknowledge: []string{
			"Gratitude like this is worth pausing for. You noticed something good.",
			"You're paying attention to what's going right. That's a practiced skill.",
		},
		reflect: []string{
			"Who contributed to this good moment? How might you tell them?",
			"What does this gratitude reveal about what you value most?",
		},
		actions: []string{
			"Send a short thank-you message to someone connected to this feeling.",
			"Write down three details of this moment so future-you can revisit it.",
		},
	},
	models.MoodNeutral: {
		acknowledge: []string{
			"Whatever you're feeling right now is worth sitting with for a moment.",
			"You showed up to reflect today. That alone is meaningful.",
		},
		reflect: []string{
			"If this feeling had a color or a weather, what would it be?",
			"What's one thing beneath the surface of today that wants attention?",
		},
		actions: []string{
			"Write one sentence about what you need most right now.",
			"Choose one small act of care for yourself before the day ends.",
		},
	},
}

// aliases collapse related moods onto a template family.
var aliases = map[string]string{
	models.MoodWorried:      models.MoodAnxious,
	models.MoodOverwhelmed:  models.MoodStressed,
	models.MoodFrustrated:   models.MoodAngry,
	models.MoodHurt:         models.MoodSad,
	models.MoodGuilty:       models.MoodSad,
	models.MoodDisappointed: models.MoodSad,
	models.MoodHappy:        models.MoodGrateful,
	models.MoodLoved:        models.MoodGrateful,
	models.MoodHopeful:      models.MoodGrateful,
	models.MoodPeaceful:     models.MoodGrateful,
	models.MoodContent:      models.MoodGrateful,
	models.MoodRelieved:     models.MoodGrateful,
}

func bundleFor(mood string) moodBundle {
	if b, ok := bundles[mood]; ok {
		return b
	}
	if alias, ok := aliases[mood]; ok {
		return bundles[alias]
	}
	// Unrecognized moods fall back to the neutral bundle.
	return bundles[models.MoodNeutral]
}

// Generate returns exactly four ordered steps for the given mood and mode.
// Unknown moods never fail; they use the neutral content bundle.
func (g *Generator) Generate(mood, text string, mode Mode) []models.TransformationStep {
	if mode == ModeInnerChild {
		return g.generateInnerChild(mood)
	}

	b := bundleFor(mood)
	reframe := g.pick(lexicon.ReframeLines)
	action := g.pick(b.actions)

	return []models.TransformationStep{
		{
			Index:   0,
			Title:   "Acknowledge",
			Content: g.pick(b.acknowledge),
		},
		{
			Index:        1,
			Title:        "Reflect",
			Content:      g.pick(b.reflect),
			ActionPrompt: "Sit with this question for a moment before moving on.",
		},
		{
			Index:   2,
			Title:   "Reframe",
			Content: reframe,
		},
		{
			Index:       3,
			Title:       "Act",
			Content:     "Transformation works best when it ends in one concrete step.",
			Description: action,
		},
	}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
