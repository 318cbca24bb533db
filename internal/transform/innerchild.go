package transform

import "github.com/mindwell/reframe-server/internal/models"

// Inner-child mode follows a fixed thematic shape: acknowledgment,
// affirmations, comfort/nurture, renewal action. Content is drawn from a
// pool separate from the standard templates.

// affirmationCount is fixed per mood category.
const affirmationCount = 3

type innerChildBundle struct {
	responses    []string
	affirmations []string
	renewals     []string
}

var innerChildBundles = map[string]innerChildBundle{
	"comfort": { // sad, hurt, guilty, lonely families
		responses: []string{
			"Your younger self hears this sadness, and they're not alone anymore.",
			"The little one inside you needed someone to notice this hurt. You just did.",
		},
		affirmations: []string{
			"You were never too much to love.",
			"The hurt you carried was real, and it wasn't your fault.",
			"You deserve the gentleness you give to others.",
			"It's safe to feel sad here. No one will turn away.",
		},
		renewals: []string{
			"Wrap yourself in a blanket and speak one kind sentence out loud to your younger self.",
			"Find a childhood photo and tell that child one thing they needed to hear.",
		},
	},
	"calm": { // anxious, worried, stressed, overwhelmed families
		responses: []string{
			"The younger you learned to stay alert to feel safe. You can let them rest now.",
			"Your inner child is holding their breath. Let them know the danger has passed.",
		},
		affirmations: []string{
			"You are safe in this moment.",
			"You don't have to earn rest.",
			"The grown-up you is here now, and they can handle this.",
			"It was never your job to hold everything together.",
		},
		renewals: []string{
			"Place a hand on your chest, breathe slowly, and tell your younger self: we're okay.",
			"Do one small soothing ritual you loved as a child, without apologizing for it.",
		},
	},
	"joy": { // happy, grateful, loved, peaceful families
		responses: []string{
			"Your inner child is lighting up. They remember how to play.",
			"This joy belongs to every age you've ever been. Let it land.",
		},
		affirmations: []string{
			"Your joy is allowed to take up space.",
			"Good things are safe to enjoy.",
			"You don't have to brace for this to be taken away.",
			"The playful part of you never disappeared.",
		},
		renewals: []string{
			"Do something purely playful today, for no productive reason at all.",
			"Share this good feeling with someone the way a child shares good news.",
		},
	},
	"general": {
		responses: []string{
			"Whatever you're feeling, your younger self is listening with you.",
			"You came here to tend to yourself. The child in you notices that.",
		},
		affirmations: []string{
			"All of your feelings are welcome here.",
			"You are worth taking care of.",
			"You get to grow at your own pace.",
			"Being heard is something you deserve.",
		},
		renewals: []string{
			"Write one sentence to your younger self beginning with: I want you to know...",
			"Spend five minutes doing something that felt like home when you were small.",
		},
	},
}

func innerChildCategory(mood string) string {
	switch mood {
	case models.MoodSad, models.MoodHurt, models.MoodGuilty, models.MoodDisappointed, models.MoodNumb, models.MoodVulnerable:
		return "comfort"
	case models.MoodAnxious, models.MoodWorried, models.MoodStressed, models.MoodOverwhelmed:
		return "calm"
	case models.MoodHappy, models.MoodGrateful, models.MoodLoved, models.MoodPeaceful, models.MoodHopeful, models.MoodContent, models.MoodRelieved:
		return "joy"
	default:
		return "general"
	}
}

func (g *Generator) generateInnerChild(mood string) []models.TransformationStep {
	b := innerChildBundles[innerChildCategory(mood)]

	affirmations := make([]string, 0, affirmationCount)
	for _, i := range g.rng.Perm(len(b.affirmations))[:affirmationCount] {
		affirmations = append(affirmations, b.affirmations[i])
	}

	return []models.TransformationStep{
		{
			Index:   0,
			Title:   "Your Younger Self Hears You",
			Content: g.pick(b.responses),
		},
		{
			Index:        1,
			Title:        "Inner Child Affirmations",
			Content:      "Gentle truths for your younger self",
			Affirmations: affirmations,
		},
		{
			Index:   2,
			Title:   "Comfort & Nurture",
			Content: "You are giving yourself what you always needed",
		},
		{
			Index:       3,
			Title:       "Healing Action",
			Content:     "Close the circle with one gentle act of renewal.",
			Description: g.pick(b.renewals),
		},
	}
}

// InnerChildResponse returns the acknowledgment line alone, used as the
// reframe message in inner-child submissions.
func (g *Generator) InnerChildResponse(mood string) string {
	return g.pick(innerChildBundles[innerChildCategory(mood)].responses)
}

// InnerChildPrompts is the rotating prompt pool surfaced to the host UI.
var InnerChildPrompts = []models.InnerChildPrompt{
	{
		Intro:          "Hello, little one",
		PromptQuestion: "What does your younger self want to tell you today?",
		Placeholder:    "When I was small, I felt...",
	},
	{
		Intro:          "Your younger self is here",
		PromptQuestion: "What did you need to hear back then that no one said?",
		Placeholder:    "I always wished someone would tell me...",
	},
	{
		Intro:          "A quiet moment together",
		PromptQuestion: "What memory has been asking for your attention?",
		Placeholder:    "I keep thinking about the time...",
	},
}

// RandomInnerChildPrompt picks one prompt bundle.
func (g *Generator) RandomInnerChildPrompt() models.InnerChildPrompt {
	return InnerChildPrompts[g.rng.Intn(len(InnerChildPrompts))]
}
