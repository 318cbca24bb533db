// Package lexicon holds the static mood lexicon and content pools consumed
// read-only by the classifier, the generators and the distress detector.
package lexicon

import "github.com/mindwell/reframe-server/internal/models"

// MoodKeywords pairs a mood label with the word set that signals it.
// Declaration order is the classifier's tie-break order.
type MoodKeywords struct {
	Mood     string
	Keywords []string
}

// Moods is the ordered mood→keyword table.
var Moods = []MoodKeywords{
	{models.MoodAnxious, []string{"anxious", "anxiety", "nervous", "panic", "panicking", "uneasy", "dread", "jittery"}},
	{models.MoodOverwhelmed, []string{"overwhelmed", "overwhelm", "drowning", "swamped", "buried", "too much"}},
	{models.MoodStressed, []string{"stressed", "stress", "pressure", "deadline", "tense", "burnout"}},
	{models.MoodAngry, []string{"angry", "furious", "rage", "mad", "livid", "seething"}},
	{models.MoodFrustrated, []string{"frustrated", "frustrating", "annoyed", "irritated", "stuck", "fed"}},
	{models.MoodSad, []string{"sad", "crying", "cried", "tears", "heartbroken", "miserable", "depressed", "down"}},
	{models.MoodHurt, []string{"hurt", "betrayed", "wounded", "rejected", "abandoned"}},
	{models.MoodWorried, []string{"worried", "worry", "worrying", "scared", "afraid", "fear"}},
	{models.MoodGuilty, []string{"guilty", "guilt", "ashamed", "regret", "remorse"}},
	{models.MoodTired, []string{"tired", "exhausted", "drained", "fatigued", "sleepy", "weary"}},
	{models.MoodConfused, []string{"confused", "lost", "unsure", "puzzled", "torn"}},
	{models.MoodGrateful, []string{"grateful", "gratitude", "thankful", "blessed", "appreciate"}},
	{models.MoodHappy, []string{"happy", "joy", "joyful", "excited", "wonderful", "amazing", "delighted", "thrilled"}},
	{models.MoodLoved, []string{"loved", "cherished", "adored", "appreciated"}},
	{models.MoodPeaceful, []string{"peaceful", "calm", "serene", "relaxed", "tranquil"}},
	{models.MoodHopeful, []string{"hopeful", "hope", "optimistic", "looking forward"}},
	{models.MoodContent, []string{"content", "satisfied", "fine", "settled", "comfortable"}},
	{models.MoodNumb, []string{"numb", "nothing", "hollow", "detached", "disconnected"}},
}

// PositiveMoods and ChallengingMoods bucket moods for the coach; anything
// outside both sets is treated as neutral.
var PositiveMoods = map[string]bool{
	models.MoodHappy:    true,
	models.MoodLoved:    true,
	models.MoodPeaceful: true,
	models.MoodContent:  true,
	models.MoodGrateful: true,
	models.MoodHopeful:  true,
	models.MoodRelieved: true,
}

var ChallengingMoods = map[string]bool{
	models.MoodSad:         true,
	models.MoodAnxious:     true,
	models.MoodFrustrated:  true,
	models.MoodAngry:       true,
	models.MoodHurt:        true,
	models.MoodWorried:     true,
	models.MoodStressed:    true,
	models.MoodOverwhelmed: true,
	models.MoodGuilty:      true,
}

// ReframeLines is the general reframe pool used by the standard
// transformation path.
var ReframeLines = []string{
	"Every emotion is a teacher. What is this feeling trying to show you?",
	"You're experiencing this because you care deeply. That's a strength.",
	"Feelings are temporary visitors. This moment will pass, and you'll carry forward the wisdom.",
	"By acknowledging this emotion, you're already practicing courage and self-awareness.",
	"Your feelings are valid. They're part of your unique human experience.",
	"This emotion is information, not your identity. You are bigger than this moment.",
	"You've felt difficult things before and grown from them. You will again.",
	"Expressing your emotions is an act of self-care and healing.",
	"Every feeling you process makes space for more joy and peace.",
	"You're transforming pain into understanding. That's powerful growth.",
	"This emotion shows you're alive, present, and deeply feeling. That's beautiful.",
	"By naming your feelings, you're taking the first step toward freedom.",
	"Your emotional honesty is a gift you give yourself.",
	"Difficult emotions often precede meaningful breakthroughs.",
	"You're not stuck in this feeling. You're moving through it with intention.",
}

// PositiveResponses and SupportiveResponses are the coach's message pools.
var PositiveResponses = []string{
	"That's a wonderful perspective! You're showing real emotional awareness.",
	"It's beautiful to see you recognizing these positive feelings.",
	"You're doing great work processing these emotions.",
	"This kind of reflection is so valuable for your growth.",
}

var SupportiveResponses = []string{
	"It sounds like you're dealing with something challenging.",
	"I hear you, and what you're feeling is completely valid.",
	"Thank you for sharing something so personal.",
	"It takes courage to acknowledge these feelings.",
}

// ReflectionQuestions is the fallback question pool.
var ReflectionQuestions = []string{
	"What would you tell a friend going through the same situation?",
	"How might you view this situation a week from now?",
	"What's one small step you could take to care for yourself right now?",
	"What part of this situation is within your control?",
	"What have you learned about yourself through this experience?",
	"What would self-compassion look like in this moment?",
}

// CopingTechniques are the five techniques the coach can offer,
// in a fixed order the keyword families index into.
var CopingTechniques = []models.CopingTechnique{
	{
		Title:       "Box Breathing",
		Description: "A calming technique used by Navy SEALs to reduce stress",
		Steps: []string{
			"Breathe in slowly for 4 counts",
			"Hold your breath for 4 counts",
			"Exhale slowly for 4 counts",
			"Hold empty for 4 counts",
			"Repeat 4 times",
		},
	},
	{
		Title:       "5-4-3-2-1 Grounding",
		Description: "Bring yourself to the present moment",
		Steps: []string{
			"Name 5 things you can see",
			"Name 4 things you can touch",
			"Name 3 things you can hear",
			"Name 2 things you can smell",
			"Name 1 thing you can taste",
		},
	},
	{
		Title:       "Progressive Muscle Relaxation",
		Description: "Release physical tension from your body",
		Steps: []string{
			"Start with your toes, tense them for 5 seconds",
			"Release and notice the relaxation",
			"Move up to your calves, then thighs",
			"Continue through your body to your face",
			"End with a full body scan of relaxation",
		},
	},
	{
		Title:       "Journaling Prompt",
		Description: "Explore your thoughts deeper",
		Steps: []string{
			"Set a timer for 5 minutes",
			"Write continuously without editing",
			"Focus on what you're feeling right now",
			"End by writing one thing you're grateful for",
		},
	},
	{
		Title:       "Self-Compassion Break",
		Description: "Treat yourself with kindness",
		Steps: []string{
			"Place your hand on your heart",
			"Say: 'This is a moment of suffering'",
			"Say: 'Suffering is part of life'",
			"Say: 'May I be kind to myself'",
			"Take three deep breaths",
		},
	},
}

// Indexes into CopingTechniques for the keyword families.
const (
	TechniqueBreathing  = 0
	TechniqueGrounding  = 1
	TechniqueRelaxation = 2
	TechniqueJournaling = 3
	TechniqueCompassion = 4
)

// Keyword families scanned over raw text by the coach and the distress
// detector. Matching is case-insensitive substring matching.
var (
	AnxietyWords   = []string{"anxious", "anxiety", "worried", "panic", "nervous"}
	AngerWords     = []string{"angry", "frustrated", "annoyed", "irritated", "mad"}
	SadnessWords   = []string{"sad", "depressed", "down", "hopeless", "empty"}
	OverwhelmWords = []string{"overwhelm", "too much", "can't handle", "drowning"}

	CrisisWords = []string{
		"suicide", "suicidal", "kill myself", "end my life", "end it all",
		"want to die", "better off dead", "self-harm", "self harm",
		"hurt myself", "cutting myself", "no reason to live",
	}
	HopelessnessWords = []string{
		"hopeless", "worthless", "no point", "give up", "giving up",
		"nothing matters", "can't go on", "no way out", "burden to everyone",
	}
)

// Family reflection questions paired with the coping techniques.
const (
	AnxietyQuestion   = "What's one worry you could set aside for just the next hour?"
	OverwhelmQuestion = "What's the smallest, most manageable task you could focus on right now?"
	AngerQuestion     = "What boundary might you need to set to protect your peace?"
	SadnessQuestion   = "What would comfort look like for you right now?"
	PositiveQuestion  = "How can you carry this positive energy into the rest of your day?"
)

// NeutralMessage is the coach's acknowledgment outside both buckets.
const NeutralMessage = "Thank you for taking time to reflect on your emotions today."
