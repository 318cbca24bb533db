// Package faith provides optional spiritual encouragement content keyed on
// the user's tradition and the mood category of an entry. Purely advisory
// content; disabled unless the user opts in.
package faith

import (
	"math/rand"

	"github.com/mindwell/reframe-server/internal/lexicon"
	"github.com/mindwell/reframe-server/internal/models"
)

// Emotion categories the verse tables are keyed on.
const (
	CategoryComfort   = "comfort"
	CategoryAnxiety   = "anxiety"
	CategoryGratitude = "gratitude"
	CategoryGeneral   = "general"
)

// Supported traditions.
var Traditions = []string{"christianity", "islam", "judaism", "hinduism", "buddhism"}

// Categorize buckets a mood into a verse category.
func Categorize(mood string) string {
	switch {
	case mood == models.MoodAnxious, mood == models.MoodWorried,
		mood == models.MoodStressed, mood == models.MoodOverwhelmed:
		return CategoryAnxiety
	case lexicon.PositiveMoods[mood]:
		return CategoryGratitude
	case lexicon.ChallengingMoods[mood]:
		return CategoryComfort
	default:
		return CategoryGeneral
	}
}

var verses = map[string]map[string][]models.FaithVerse{
	"christianity": {
		CategoryComfort: {
			{
				Text:       "He heals the brokenhearted and binds up their wounds.",
				Citation:   "Psalm 147:3",
				Reflection: "Your pain is seen, and healing is already at work in you.",
			},
		},
		CategoryAnxiety: {
			{
				Text:       "Cast all your anxiety on him because he cares for you.",
				Citation:   "1 Peter 5:7",
				Reflection: "You don't have to carry this worry alone.",
			},
		},
		CategoryGratitude: {
			{
				Text:       "This is the day the Lord has made; let us rejoice and be glad in it.",
				Citation:   "Psalm 118:24",
				Reflection: "Gratitude turns an ordinary day into a gift.",
			},
		},
		CategoryGeneral: {
			{
				Text:       "Be still, and know that I am God.",
				Citation:   "Psalm 46:10",
				Reflection: "Stillness itself can be a form of prayer.",
			},
		},
	},
	"islam": {
		CategoryComfort: {
			{
				Text:       "Indeed, with hardship comes ease.",
				Citation:   "Quran 94:6",
				Reflection: "This difficulty carries ease within it, even when unseen.",
			},
		},
		CategoryAnxiety: {
			{
				Text:       "Verily, in the remembrance of Allah do hearts find rest.",
				Citation:   "Quran 13:28",
				Reflection: "Let remembrance slow your breath and settle your heart.",
			},
		},
		CategoryGratitude: {
			{
				Text:       "If you are grateful, I will surely increase you.",
				Citation:   "Quran 14:7",
				Reflection: "Gratitude opens the door to more of what is good.",
			},
		},
		CategoryGeneral: {
			{
				Text:       "Allah does not burden a soul beyond that it can bear.",
				Citation:   "Quran 2:286",
				Reflection: "What you face today is within your strength to meet.",
			},
		},
	},
	"judaism": {
		CategoryComfort: {
			{
				Text:       "The Lord is close to the brokenhearted.",
				Citation:   "Psalm 34:19",
				Reflection: "Closeness, not distance, is the answer to a broken heart.",
			},
		},
		CategoryAnxiety: {
			{
				Text:       "When I am afraid, I put my trust in You.",
				Citation:   "Psalm 56:4",
				Reflection: "Fear and trust can share the same moment.",
			},
		},
		CategoryGratitude: {
			{
				Text:       "Give thanks to the Lord, for He is good; His kindness endures forever.",
				Citation:   "Psalm 136:1",
				Reflection: "Naming kindness makes it easier to see tomorrow.",
			},
		},
		CategoryGeneral: {
			{
				Text:       "The world stands on three things: Torah, service, and acts of loving kindness.",
				Citation:   "Pirkei Avot 1:2",
				Reflection: "One small act of kindness steadies your corner of the world.",
			},
		},
	},
	"hinduism": {
		CategoryComfort: {
			{
				Text:       "For the soul there is neither birth nor death. It is not slain when the body is slain.",
				Citation:   "Bhagavad Gita 2:20",
				Reflection: "What is essential in you cannot be diminished by this moment.",
			},
		},
		CategoryAnxiety: {
			{
				Text:       "You have the right to work, but never to the fruit of work.",
				Citation:   "Bhagavad Gita 2:47",
				Reflection: "Release the outcome; tend only to the next right effort.",
			},
		},
		CategoryGratitude: {
			{
				Text:       "Contentment is the highest wealth.",
				Citation:   "Yoga Sutras 2:42",
				Reflection: "What you already hold is abundant when seen with fresh eyes.",
			},
		},
		CategoryGeneral: {
			{
				Text:       "The mind is restless, but it is subdued by practice.",
				Citation:   "Bhagavad Gita 6:35",
				Reflection: "Each gentle return of attention is the practice itself.",
			},
		},
	},
	"buddhism": {
		CategoryComfort: {
			{
				Text:       "Pain is inevitable. Suffering is optional.",
				Citation:   "Buddhist teaching",
				Reflection: "You can hold this pain without adding the weight of judgment.",
			},
		},
		CategoryAnxiety: {
			{
				Text:       "The mind is everything. What you think you become.",
				Citation:   "Attributed to the Buddha",
				Reflection: "A single calm thought is a doorway out of the spiral.",
			},
		},
		CategoryGratitude: {
			{
				Text:       "Let us rise up and be thankful, for if we didn't learn a lot today, at least we learned a little.",
				Citation:   "Attributed to the Buddha",
				Reflection: "Even a small learning is worth a moment of thanks.",
			},
		},
		CategoryGeneral: {
			{
				Text:       "Peace comes from within. Do not seek it without.",
				Citation:   "Attributed to the Buddha",
				Reflection: "The stillness you are looking for is already in you.",
			},
		},
	},
}

// Verse returns an encouragement for (tradition, category), or nil when
// the tradition is unknown. Unknown categories fall back to general.
func Verse(rng *rand.Rand, tradition, category string) *models.FaithVerse {
	byCategory, ok := verses[tradition]
	if !ok {
		return nil
	}
	pool, ok := byCategory[category]
	if !ok || len(pool) == 0 {
		pool = byCategory[CategoryGeneral]
	}
	if len(pool) == 0 {
		return nil
	}
	v := pool[rng.Intn(len(pool))]
	return &v
}
