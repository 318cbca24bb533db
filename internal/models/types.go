package models

import "time"

// Mood labels the client or classifier can assign to an entry.
const (
	MoodHappy        = "happy"
	MoodSad          = "sad"
	MoodAnxious      = "anxious"
	MoodFrustrated   = "frustrated"
	MoodTired        = "tired"
	MoodConfused     = "confused"
	MoodLoved        = "loved"
	MoodAngry        = "angry"
	MoodHurt         = "hurt"
	MoodPeaceful     = "peaceful"
	MoodWorried      = "worried"
	MoodVulnerable   = "vulnerable"
	MoodDisappointed = "disappointed"
	MoodContent      = "content"
	MoodStressed     = "stressed"
	MoodGrateful     = "grateful"
	MoodOverwhelmed  = "overwhelmed"
	MoodNumb         = "numb"
	MoodHopeful      = "hopeful"
	MoodGuilty       = "guilty"
	MoodEmbarrassed  = "embarrassed"
	MoodRelieved     = "relieved"
	MoodUncertain    = "uncertain"
	MoodNeutral      = "neutral"
)

// Distress level constants, ordered low to severe.
const (
	LevelLow      = "low"
	LevelModerate = "moderate"
	LevelHigh     = "high"
	LevelSevere   = "severe"
)

// Reward event kinds for the points engine.
const (
	EventJournalEntry           = "journal_entry"
	EventTransformationComplete = "transformation_complete"
	EventActionCompleted        = "action_completed"
)

// SubmitRequest is an incoming journal submission.
type SubmitRequest struct {
	Text       string   `json:"text"`
	Mood       string   `json:"mood,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	ChapterID  string   `json:"chapter_id,omitempty"`
	InnerChild bool     `json:"inner_child,omitempty"`
	TSLocal    string   `json:"ts_local,omitempty"`
}

// TransformationStep is one stage of the four-step reframe narrative.
// Index 3 is the only step that may carry a checkable action.
type TransformationStep struct {
	Index        int      `json:"index"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	ActionPrompt string   `json:"action_prompt,omitempty"`
	Description  string   `json:"description,omitempty"`
	Affirmations []string `json:"affirmations,omitempty"`
}

// CopingTechnique is a short guided exercise offered by the coach.
type CopingTechnique struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// CoachingResult is the supportive reply built for one entry.
type CoachingResult struct {
	Message            string           `json:"message"`
	ReflectionQuestion string           `json:"reflection_question,omitempty"`
	CopingTechnique    *CopingTechnique `json:"coping_technique,omitempty"`
}

// FaithVerse is an optional encouragement drawn from the user's tradition.
type FaithVerse struct {
	Text       string `json:"text"`
	Citation   string `json:"citation"`
	Reflection string `json:"reflection"`
}

// DistressSummary reports the distress scoring for one entry.
type DistressSummary struct {
	Level    string   `json:"level"`
	Triggers []string `json:"triggers,omitempty"`
}

// SubmitResponse is returned after processing a submission.
type SubmitResponse struct {
	EntryID         string               `json:"entry_id"`
	Offline         bool                 `json:"offline"`
	PendingSync     int                  `json:"pending_sync"`
	Mood            string               `json:"mood"`
	Reframe         string               `json:"reframe"`
	Steps           []TransformationStep `json:"steps"`
	Coaching        *CoachingResult      `json:"coaching,omitempty"`
	FaithVerse      *FaithVerse          `json:"faith_verse,omitempty"`
	Distress        *DistressSummary     `json:"distress,omitempty"`
	ShowSupport     bool                 `json:"show_support"`
	NewAchievements []string             `json:"new_achievements,omitempty"`
	UIMessage       string               `json:"ui_message,omitempty"`
}

// PendingEntryItem is one queued offline entry.
type PendingEntryItem struct {
	LocalID   string    `json:"local_id"`
	Preview   string    `json:"preview"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingResponse lists queued offline entries in FIFO order.
type PendingResponse struct {
	Pending []PendingEntryItem `json:"pending"`
}

// SyncResponse reports a queue flush.
type SyncResponse struct {
	Committed int `json:"committed"`
	Remaining int `json:"remaining"`
}

// StreakResponse reports the user's streak and rewards state.
type StreakResponse struct {
	Streak       int      `json:"streak"`
	LastActive   string   `json:"last_active"` // YYYY-MM-DD, empty if never
	Achievements []string `json:"achievements"`
	Points       int      `json:"points"`
}

// ActionRequest flips the action_completed flag on an entry.
type ActionRequest struct {
	Completed bool `json:"completed"`
}

// Preferences is the per-user preference row.
type Preferences struct {
	FaithEnabled   bool   `json:"faith_enabled"`
	FaithTradition string `json:"faith_tradition,omitempty"`
	InnerChildMode bool   `json:"inner_child_mode"`
}

// InnerChildPrompt is the rotating prompt bundle for inner-child mode.
type InnerChildPrompt struct {
	Intro          string `json:"intro"`
	PromptQuestion string `json:"prompt_question"`
	Placeholder    string `json:"placeholder"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Remote  string `json:"remote"`
	Version string `json:"version"`
}

// LevelRank maps a distress level to its ordinal rank.
func LevelRank(level string) int {
	switch level {
	case LevelSevere:
		return 3
	case LevelHigh:
		return 2
	case LevelModerate:
		return 1
	default:
		return 0
	}
}
