// Package journal runs the entry pipeline: classify, reframe, transform,
// coach, persist (remote or offline queue), then the post-commit side
// effects: streaks, achievements, reward points, distress tracking and the
// therapist recommendation policy.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mindwell/reframe-server/internal/archive"
	"github.com/mindwell/reframe-server/internal/classifier"
	"github.com/mindwell/reframe-server/internal/coach"
	"github.com/mindwell/reframe-server/internal/db"
	"github.com/mindwell/reframe-server/internal/distress"
	"github.com/mindwell/reframe-server/internal/faith"
	"github.com/mindwell/reframe-server/internal/lexicon"
	"github.com/mindwell/reframe-server/internal/models"
	"github.com/mindwell/reframe-server/internal/remote"
	"github.com/mindwell/reframe-server/internal/streaks"
	"github.com/mindwell/reframe-server/internal/transform"
)

const (
	// offlinePrefix marks locally-assigned ids for queued entries.
	offlinePrefix = "off_"
	// previewLen bounds the text preview in pending listings.
	previewLen = 80
	// historyLimit is how many recent entries feed the frequency signal.
	historyLimit = 10

	offlineMessage = "Saved offline. Your entry will sync when you're back online."
)

// Service orchestrates the entry pipeline.
type Service struct {
	db        *db.DB
	store     remote.Store
	probe     remote.Probe
	transform *transform.Generator
	coach     *coach.Generator
	streaks   *streaks.Engine
	archive   *archive.Archive
	clock     clockwork.Clock
	rng       *rand.Rand
}

func New(database *db.DB, store remote.Store, probe remote.Probe, arch *archive.Archive, clock clockwork.Clock, rng *rand.Rand) *Service {
	return &Service{
		db:        database,
		store:     store,
		probe:     probe,
		transform: transform.New(rng),
		coach:     coach.New(rng),
		streaks:   streaks.New(database, clock),
		archive:   arch,
		clock:     clock,
		rng:       rng,
	}
}

// Submit processes one journal submission end to end. The generated
// content (reframe, steps, coaching) is always produced; only remote
// persistence degrades to the offline queue.
func (s *Service) Submit(ctx context.Context, userID string, req models.SubmitRequest) (models.SubmitResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return models.SubmitResponse{}, fmt.Errorf("entry text is required")
	}

	prefs, err := s.db.GetPreferences(userID)
	if err != nil {
		return models.SubmitResponse{}, fmt.Errorf("loading preferences: %w", err)
	}

	mood := req.Mood
	if mood == "" {
		if detected, ok := classifier.Detect(text); ok {
			mood = detected
		} else {
			mood = models.MoodNeutral
		}
	}

	innerChild := req.InnerChild || prefs.InnerChildMode
	mode := transform.ModeStandard
	if innerChild {
		mode = transform.ModeInnerChild
	}

	var reframe string
	if innerChild {
		reframe = s.transform.InnerChildResponse(mood)
	} else {
		reframe = lexicon.ReframeLines[s.rng.Intn(len(lexicon.ReframeLines))]
	}

	steps := s.transform.Generate(mood, text, mode)
	coaching := s.coach.Generate(mood, text, reframe)
	actionText := steps[len(steps)-1].Description

	var verse *models.FaithVerse
	if prefs.FaithEnabled && prefs.FaithTradition != "" {
		verse = faith.Verse(s.rng, prefs.FaithTradition, faith.Categorize(mood))
	}

	// Frequency signal uses history prior to this entry.
	recentNegative, err := s.recentNegativeCount(userID)
	if err != nil {
		return models.SubmitResponse{}, fmt.Errorf("reading entry history: %w", err)
	}

	now := s.clock.Now()
	entryID, offline := s.persist(ctx, userID, req, text, mood, innerChild, reframe, actionText, now)

	if err := s.db.LogEntry(db.EntryRecord{
		EntryID:    entryID,
		UserID:     userID,
		Mood:       mood,
		RawText:    text,
		InnerChild: innerChild,
		CreatedAt:  now,
	}); err != nil {
		log.Printf("mirroring entry %s: %v", entryID, err)
	}

	if err := s.streaks.RecordActivity(userID, now); err != nil {
		log.Printf("recording activity for %s: %v", userID, err)
	}
	newAchievements, err := s.streaks.EvaluateAchievements(userID)
	if err != nil {
		log.Printf("evaluating achievements for %s: %v", userID, err)
	}
	if err := s.streaks.AwardPoints(userID, models.EventJournalEntry); err != nil {
		log.Printf("awarding points for %s: %v", userID, err)
	}

	rec := distress.Detect(text, mood, recentNegative)
	recommended := s.trackDistress(userID, entryID, mood, rec, now)

	pending, err := s.db.CountPendingEntries(userID)
	if err != nil {
		log.Printf("counting pending entries for %s: %v", userID, err)
	}

	resp := models.SubmitResponse{
		EntryID:     entryID,
		Offline:     offline,
		PendingSync: pending,
		Mood:        mood,
		Reframe:     reframe,
		Steps:       steps,
		Coaching:    &coaching,
		FaithVerse:  verse,
		Distress: &models.DistressSummary{
			Level:    rec.Level,
			Triggers: rec.Triggers,
		},
		ShowSupport:     rec.ShouldShowSupport || recommended,
		NewAchievements: newAchievements,
	}
	if offline {
		resp.UIMessage = offlineMessage
	}

	arcRec := archive.Record{
		ID:          entryID,
		TS:          now.UTC().Format(time.RFC3339),
		UserID:      userID,
		Mood:        mood,
		InnerChild:  innerChild,
		Queued:      offline,
		Distress:    rec.Level,
		Recommended: recommended,
	}
	if err := s.archive.Append(arcRec); err != nil {
		log.Printf("archiving entry %s: %v", entryID, err)
	}

	return resp, nil
}

// persist commits the entry remotely when the store is reachable,
// otherwise queues it. The queue is flushed first so ordering survives a
// reconnect mid-session.
func (s *Service) persist(ctx context.Context, userID string, req models.SubmitRequest, text, mood string, innerChild bool, reframe, actionText string, now time.Time) (entryID string, offline bool) {
	if !s.probe.Online(ctx) {
		return s.enqueue(userID, req, text, mood, innerChild, reframe, actionText, now)
	}

	if _, _, err := s.Flush(ctx, userID); err != nil {
		log.Printf("flushing queue before submit for %s: %v", userID, err)
	}

	id, err := s.store.CreateEntry(ctx, remote.Entry{
		UserID:         userID,
		Text:           text,
		Mood:           mood,
		Tags:           req.Tags,
		ChapterID:      req.ChapterID,
		InitialReframe: reframe,
		ActionText:     actionText,
		IsInnerChild:   innerChild,
		CreatedAt:      now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("remote create failed, queueing entry for %s: %v", userID, err)
		return s.enqueue(userID, req, text, mood, innerChild, reframe, actionText, now)
	}
	return id, false
}

func (s *Service) enqueue(userID string, req models.SubmitRequest, text, mood string, innerChild bool, reframe, actionText string, now time.Time) (string, bool) {
	localID := offlinePrefix + uuid.NewString()
	tags := ""
	if len(req.Tags) > 0 {
		if b, err := json.Marshal(req.Tags); err == nil {
			tags = string(b)
		}
	}
	if err := s.db.AddPendingEntry(db.PendingEntry{
		LocalID:    localID,
		UserID:     userID,
		RawText:    text,
		Mood:       mood,
		Tags:       tags,
		ChapterID:  req.ChapterID,
		InnerChild: innerChild,
		Reframe:    reframe,
		ActionText: actionText,
		CreatedAt:  now,
	}); err != nil {
		log.Printf("queueing entry for %s: %v", userID, err)
	}
	return localID, true
}

// trackDistress persists the assessment and evaluates the therapist
// recommendation policy. The policy only runs when the assessment itself
// flags the entry; stale history alone must not surface a recommendation
// over a calm entry. The recommendation event is recorded before it is
// surfaced so the cooldown holds even if the response is lost.
func (s *Service) trackDistress(userID, entryID, mood string, rec distress.Record, now time.Time) bool {
	recommended := false
	if rec.ShouldShowSupport && rec.Level != models.LevelLow {
		recentLevels, err := s.db.RecentDistressLevels(userID, distress.HistoryWindow)
		if err != nil {
			log.Printf("reading distress history for %s: %v", userID, err)
		}

		daysSinceLast := distress.CooldownDays
		last, err := s.db.LastRecommendation(userID)
		if err != nil {
			log.Printf("reading last recommendation for %s: %v", userID, err)
		}
		if last != nil {
			daysSinceLast = int(now.Sub(last.ShownAt).Hours() / 24)
		}

		recommended = distress.ShouldRecommend(rec.Level, recentLevels, daysSinceLast)
		if recommended {
			category := mood
			if category == "" {
				category = "general"
			}
			if err := s.db.SaveRecommendation(userID, category, now); err != nil {
				log.Printf("recording recommendation for %s: %v", userID, err)
				recommended = false
			}
		}
	}

	triggers := ""
	if len(rec.Triggers) > 0 {
		if b, err := json.Marshal(rec.Triggers); err == nil {
			triggers = string(b)
		}
	}
	if err := s.db.SaveDistress(db.DistressRow{
		UserID:              userID,
		EntryID:             entryID,
		Level:               rec.Level,
		Triggers:            triggers,
		RecommendationShown: recommended,
		CreatedAt:           now,
	}); err != nil {
		log.Printf("saving distress record for %s: %v", userID, err)
	}

	return recommended
}

func (s *Service) recentNegativeCount(userID string) (int, error) {
	recent, err := s.db.RecentEntries(userID, historyLimit)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range recent {
		if lexicon.ChallengingMoods[e.Mood] {
			n++
		}
	}
	return n, nil
}

// Flush drains the user's offline queue in FIFO order. Each entry is
// attempted independently; a queued record is removed only after the
// remote confirms acceptance, so a failure leaves it queued for the next
// pass.
func (s *Service) Flush(ctx context.Context, userID string) (committed, remaining int, err error) {
	pending, err := s.db.GetPendingEntries(userID)
	if err != nil {
		return 0, 0, fmt.Errorf("reading pending queue: %w", err)
	}

	for _, p := range pending {
		var tags []string
		if p.Tags != "" {
			if err := json.Unmarshal([]byte(p.Tags), &tags); err != nil {
				log.Printf("parsing tags for queued entry %s: %v", p.LocalID, err)
			}
		}
		if _, err := s.store.CreateEntry(ctx, remote.Entry{
			UserID:         p.UserID,
			Text:           p.RawText,
			Mood:           p.Mood,
			Tags:           tags,
			ChapterID:      p.ChapterID,
			InitialReframe: p.Reframe,
			ActionText:     p.ActionText,
			IsInnerChild:   p.InnerChild,
			CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			log.Printf("syncing queued entry %s: %v", p.LocalID, err)
			continue
		}
		if err := s.db.RemovePendingEntry(p.LocalID); err != nil {
			return committed, len(pending) - committed, fmt.Errorf("removing synced entry %s: %w", p.LocalID, err)
		}
		committed++
	}

	return committed, len(pending) - committed, nil
}

// FlushAll drains every user's queue. Used by the background sync job
// after a connectivity probe succeeds.
func (s *Service) FlushAll(ctx context.Context) error {
	if !s.probe.Online(ctx) {
		return nil
	}
	users, err := s.db.UsersWithPending()
	if err != nil {
		return fmt.Errorf("listing users with pending entries: %w", err)
	}
	for _, u := range users {
		if committed, remaining, err := s.Flush(ctx, u); err != nil {
			log.Printf("flushing queue for %s: %v", u, err)
		} else if committed > 0 {
			log.Printf("synced %d queued entries for %s (%d remaining)", committed, u, remaining)
		}
	}
	return nil
}

// Pending lists the user's offline queue.
func (s *Service) Pending(userID string) (models.PendingResponse, error) {
	pending, err := s.db.GetPendingEntries(userID)
	if err != nil {
		return models.PendingResponse{}, fmt.Errorf("reading pending queue: %w", err)
	}

	items := make([]models.PendingEntryItem, 0, len(pending))
	for _, p := range pending {
		preview := p.RawText
		if len(preview) > previewLen {
			// Cut on a rune boundary, not a byte boundary.
			if runes := []rune(preview); len(runes) > previewLen {
				preview = string(runes[:previewLen])
			}
		}
		items = append(items, models.PendingEntryItem{
			LocalID:   p.LocalID,
			Preview:   preview,
			Mood:      p.Mood,
			CreatedAt: p.CreatedAt,
		})
	}
	return models.PendingResponse{Pending: items}, nil
}

// CompleteAction flips the action flag on an entry and awards points when
// an action is completed. Remote propagation is skipped for entries that
// only exist in the offline queue.
func (s *Service) CompleteAction(ctx context.Context, userID, entryID string, completed bool) error {
	if err := s.db.SetActionCompleted(userID, entryID, completed); err != nil {
		return fmt.Errorf("updating action flag: %w", err)
	}
	if !strings.HasPrefix(entryID, offlinePrefix) {
		if err := s.store.SetActionCompleted(ctx, userID, entryID, completed); err != nil {
			log.Printf("propagating action flag for %s: %v", entryID, err)
		}
	}
	if completed {
		if err := s.streaks.AwardPoints(userID, models.EventActionCompleted); err != nil {
			log.Printf("awarding action points for %s: %v", userID, err)
		}
	}
	return nil
}

// Streak returns the user's streak and rewards snapshot.
func (s *Service) Streak(userID string) (models.StreakResponse, error) {
	return s.streaks.Snapshot(userID)
}

// InnerChildPrompt returns a rotating prompt bundle for inner-child mode.
func (s *Service) InnerChildPrompt() models.InnerChildPrompt {
	return s.transform.RandomInnerChildPrompt()
}

// Preferences returns the user's stored preferences.
func (s *Service) Preferences(userID string) (models.Preferences, error) {
	p, err := s.db.GetPreferences(userID)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("loading preferences: %w", err)
	}
	return models.Preferences{
		FaithEnabled:   p.FaithEnabled,
		FaithTradition: p.FaithTradition,
		InnerChildMode: p.InnerChildMode,
	}, nil
}

// SetPreferences stores the user's preferences. The tradition must be one
// of the supported set when faith content is enabled.
func (s *Service) SetPreferences(userID string, p models.Preferences) error {
	if p.FaithEnabled {
		valid := false
		for _, tr := range faith.Traditions {
			if p.FaithTradition == tr {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unsupported faith tradition %q", p.FaithTradition)
		}
	}
	return s.db.UpsertPreferences(userID, db.PreferencesRow{
		FaithEnabled:   p.FaithEnabled,
		FaithTradition: p.FaithTradition,
		InnerChildMode: p.InnerChildMode,
	})
}
