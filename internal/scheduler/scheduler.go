package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/algo-odyssey/backend/internal/repository"
	"github.com/algo-odyssey/backend/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// LeaderboardComputer is the slice of the leaderboard service the sweep
// needs.
type LeaderboardComputer interface {
	ComputeAndStore(challengeID uint) error
}

// Scheduler advances challenges through their lifecycle phases: a reminder
// duty shortly before the start time and a leaderboard sweep once the window
// closes. The two duties run on independent cron entries; SkipIfStillRunning
// keeps each duty from overlapping itself.
type Scheduler struct {
	cron *cron.Cron

	challenges   repository.ChallengeRepository
	leaderboards LeaderboardComputer
	notifier     service.Notifier
	locker       Locker
	cfg          config.Scheduler
}

func NewScheduler(
	challenges repository.ChallengeRepository,
	leaderboards LeaderboardComputer,
	notifier service.Notifier,
	locker Locker,
	cfg *config.Config,
) *Scheduler {
	return &Scheduler{
		challenges:   challenges,
		leaderboards: leaderboards,
		notifier:     notifier,
		locker:       locker,
		cfg:          cfg.Scheduler,
	}
}

func (s *Scheduler) Start() error {
	s.cron = cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := s.cron.AddFunc(s.cfg.ReminderSpec, func() {
		s.RunReminderSweep(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder duty: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.LeaderboardSpec, func() {
		s.RunLeaderboardSweep(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("failed to schedule leaderboard duty: %w", err)
	}
	s.cron.Start()
	log.Info().Str("reminderSpec", s.cfg.ReminderSpec).Str("leaderboardSpec", s.cfg.LeaderboardSpec).
		Msg("Challenge lifecycle scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		log.Info().Msg("Challenge lifecycle scheduler stopped")
	}
}

// RunReminderSweep selects challenges starting inside the reminder window
// and notifies their participants. Send-then-flag: a crash between dispatch
// and the flag write can duplicate a reminder on the next tick, never lose
// one.
func (s *Scheduler) RunReminderSweep(ctx context.Context, now time.Time) {
	windowStart := now.Add(s.cfg.ReminderOffset - s.cfg.ReminderTolerance)
	windowEnd := now.Add(s.cfg.ReminderOffset + s.cfg.ReminderTolerance)

	challenges, err := s.challenges.DueForReminder(windowStart, windowEnd)
	if err != nil {
		log.Error().Err(err).Msg("Reminder sweep: failed to select due challenges")
		return
	}
	if len(challenges) == 0 {
		return
	}
	log.Info().Int("count", len(challenges)).
		Time("windowStart", windowStart).Time("windowEnd", windowEnd).
		Msg("Reminder sweep: challenges due")

	for i := range challenges {
		s.remindChallenge(ctx, &challenges[i])
	}
}

func (s *Scheduler) remindChallenge(ctx context.Context, challenge *model.Challenge) {
	lockKey := fmt.Sprintf("scheduler:reminder:%d", challenge.ID)
	if ok, err := s.locker.TryLock(ctx, lockKey); err != nil {
		log.Warn().Err(err).Uint("challengeID", challenge.ID).Msg("Reminder sweep: lock unavailable, proceeding on conditional update")
	} else if !ok {
		log.Info().Uint("challengeID", challenge.ID).Msg("Reminder sweep: challenge locked by another instance, skipping")
		return
	} else {
		defer s.locker.Unlock(ctx, lockKey)
	}

	participants, err := s.challenges.Participants(challenge.ID)
	if err != nil {
		log.Error().Err(err).Uint("challengeID", challenge.ID).Msg("Reminder sweep: failed to load participants")
		return
	}

	if len(participants) == 0 {
		// Nothing to send; still advance the flag so the scan stops
		// revisiting this challenge every tick.
		if _, err := s.challenges.MarkReminderSent(challenge.ID); err != nil {
			log.Error().Err(err).Uint("challengeID", challenge.ID).Msg("Reminder sweep: failed to mark reminderSent")
		}
		log.Info().Uint("challengeID", challenge.ID).Msg("Reminder sweep: no participants, marked without sending")
		return
	}

	subject := fmt.Sprintf("Reminder: %q starts soon", challenge.Title)
	startAt := ""
	if challenge.StartTime != nil {
		startAt = challenge.StartTime.Format(time.RFC3339)
	}

	// Fan out one send per participant and wait for every outcome; one
	// failed recipient must not cancel siblings or the flag commit.
	var wg sync.WaitGroup
	type sendResult struct {
		userID uint
		status string
		err    error
	}
	results := make(chan sendResult, len(participants))

	for _, p := range participants {
		if p.Email == "" {
			log.Warn().Uint("userID", p.ID).Uint("challengeID", challenge.ID).
				Msg("Reminder sweep: participant has no email, skipping")
			continue
		}
		wg.Add(1)
		go func(user model.User) {
			defer wg.Done()
			body := fmt.Sprintf("Hi %s,\n\nYour challenge %q starts at %s.\nGood luck!",
				user.FullName, challenge.Title, startAt)
			if err := s.notifier.Send(user.Email, subject, body); err != nil {
				results <- sendResult{userID: user.ID, status: "error", err: err}
				return
			}
			results <- sendResult{userID: user.ID, status: "sent"}
		}(p)
	}
	wg.Wait()
	close(results)

	sent, failed := 0, 0
	for r := range results {
		if r.err != nil {
			failed++
			log.Error().Err(r.err).Uint("userID", r.userID).Uint("challengeID", challenge.ID).
				Msg("Reminder sweep: send failed")
			continue
		}
		sent++
	}

	if _, err := s.challenges.MarkReminderSent(challenge.ID); err != nil {
		log.Error().Err(err).Uint("challengeID", challenge.ID).Msg("Reminder sweep: failed to mark reminderSent")
		return
	}
	log.Info().Uint("challengeID", challenge.ID).Int("sent", sent).Int("failed", failed).
		Msg("Reminder sweep: challenge processed")
}

// RunLeaderboardSweep finalizes every challenge whose window has closed:
// compute, persist, then conditionally flip leaderboardComputed. A failing
// challenge is logged and the sweep moves on.
func (s *Scheduler) RunLeaderboardSweep(ctx context.Context, now time.Time) {
	challenges, err := s.challenges.DueForLeaderboard(now)
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard sweep: failed to select due challenges")
		return
	}

	for i := range challenges {
		s.finalizeChallenge(ctx, &challenges[i])
	}
}

func (s *Scheduler) finalizeChallenge(ctx context.Context, challenge *model.Challenge) {
	lockKey := fmt.Sprintf("scheduler:leaderboard:%d", challenge.ID)
	if ok, err := s.locker.TryLock(ctx, lockKey); err != nil {
		log.Warn().Err(err).Uint("challengeID", challenge.ID).Msg("Leaderboard sweep: lock unavailable, proceeding on conditional update")
	} else if !ok {
		log.Info().Uint("challengeID", challenge.ID).Msg("Leaderboard sweep: challenge locked by another instance, skipping")
		return
	} else {
		defer s.locker.Unlock(ctx, lockKey)
	}

	log.Info().Uint("challengeID", challenge.ID).Msg("Leaderboard sweep: computing")
	if err := s.leaderboards.ComputeAndStore(challenge.ID); err != nil {
		log.Error().Err(err).Uint("challengeID", challenge.ID).Msg("Leaderboard sweep: compute failed")
		return
	}
	if _, err := s.challenges.MarkLeaderboardComputed(challenge.ID); err != nil {
		log.Error().Err(err).Uint("challengeID", challenge.ID).Msg("Leaderboard sweep: failed to mark leaderboardComputed")
	}
}
