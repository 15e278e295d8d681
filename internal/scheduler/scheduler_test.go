package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/internal/model"
)

type fakeChallengeRepo struct {
	mu sync.Mutex

	dueReminder    []model.Challenge
	dueLeaderboard []model.Challenge
	participants   map[uint][]model.User

	reminderWindowStart time.Time
	reminderWindowEnd   time.Time

	remindersMarked    []uint
	leaderboardsMarked []uint
	markErr            error
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{participants: make(map[uint][]model.User)}
}

func (f *fakeChallengeRepo) Create(challenge *model.Challenge) error { return nil }

func (f *fakeChallengeRepo) FindByID(id uint) (*model.Challenge, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChallengeRepo) FindByIDWithTestCases(id uint) (*model.Challenge, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChallengeRepo) FindAll() ([]model.Challenge, error) { return nil, nil }

func (f *fakeChallengeRepo) DueForReminder(windowStart, windowEnd time.Time) ([]model.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reminderWindowStart = windowStart
	f.reminderWindowEnd = windowEnd
	return f.dueReminder, nil
}

func (f *fakeChallengeRepo) DueForLeaderboard(now time.Time) ([]model.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dueLeaderboard, nil
}

func (f *fakeChallengeRepo) Participants(challengeID uint) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.participants[challengeID], nil
}

func (f *fakeChallengeRepo) MarkReminderSent(challengeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return false, f.markErr
	}
	f.remindersMarked = append(f.remindersMarked, challengeID)
	return true, nil
}

func (f *fakeChallengeRepo) MarkLeaderboardComputed(challengeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaderboardsMarked = append(f.leaderboardsMarked, challengeID)
	return true, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []string
	fails map[string]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{fails: make(map[string]error)}
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fails[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeNotifier) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type fakeLocker struct {
	mu     sync.Mutex
	held   map[string]bool
	denied map[string]bool
	err    error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool), denied: make(map[string]bool)}
}

func (f *fakeLocker) TryLock(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.denied[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, key)
}

type fakeComputer struct {
	mu       sync.Mutex
	computed []uint
	fails    map[uint]error
}

func newFakeComputer() *fakeComputer {
	return &fakeComputer{fails: make(map[uint]error)}
}

func (f *fakeComputer) ComputeAndStore(challengeID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fails[challengeID]; err != nil {
		return err
	}
	f.computed = append(f.computed, challengeID)
	return nil
}

func schedulerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.ReminderOffset = 120 * time.Second
	cfg.Scheduler.ReminderTolerance = 40 * time.Second
	cfg.Scheduler.LockTTL = 5 * time.Minute
	return cfg
}

func newTestScheduler(repo *fakeChallengeRepo, computer *fakeComputer, notifier *fakeNotifier, locker *fakeLocker) *Scheduler {
	return NewScheduler(repo, computer, notifier, locker, schedulerConfig())
}

func startTime(t time.Time) *time.Time { return &t }

func TestReminderSweepWindowBounds(t *testing.T) {
	repo := newFakeChallengeRepo()
	s := newTestScheduler(repo, newFakeComputer(), newFakeNotifier(), newFakeLocker())

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.RunReminderSweep(context.Background(), now)

	wantStart := now.Add(80 * time.Second)
	wantEnd := now.Add(160 * time.Second)
	if !repo.reminderWindowStart.Equal(wantStart) {
		t.Errorf("windowStart = %v, want %v", repo.reminderWindowStart, wantStart)
	}
	if !repo.reminderWindowEnd.Equal(wantEnd) {
		t.Errorf("windowEnd = %v, want %v", repo.reminderWindowEnd, wantEnd)
	}
}

func TestReminderSweepNotifiesAndMarks(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeChallengeRepo()
	repo.dueReminder = []model.Challenge{
		{ID: 1, Title: "Two Sum Sprint", StartTime: startTime(now.Add(2 * time.Minute))},
	}
	repo.participants[1] = []model.User{
		{ID: 10, FullName: "Ada", Email: "ada@example.com"},
		{ID: 11, FullName: "Bob", Email: "bob@example.com"},
	}
	notifier := newFakeNotifier()
	s := newTestScheduler(repo, newFakeComputer(), notifier, newFakeLocker())

	s.RunReminderSweep(context.Background(), now)

	sent := notifier.sentTo()
	if len(sent) != 2 {
		t.Fatalf("sent = %v, want both participants", sent)
	}
	if len(repo.remindersMarked) != 1 || repo.remindersMarked[0] != 1 {
		t.Fatalf("remindersMarked = %v, want [1]", repo.remindersMarked)
	}
}

func TestReminderSweepMarksZeroParticipantChallenge(t *testing.T) {
	now := time.Now()
	repo := newFakeChallengeRepo()
	repo.dueReminder = []model.Challenge{
		{ID: 2, Title: "Empty Cohort", StartTime: startTime(now.Add(2 * time.Minute))},
	}
	notifier := newFakeNotifier()
	s := newTestScheduler(repo, newFakeComputer(), notifier, newFakeLocker())

	s.RunReminderSweep(context.Background(), now)

	if len(notifier.sentTo()) != 0 {
		t.Errorf("sent = %v, want no sends", notifier.sentTo())
	}
	// The flag still advances so the scan stops revisiting this challenge.
	if len(repo.remindersMarked) != 1 || repo.remindersMarked[0] != 2 {
		t.Fatalf("remindersMarked = %v, want [2]", repo.remindersMarked)
	}
}

func TestReminderSweepPartialFailureStillMarks(t *testing.T) {
	now := time.Now()
	repo := newFakeChallengeRepo()
	repo.dueReminder = []model.Challenge{
		{ID: 3, Title: "Graph Day", StartTime: startTime(now.Add(2 * time.Minute))},
	}
	repo.participants[3] = []model.User{
		{ID: 10, FullName: "Ada", Email: "ada@example.com"},
		{ID: 11, FullName: "Bob", Email: "bob@example.com"},
		{ID: 12, FullName: "Cyn"}, // no email on file
	}
	notifier := newFakeNotifier()
	notifier.fails["bob@example.com"] = errors.New("mailbox full")
	s := newTestScheduler(repo, newFakeComputer(), notifier, newFakeLocker())

	s.RunReminderSweep(context.Background(), now)

	sent := notifier.sentTo()
	if len(sent) != 1 || sent[0] != "ada@example.com" {
		t.Errorf("sent = %v, want only ada", sent)
	}
	// One failed recipient must not hold the challenge in the due set
	// forever; the flag commits after the fan-out settles.
	if len(repo.remindersMarked) != 1 || repo.remindersMarked[0] != 3 {
		t.Fatalf("remindersMarked = %v, want [3]", repo.remindersMarked)
	}
}

func TestReminderSweepSkipsLockedChallenge(t *testing.T) {
	now := time.Now()
	repo := newFakeChallengeRepo()
	repo.dueReminder = []model.Challenge{
		{ID: 4, Title: "Held Elsewhere", StartTime: startTime(now.Add(2 * time.Minute))},
	}
	repo.participants[4] = []model.User{{ID: 10, FullName: "Ada", Email: "ada@example.com"}}
	notifier := newFakeNotifier()
	locker := newFakeLocker()
	locker.denied["scheduler:reminder:4"] = true
	s := newTestScheduler(repo, newFakeComputer(), notifier, locker)

	s.RunReminderSweep(context.Background(), now)

	if len(notifier.sentTo()) != 0 {
		t.Errorf("sent = %v, want none while another instance holds the lock", notifier.sentTo())
	}
	if len(repo.remindersMarked) != 0 {
		t.Errorf("remindersMarked = %v, want none", repo.remindersMarked)
	}
}

func TestReminderSweepProceedsWhenLockerUnavailable(t *testing.T) {
	now := time.Now()
	repo := newFakeChallengeRepo()
	repo.dueReminder = []model.Challenge{
		{ID: 5, Title: "Redis Down", StartTime: startTime(now.Add(2 * time.Minute))},
	}
	repo.participants[5] = []model.User{{ID: 10, FullName: "Ada", Email: "ada@example.com"}}
	notifier := newFakeNotifier()
	locker := newFakeLocker()
	locker.err = errors.New("connection refused")
	s := newTestScheduler(repo, newFakeComputer(), notifier, locker)

	s.RunReminderSweep(context.Background(), now)

	// The lock is advisory; the conditional flag update remains the
	// correctness backstop, so the sweep carries on.
	if len(notifier.sentTo()) != 1 {
		t.Errorf("sent = %v, want 1", notifier.sentTo())
	}
	if len(repo.remindersMarked) != 1 {
		t.Errorf("remindersMarked = %v, want [5]", repo.remindersMarked)
	}
}

func TestLeaderboardSweepComputesAndMarks(t *testing.T) {
	repo := newFakeChallengeRepo()
	repo.dueLeaderboard = []model.Challenge{{ID: 7}, {ID: 8}}
	computer := newFakeComputer()
	s := newTestScheduler(repo, computer, newFakeNotifier(), newFakeLocker())

	s.RunLeaderboardSweep(context.Background(), time.Now())

	computer.mu.Lock()
	computed := append([]uint(nil), computer.computed...)
	computer.mu.Unlock()
	if len(computed) != 2 {
		t.Fatalf("computed = %v, want both challenges", computed)
	}
	if len(repo.leaderboardsMarked) != 2 {
		t.Fatalf("leaderboardsMarked = %v, want both challenges", repo.leaderboardsMarked)
	}
}

func TestLeaderboardSweepContinuesPastFailure(t *testing.T) {
	repo := newFakeChallengeRepo()
	repo.dueLeaderboard = []model.Challenge{{ID: 7}, {ID: 8}}
	computer := newFakeComputer()
	computer.fails[7] = errors.New("submissions unavailable")
	s := newTestScheduler(repo, computer, newFakeNotifier(), newFakeLocker())

	s.RunLeaderboardSweep(context.Background(), time.Now())

	// Challenge 7 failed: not marked, so the next sweep retries it.
	if len(repo.leaderboardsMarked) != 1 || repo.leaderboardsMarked[0] != 8 {
		t.Fatalf("leaderboardsMarked = %v, want only [8]", repo.leaderboardsMarked)
	}
}
