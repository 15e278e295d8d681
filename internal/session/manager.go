package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/algo-odyssey/backend/config"
	"github.com/algo-odyssey/backend/internal/dto"
	"github.com/algo-odyssey/backend/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrBlocked rejects a session start for an actively blocked identity,
	// regardless of any other state.
	ErrBlocked = errors.New("identity is blocked")
	// ErrSessionNotFound covers unknown and already-ended sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionEnded rejects signals for a session in a terminal state.
	ErrSessionEnded = errors.New("session has ended")
)

// blockThreshold is the violation count at which a session becomes Blocked.
const blockThreshold = 3

// Event is one discrete violation signal. The event source is responsible
// for debouncing rapid repeats of the same physical trigger.
type Event struct {
	Kind     model.ViolationKind
	Detail   string
	Severity *float64
}

// Blocker is the slice of the block registry the aggregator needs.
type Blocker interface {
	Block(email, reason string) error
	IsBlocked(email string) (bool, error)
}

// ViolationSink appends violation records; it never mutates them.
type ViolationSink interface {
	Create(record *model.ViolationRecord) error
}

// Store persists session lifecycle state.
type Store interface {
	Create(session *model.Session) error
	End(id uuid.UUID, status model.SessionStatus) error
}

// FaceChecker classifies one identity verification cycle.
type FaceChecker interface {
	Check(ctx context.Context, userID uint, frame []byte) (model.ProctorStatus, float64, error)
}

// Session is the runtime state of one active proctored attempt. The
// violation counter is owned by a single consumer goroutine; every signal
// source publishes to the events channel instead of touching the counter.
type Session struct {
	ID          uuid.UUID
	UserID      uint
	Email       string
	ChallengeID uint
	StartedAt   time.Time

	events chan Event
	cancel context.CancelFunc

	mu       sync.Mutex
	frame    []byte
	count    int
	warnings int
	status   model.SessionStatus
}

func (s *Session) setStatus(status model.SessionStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// takeFrame consumes the latest uploaded frame so a stale capture is never
// verified twice.
func (s *Session) takeFrame() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := s.frame
	s.frame = nil
	return frame
}

// Manager owns all active sessions and applies violation transitions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	blocks     Blocker
	violations ViolationSink
	store      Store
	checker    FaceChecker

	warmup   time.Duration
	interval time.Duration
}

func NewManager(blocks Blocker, violations ViolationSink, store Store, checker FaceChecker, cfg *config.Config) *Manager {
	return &Manager{
		sessions:   make(map[uuid.UUID]*Session),
		blocks:     blocks,
		violations: violations,
		store:      store,
		checker:    checker,
		warmup:     cfg.Proctor.WarmupDelay,
		interval:   cfg.Proctor.CheckInterval,
	}
}

// Start opens a proctored session for user on a challenge. A blocked
// identity is rejected here no matter what any client-side state says.
func (m *Manager) Start(ctx context.Context, user *model.User, challengeID uint) (*Session, error) {
	blocked, err := m.blocks.IsBlocked(user.Email)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlocked
	}

	sess := &Session{
		ID:          uuid.New(),
		UserID:      user.ID,
		Email:       user.Email,
		ChallengeID: challengeID,
		StartedAt:   time.Now(),
		events:      make(chan Event, 64),
		status:      model.SessionActive,
	}
	if err := m.store.Create(&model.Session{
		ID:          sess.ID,
		UserID:      sess.UserID,
		ChallengeID: sess.ChallengeID,
		Status:      model.SessionActive,
		StartedAt:   sess.StartedAt,
	}); err != nil {
		return nil, err
	}

	sessCtx, cancel := context.WithCancel(ctx)
	sess.cancel = cancel

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	go m.consume(sessCtx, sess)
	go m.verifyLoop(sessCtx, sess)

	log.Info().Str("sessionID", sess.ID.String()).Uint("userID", user.ID).
		Uint("challengeID", challengeID).Msg("Session started")
	return sess, nil
}

// Raise publishes one violation signal into the session's event channel.
func (m *Manager) Raise(id uuid.UUID, ev Event) error {
	sess, err := m.Get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	active := sess.status == model.SessionActive
	sess.mu.Unlock()
	if !active {
		return ErrSessionEnded
	}
	select {
	case sess.events <- ev:
		return nil
	default:
	}
	// The consumer stops draining once the session turns terminal, so a
	// full buffer means the session just blocked under this burst or enough
	// signals are already queued to cross the threshold; dropping this one
	// cannot change the outcome, and blocking here would park the caller.
	sess.mu.Lock()
	active = sess.status == model.SessionActive
	sess.mu.Unlock()
	if !active {
		return ErrSessionEnded
	}
	log.Warn().Str("sessionID", sess.ID.String()).Str("detail", ev.Detail).
		Msg("Violation buffer full, signal dropped")
	return nil
}

// StoreFrame keeps the latest webcam frame for the next verification cycle.
func (m *Manager) StoreFrame(id uuid.UUID, frame []byte) error {
	sess, err := m.Get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	sess.frame = frame
	sess.mu.Unlock()
	return nil
}

func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Snapshot reports the session state the client polls for warnings.
func (m *Manager) Snapshot(id uuid.UUID) (*dto.SessionStateResponse, error) {
	sess, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return &dto.SessionStateResponse{
		ID:             sess.ID,
		UserID:         sess.UserID,
		ChallengeID:    sess.ChallengeID,
		Status:         sess.status,
		ViolationCount: sess.count,
		Warnings:       sess.warnings,
		StartedAt:      sess.StartedAt,
	}, nil
}

// End terminates a session normally (submission, logout, abandonment). The
// violation counter dies with the session; only a block outlives it.
func (m *Manager) End(id uuid.UUID, status model.SessionStatus) error {
	sess, err := m.Get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	if sess.status != model.SessionActive {
		sess.mu.Unlock()
		// Already terminal (blocked): the capture halt and store write
		// happened at the transition. Dropping the entry here is the
		// client's acknowledgement after its final poll.
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		log.Info().Str("sessionID", id.String()).Msg("Terminal session acknowledged and released")
		return nil
	}
	sess.status = status
	sess.mu.Unlock()

	sess.cancel()
	if err := m.store.End(id, status); err != nil {
		log.Error().Err(err).Str("sessionID", id.String()).Msg("Failed to persist session end")
	}
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	log.Info().Str("sessionID", id.String()).Str("status", string(status)).Msg("Session ended")
	return nil
}

// consume is the single goroutine that owns the violation counter. Every
// transition, including the threshold check and the block side effect, runs
// here sequentially, so two near-simultaneous signals can never both fire
// the block.
func (m *Manager) consume(ctx context.Context, sess *Session) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-sess.events:
			if m.apply(sess, ev) {
				return
			}
		}
	}
}

// apply handles one signal; it reports true when the session reached the
// terminal Blocked state.
func (m *Manager) apply(sess *Session, ev Event) bool {
	if err := m.violations.Create(&model.ViolationRecord{
		UserID:      sess.UserID,
		ChallengeID: sess.ChallengeID,
		Kind:        ev.Kind,
		Detail:      ev.Detail,
		Severity:    ev.Severity,
	}); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID.String()).Msg("Failed to append violation record")
	}

	sess.mu.Lock()
	sess.count++
	count := sess.count
	if count < blockThreshold {
		sess.warnings++
	}
	sess.mu.Unlock()

	if count < blockThreshold {
		log.Warn().Str("sessionID", sess.ID.String()).Int("count", count).
			Str("detail", ev.Detail).Msg("Violation warning issued")
		return false
	}

	// Third signal: terminal for this session. Block first, then halt
	// capture and the session itself.
	if err := m.blocks.Block(sess.Email, "Malpractice detected automatically"); err != nil {
		log.Error().Err(err).Str("email", sess.Email).Msg("Failed to write block record")
	}
	sess.setStatus(model.SessionBlocked)
	sess.cancel()
	if err := m.store.End(sess.ID, model.SessionBlocked); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID.String()).Msg("Failed to persist blocked session")
	}

	log.Warn().Str("sessionID", sess.ID.String()).Str("email", sess.Email).
		Msg("Violation threshold reached, session blocked")
	return true
}

// verifyLoop runs the identity verification cadence: one warm-up delay, a
// first check as soon as it elapses, then fixed-interval checks against the
// latest uploaded frame. It never touches
// the counter directly; outcomes are published as events like any other
// signal source.
func (m *Manager) verifyLoop(ctx context.Context, sess *Session) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(m.warmup):
	}
	m.verifyOnce(ctx, sess)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.verifyOnce(ctx, sess)
		}
	}
}

func (m *Manager) verifyOnce(ctx context.Context, sess *Session) {
	frame := sess.takeFrame()
	if len(frame) == 0 {
		// Transient capture failure; skip this cycle rather than punish it.
		return
	}

	status, distance, err := m.checker.Check(ctx, sess.UserID, frame)
	if err != nil {
		// Comparator unconfigured or no reference descriptor: not the
		// student's doing, so it never counts against them.
		log.Error().Err(err).Str("sessionID", sess.ID.String()).Msg("Identity check unavailable")
		return
	}
	if status == model.ProctorOK {
		return
	}

	log.Warn().Str("sessionID", sess.ID.String()).Str("status", string(status)).
		Float64("distance", distance).Msg("Identity check flagged")
	if err := m.Raise(sess.ID, Event{
		Kind:   model.ViolationIdentityMismatch,
		Detail: string(status),
	}); err != nil && !errors.Is(err, ErrSessionEnded) {
		log.Error().Err(err).Str("sessionID", sess.ID.String()).Msg("Failed to raise identity violation")
	}
}
