package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/interfaces"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or malformed session ids.
var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Session is the persisted state of one visitor's flow.
type Session struct {
	ID             string    `json:"id"`
	State          State     `json:"state"`
	Collected      int       `json:"collected"`
	UnlockReported bool      `json:"unlock_reported"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Transition is the outcome of applying an event. Unlocked is true only on
// the completion that first reaches the unlock threshold.
type Transition struct {
	Session  *Session `json:"session"`
	Unlocked bool     `json:"unlocked"`
}

// Service runs the session state machine over a key-value store.
type Service struct {
	kv        interfaces.KeyValueStorage
	threshold int
	logger    *common.Logger
	now       func() time.Time

	mu sync.Mutex
}

// NewService creates a session service. A threshold below 1 disables the
// unlock report.
func NewService(kv interfaces.KeyValueStorage, threshold int, logger *common.Logger) *Service {
	return &Service{
		kv:        kv,
		threshold: threshold,
		logger:    logger.OrSilent(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new session on the landing state.
func (s *Service) Create(ctx context.Context) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		State:     StateLanding,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	common.LoggerFor(ctx, s.logger).Debug().Str("session_id", sess.ID).Msg("session created")
	return sess, nil
}

// Get loads a session by id.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	raw, err := s.kv.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &sess, nil
}

// Apply moves the session through e and persists the result. A complete
// event adds one fortune to the session's collection.
func (s *Service) Apply(ctx context.Context, id string, e Event) (*Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := Next(sess.State, e)
	if err != nil {
		return nil, err
	}

	t := &Transition{Session: sess}
	sess.State = next
	sess.UpdatedAt = s.now()

	if e == EventComplete {
		sess.Collected++
		if s.threshold > 0 && sess.Collected >= s.threshold && !sess.UnlockReported {
			sess.UnlockReported = true
			t.Unlocked = true
		}
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	logger := common.LoggerFor(ctx, s.logger)
	logger.Debug().
		Str("session_id", sess.ID).
		Str("event", string(e)).
		Str("state", string(sess.State)).
		Int("collected", sess.Collected).
		Msg("session transition")
	if t.Unlocked {
		logger.Info().Str("session_id", sess.ID).Int("collected", sess.Collected).Msg("collection unlocked")
	}

	return t, nil
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, keyPrefix+id)
}

func (s *Service) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(ctx, keyPrefix+sess.ID, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
