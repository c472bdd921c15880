package dialog

import (
	"sync"
	"time"

	"github.com/damn-devil/bath.book/pkg/types"
)

// State состояние диалога бронирования
type State string

const (
	StateIdle               State = "idle"
	StateAwaitingSlot       State = "awaiting_slot"
	StateAwaitingCabinCount State = "awaiting_cabin_count"
)

// Session диалоговая сессия одного пользователя.
// Живет отдельно от данных бронирований и истекает по TTL.
type Session struct {
	UserID    int64
	State     State
	Slot      types.TimeString // выбранный слот (заполнен в StateAwaitingCabinCount)
	Available int              // доступно кабин на момент выбора слота
	UpdatedAt time.Time
}

// SessionStore потокобезопасное in-memory хранилище сессий с TTL
type SessionStore struct {
	mu           sync.Mutex
	sessions     map[int64]*Session
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewSessionStore создает новое хранилище сессий
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:     make(map[int64]*Session),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (s *SessionStore) WithTimeProvider(tp TimeProvider) *SessionStore {
	s.timeProvider = tp
	return s
}

// Get возвращает сессию пользователя.
// Отсутствующая или просроченная сессия возвращается как Idle.
func (s *SessionStore) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()

	sess, ok := s.sessions[userID]
	if !ok || now.Sub(sess.UpdatedAt) > s.ttl {
		delete(s.sessions, userID)
		return &Session{UserID: userID, State: StateIdle, UpdatedAt: now}
	}

	copied := *sess
	return &copied
}

// Put сохраняет сессию
func (s *SessionStore) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.UpdatedAt = s.timeProvider.Now()
	s.sessions[sess.UserID] = sess
}

// Reset сбрасывает сессию пользователя в Idle
func (s *SessionStore) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}
