package feed

import (
	"errors"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
)

var ErrSessionNotFound = errors.New("feed session not found")

// PlaybackState is the derived and applied playback of one entry.
type PlaybackState struct {
	EntryID    string    `json:"entryId"`
	Index      int       `json:"index"`
	Type       MediaKind `json:"type"`
	ShouldPlay bool      `json:"shouldPlay"`
	Playing    bool      `json:"playing"`
}

// SessionState is what a client receives after every feed event.
type SessionState struct {
	ActiveIndex int             `json:"activeIndex"`
	HasActive   bool            `json:"hasActive"`
	Focused     bool            `json:"focused"`
	Threshold   float64         `json:"threshold"`
	Entries     []PlaybackState `json:"entries"`
}

// Session pairs a controller with the handle registry it plays through.
type Session struct {
	controller *Controller
	handles    *HandleRegistry
}

func newSession(entries []Entry, threshold float64, logger log.Logger) *Session {
	s := &Session{handles: NewHandleRegistry()}
	s.syncHandles(entries)
	s.controller = NewController(entries, threshold, s.handles, logger)
	return s
}

func (s *Session) Controller() *Controller { return s.controller }

// SetEntries registers handles for new video entries before the controller
// sees them, and drops handles of removed entries afterwards so they still
// receive their final pause.
func (s *Session) SetEntries(entries []Entry) {
	s.syncHandles(entries)
	s.controller.SetEntries(entries)

	keep := map[string]bool{}
	for _, e := range entries {
		keep[e.ID] = true
	}
	for id := range s.handles.handles {
		if !keep[id] {
			s.handles.Unregister(id)
		}
	}
}

func (s *Session) syncHandles(entries []Entry) {
	for _, e := range entries {
		if !e.IsVideo() {
			continue
		}
		if _, ok := s.handles.Lookup(e.ID); !ok {
			s.handles.Register(e.ID, &StateHandle{})
		}
	}
}

func (s *Session) State() SessionState {
	c := s.controller
	_, hasActive := c.Active()
	state := SessionState{
		ActiveIndex: c.ActiveIndex(),
		HasActive:   hasActive,
		Focused:     c.Focused(),
		Threshold:   c.Threshold(),
		Entries:     make([]PlaybackState, 0, len(c.Entries())),
	}
	for i, e := range c.Entries() {
		ps := PlaybackState{EntryID: e.ID, Index: i, Type: e.Type, ShouldPlay: c.ShouldPlay(i)}
		if h, ok := s.handles.Lookup(e.ID); ok {
			if sh, ok := h.(*StateHandle); ok {
				ps.Playing = sh.Playing()
			}
		}
		state.Entries = append(state.Entries, ps)
	}
	return state
}

// SessionStore holds one session per device. Sessions are only touched
// under the store's lock.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	threshold float64
	logger    log.Logger
}

func NewSessionStore(threshold float64, logger log.Logger) *SessionStore {
	return &SessionStore{
		sessions:  map[string]*Session{},
		threshold: threshold,
		logger:    logger,
	}
}

// Open creates the device's session, or re-syncs an existing one with
// entries while keeping its active index and focus.
func (st *SessionStore) Open(deviceID string, entries []Entry) SessionState {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[deviceID]; ok {
		s.SetEntries(entries)
		return s.State()
	}
	s := newSession(entries, st.threshold, log.With(st.logger, "device", deviceID))
	st.sessions[deviceID] = s
	return s.State()
}

// Update runs fn against the device's session under the store lock.
func (st *SessionStore) Update(deviceID string, fn func(*Session)) (SessionState, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[deviceID]
	if !ok {
		return SessionState{}, ErrSessionNotFound
	}
	fn(s)
	return s.State(), nil
}

func (st *SessionStore) Get(deviceID string) (SessionState, error) {
	return st.Update(deviceID, func(*Session) {})
}

func (st *SessionStore) Close(deviceID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[deviceID]
	if !ok {
		return ErrSessionNotFound
	}
	s.controller.SetFocus(false)
	delete(st.sessions, deviceID)
	return nil
}
