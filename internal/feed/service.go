package feed

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/wichananm65/kg-market-backend/internal/media"
)

// LikeResult is the entry's like state for one device after a toggle.
type LikeResult struct {
	EntryID string `json:"entryId"`
	Liked   bool   `json:"liked"`
	Likes   int    `json:"likes"`
}

type Service struct {
	repo     Repository
	media    media.Resolver
	likes    *LikeBook
	sessions *SessionStore
	log      *log.Helper
}

func NewService(repo Repository, resolver media.Resolver, threshold float64, logger log.Logger) *Service {
	return &Service{
		repo:     repo,
		media:    resolver,
		likes:    NewLikeBook(),
		sessions: NewSessionStore(threshold, logger),
		log:      log.NewHelper(log.With(logger, "module", "feed")),
	}
}

// List returns the feed with client-ready media URLs and local like counts.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i] = s.present(ctx, entries[i])
	}
	return entries, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Entry, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return Entry{}, err
	}
	return s.present(ctx, e), nil
}

func (s *Service) present(ctx context.Context, e Entry) Entry {
	e = s.likes.Apply(e)
	e.MediaURL = s.media.Resolve(ctx, e.MediaURL)
	if e.Thumbnail != nil {
		e.Thumbnail = ptrString(s.media.Resolve(ctx, *e.Thumbnail))
	}
	e.Author.Avatar = s.media.Resolve(ctx, e.Author.Avatar)
	return e
}

// OpenSession starts the device's feed session over the current feed, or
// re-syncs an existing one.
func (s *Service) OpenSession(deviceID string) (SessionState, error) {
	entries, err := s.repo.List()
	if err != nil {
		return SessionState{}, fmt.Errorf("open feed session: %w", err)
	}
	s.log.Debugf("open session for %s with %d entries", deviceID, len(entries))
	return s.sessions.Open(deviceID, entries), nil
}

func (s *Service) Session(deviceID string) (SessionState, error) {
	return s.sessions.Get(deviceID)
}

func (s *Service) CloseSession(deviceID string) error {
	return s.sessions.Close(deviceID)
}

func (s *Service) ReportVisibility(deviceID string, report Report) (SessionState, error) {
	return s.sessions.Update(deviceID, func(sess *Session) {
		sess.Controller().OnVisibilityChanged(report)
	})
}

func (s *Service) SetFocus(deviceID string, focused bool) (SessionState, error) {
	return s.sessions.Update(deviceID, func(sess *Session) {
		sess.Controller().SetFocus(focused)
	})
}

func (s *Service) ToggleLike(deviceID, entryID string) (LikeResult, error) {
	e, err := s.repo.GetByID(entryID)
	if err != nil {
		return LikeResult{}, err
	}
	liked := s.likes.Toggle(deviceID, entryID)
	return LikeResult{EntryID: entryID, Liked: liked, Likes: s.likes.Apply(e).Likes}, nil
}
