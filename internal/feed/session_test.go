package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kg-market-backend/internal/logging"
)

func TestSessionStore_UnknownDevice(t *testing.T) {
	st := NewSessionStore(50, logging.Discard())

	_, err := st.Get("dev-1")
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, st.Close("dev-1"), ErrSessionNotFound)
}

func TestSessionStore_ReportsPlayback(t *testing.T) {
	st := NewSessionStore(50, logging.Discard())

	state := st.Open("dev-1", SampleEntries())
	require.Equal(t, 0, state.ActiveIndex)
	require.True(t, state.HasActive)
	require.False(t, state.Focused)
	require.Len(t, state.Entries, 5)

	state, err := st.Update("dev-1", func(s *Session) { s.Controller().SetFocus(true) })
	require.NoError(t, err)
	require.True(t, state.Entries[0].ShouldPlay)
	require.True(t, state.Entries[0].Playing)

	state, err = st.Update("dev-1", func(s *Session) {
		s.Controller().OnVisibilityChanged(Report{{Index: 1, VisiblePercent: 75}})
	})
	require.NoError(t, err)
	require.Equal(t, 1, state.ActiveIndex)
	require.False(t, state.Entries[0].Playing)
	require.True(t, state.Entries[1].ShouldPlay)
	require.False(t, state.Entries[1].Playing, "image entries never report playing")
}

func TestSessionStore_ReopenKeepsPosition(t *testing.T) {
	st := NewSessionStore(50, logging.Discard())
	st.Open("dev-1", SampleEntries())
	_, err := st.Update("dev-1", func(s *Session) {
		s.Controller().SetFocus(true)
		s.Controller().OnVisibilityChanged(Report{{Index: 2, VisiblePercent: 90}})
	})
	require.NoError(t, err)

	state := st.Open("dev-1", SampleEntries()[:2])
	require.Equal(t, 2, state.ActiveIndex)
	require.False(t, state.HasActive)
	require.Len(t, state.Entries, 2)

	// devices do not share sessions
	other := st.Open("dev-2", SampleEntries())
	require.Equal(t, 0, other.ActiveIndex)
}

func TestSession_SetEntriesUnregistersRemovedHandles(t *testing.T) {
	s := newSession(SampleEntries(), 50, logging.Discard())
	s.Controller().SetFocus(true)
	s.Controller().OnVisibilityChanged(Report{{Index: 2, VisiblePercent: 90}})

	h, ok := s.handles.Lookup("3")
	require.True(t, ok)
	require.True(t, h.(*StateHandle).Playing())

	s.SetEntries(SampleEntries()[:2])
	require.False(t, h.(*StateHandle).Playing())
	_, ok = s.handles.Lookup("3")
	require.False(t, ok)
	_, ok = s.handles.Lookup("1")
	require.True(t, ok)
}

func TestLikeBook_Toggle(t *testing.T) {
	b := NewLikeBook()
	e := SampleEntries()[0]

	require.True(t, b.Toggle("dev-1", e.ID))
	require.Equal(t, e.Likes+1, b.Apply(e).Likes)
	require.True(t, b.Liked("dev-1", e.ID))

	require.True(t, b.Toggle("dev-2", e.ID))
	require.Equal(t, e.Likes+2, b.Apply(e).Likes)

	require.False(t, b.Toggle("dev-1", e.ID))
	require.Equal(t, e.Likes+1, b.Apply(e).Likes)
	require.False(t, b.Liked("dev-1", e.ID))
}
