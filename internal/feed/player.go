package feed

// Player is the media playback collaborator. Calls are fire-and-forget and
// must be idempotent.
type Player interface {
	Play(entryID string)
	Pause(entryID string)
}

// Handle is an opaque per-entry player owned by the playback side.
type Handle interface {
	Play()
	Pause()
}

// HandleRegistry maps entry ids to their handles and implements Player by
// lookup. Unknown ids are ignored. It is not safe for concurrent use; a
// session owns exactly one registry.
type HandleRegistry struct {
	handles map[string]Handle
}

func NewHandleRegistry() *HandleRegistry {
	return &HandleRegistry{handles: map[string]Handle{}}
}

func (r *HandleRegistry) Register(entryID string, h Handle) {
	r.handles[entryID] = h
}

func (r *HandleRegistry) Unregister(entryID string) {
	delete(r.handles, entryID)
}

func (r *HandleRegistry) Lookup(entryID string) (Handle, bool) {
	h, ok := r.handles[entryID]
	return h, ok
}

func (r *HandleRegistry) Play(entryID string) {
	if h, ok := r.handles[entryID]; ok {
		h.Play()
	}
}

func (r *HandleRegistry) Pause(entryID string) {
	if h, ok := r.handles[entryID]; ok {
		h.Pause()
	}
}

// StateHandle records what it was told to do. Sessions use it to report
// playback back to the client that renders the video.
type StateHandle struct {
	playing bool
	plays   int
	pauses  int
}

func (h *StateHandle) Play() {
	h.playing = true
	h.plays++
}

func (h *StateHandle) Pause() {
	h.playing = false
	h.pauses++
}

func (h *StateHandle) Playing() bool { return h.playing }
