package feed

import "sync"

// LikeBook keeps per-device like toggles in memory. Nothing is persisted;
// counts go back to the catalog values on restart.
type LikeBook struct {
	mu    sync.Mutex
	liked map[string]map[string]bool
	delta map[string]int
}

func NewLikeBook() *LikeBook {
	return &LikeBook{
		liked: map[string]map[string]bool{},
		delta: map[string]int{},
	}
}

// Toggle flips the device's like on the entry and returns the new state.
func (b *LikeBook) Toggle(deviceID, entryID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	byEntry, ok := b.liked[deviceID]
	if !ok {
		byEntry = map[string]bool{}
		b.liked[deviceID] = byEntry
	}
	if byEntry[entryID] {
		delete(byEntry, entryID)
		b.delta[entryID]--
		return false
	}
	byEntry[entryID] = true
	b.delta[entryID]++
	return true
}

func (b *LikeBook) Liked(deviceID, entryID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.liked[deviceID][entryID]
}

// Apply adds the local like delta to the entry's catalog count.
func (b *LikeBook) Apply(e Entry) Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	e.Likes += b.delta[e.ID]
	return e
}
