package feed

import "github.com/go-kratos/kratos/v2/log"

// Controller derives the single active feed entry from visibility reports
// and drives playback from it together with the host's focus signal.
//
// An entry should play iff it is the active entry and the host has focus.
// Every input change re-evaluates that rule and issues a Play or Pause for
// each entry whose outcome changed. A Controller is owned by one goroutine.
type Controller struct {
	threshold float64
	player    Player
	log       *log.Helper

	entries []Entry
	active  int
	focused bool
	// stale is set once the active index fell past the end of the entries
	// and stays set until the next visibility report.
	stale bool

	// playing is the id of the entry last told to play, "" when none.
	playing string
}

// NewController starts with active index 0 and without focus.
func NewController(entries []Entry, threshold float64, player Player, logger log.Logger) *Controller {
	c := &Controller{
		threshold: threshold,
		player:    player,
		log:       log.NewHelper(log.With(logger, "module", "feed/controller")),
	}
	c.entries = append([]Entry(nil), entries...)
	return c
}

// OnVisibilityChanged applies one viewport report.
func (c *Controller) OnVisibilityChanged(report Report) {
	next := Reduce(c.active, report, c.threshold)
	if next != c.active {
		c.log.Debugf("active entry %d -> %d", c.active, next)
	}
	c.active = next
	c.stale = false
	c.reconcile()
}

// SetFocus records focus gained (true) or lost (false) by the hosting screen.
func (c *Controller) SetFocus(focused bool) {
	c.focused = focused
	c.reconcile()
}

// SetEntries replaces the entry sequence. If the active index now points
// past the end there is no active entry until the next report.
func (c *Controller) SetEntries(entries []Entry) {
	c.entries = append([]Entry(nil), entries...)
	if c.active >= len(c.entries) {
		c.stale = true
	}
	c.reconcile()
}

func (c *Controller) ActiveIndex() int { return c.active }

func (c *Controller) Focused() bool { return c.focused }

func (c *Controller) Threshold() float64 { return c.threshold }

func (c *Controller) Entries() []Entry { return c.entries }

// Active returns the active entry, if the active index is in range and has
// not been invalidated by a shrink since the last report.
func (c *Controller) Active() (Entry, bool) {
	if c.stale || c.active < 0 || c.active >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[c.active], true
}

// ShouldPlay reports whether the entry at index should be playing.
func (c *Controller) ShouldPlay(index int) bool {
	_, ok := c.Active()
	return ok && c.focused && index == c.active
}

func (c *Controller) reconcile() {
	want := ""
	if e, ok := c.Active(); ok && c.focused && e.IsVideo() {
		want = e.ID
	}
	if want == c.playing {
		return
	}
	if c.playing != "" {
		c.log.Debugf("pause %s", c.playing)
		c.player.Pause(c.playing)
	}
	if want != "" {
		c.log.Debugf("play %s", want)
		c.player.Play(want)
	}
	c.playing = want
}
