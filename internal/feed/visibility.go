package feed

// ViewToken describes one entry currently inside the viewport.
type ViewToken struct {
	Index          int     `json:"index"`
	VisiblePercent float64 `json:"visiblePercent"`
}

// Qualifies reports whether the token is visible enough to become active.
func (t ViewToken) Qualifies(threshold float64) bool {
	return t.Index >= 0 && t.VisiblePercent >= threshold
}

// Report is the ordered list of visible entries produced by one scroll
// event. It is consumed once.
type Report []ViewToken

// Reduce returns the next active index. The first qualifying token in report
// order wins. With no qualifying token the active index is kept.
func Reduce(active int, report Report, threshold float64) int {
	for _, t := range report {
		if t.Qualifies(threshold) {
			return t.Index
		}
	}
	return active
}
