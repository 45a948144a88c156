package model

// HistoryItem is one effective-dated version of an entity as returned by
// the tracking-history endpoint. Either end of the range may be open.
type HistoryItem struct {
	EffectiveStart Date `json:"effective_start,omitzero"`
	EffectiveEnd   Date `json:"effective_end,omitzero"`
}

// Effective returns the date a caller should reload the entity as of when
// this version is picked: the start when set, otherwise the end.
func (h HistoryItem) Effective() Date {
	if !h.EffectiveStart.IsZero() {
		return h.EffectiveStart
	}
	return h.EffectiveEnd
}

// NoHistory reports whether the item list amounts to no history worth
// showing: no versions at all, or a single version open at both ends.
func NoHistory(items []HistoryItem) bool {
	if len(items) == 0 {
		return true
	}
	return len(items) == 1 && items[0].EffectiveStart.IsZero() && items[0].EffectiveEnd.IsZero()
}
