package model

// ChangeInsertMode says how an edit to an effective-dated record is applied.
type ChangeInsertMode string

const (
	// ModeCorrection mutates the existing dated version in place.
	ModeCorrection ChangeInsertMode = "correction"
	// ModeChangeInsert inserts a new version effective from the candidate
	// date, implicitly closing the prior version.
	ModeChangeInsert ChangeInsertMode = "change-insert"
)

// NeedsChangeInsertConfirm reports whether saving an edit with the given
// existing and candidate effective-start dates requires the user to choose
// between a correction and a change-insert.
//
// An unset candidate is always a plain correction. A set candidate over an
// unset existing date always prompts, even though there is no prior dated
// version to correct; the backend relies on the prompt in that case too.
func NeedsChangeInsertConfirm(existing, candidate Date) bool {
	if candidate.IsZero() {
		return false
	}
	if existing.IsZero() {
		return true
	}
	return candidate.After(existing)
}

// EffectiveParam returns the version selector to send as the `effective`
// query parameter on an update: the record's existing effective start, or
// the beginning-of-time sentinel when unset. Defaulting to "today" instead
// would scope the update to only future-dated rows.
func EffectiveParam(existing Date) Date {
	if existing.IsZero() {
		return Date{BOT}
	}
	return existing
}
