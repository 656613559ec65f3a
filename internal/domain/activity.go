package domain

// Activity represents one extracurricular offering and its roster.
// Activities are keyed by their human-readable name; the name itself is
// not stored on the record.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity so callers can hand out
// snapshots without exposing the underlying participant slice.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return &Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
