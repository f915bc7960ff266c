package domain

import "time"

type Urgency int

const (
	UrgencyCalm Urgency = iota
	UrgencyWarning
	UrgencyDanger
)

func (u Urgency) String() string {
	switch u {
	case UrgencyWarning:
		return "warning"
	case UrgencyDanger:
		return "danger"
	default:
		return "calm"
	}
}

func (s Session) idleMonitored() bool {
	return s.Mode == ModeWriting && s.Settings.KeystrokeTimeout > 0 && s.HasKeystroke()
}

// CheckIdle performs the destructive reset when the silence since the last
// keystroke exceeds the timeout: the body, the keystroke time and the writing
// time are all cleared together. The mode stays Writing.
func (s Session) CheckIdle(now time.Time) (Session, bool) {
	if !s.idleMonitored() {
		return s, false
	}
	if now.Sub(s.LastKeystroke) <= s.Settings.KeystrokeTimeout {
		return s, false
	}
	s.LastKeystroke = time.Time{}
	s.Timer = s.Timer.Reset()
	s.Body = ""
	s.Resets++
	return s, true
}

// Urgency is calm unless the idle monitor is active.
func (s Session) Urgency(now time.Time) Urgency {
	if !s.idleMonitored() {
		return UrgencyCalm
	}
	return UrgencyAt(now.Sub(s.LastKeystroke), s.Settings.KeystrokeTimeout)
}

// UrgencyAt grades silence against timeout: above 80% is danger, above 50%
// is warning.
func UrgencyAt(silence, timeout time.Duration) Urgency {
	if timeout <= 0 || silence <= 0 {
		return UrgencyCalm
	}
	switch fraction := float64(silence) / float64(timeout); {
	case fraction > 0.8:
		return UrgencyDanger
	case fraction > 0.5:
		return UrgencyWarning
	default:
		return UrgencyCalm
	}
}
