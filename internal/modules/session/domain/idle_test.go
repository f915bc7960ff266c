package domain_test

import (
	"testing"
	"time"

	"writingbuddy/internal/modules/session/domain"
)

func TestIdleResetAfterTimeout(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{KeystrokeTimeout: 5 * time.Second}), "draft", at(0))

	kept, reset := s.CheckIdle(at(5))
	if reset || kept.Body != "draft" {
		t.Fatalf("silence equal to the timeout must not reset")
	}

	s, reset = s.CheckIdle(at(6))
	if !reset {
		t.Fatalf("expected reset after 6s of silence")
	}
	if s.Body != "" || s.HasKeystroke() || s.Timer.Running() || s.Elapsed(at(7)) != 0 {
		t.Fatalf("reset must clear body, keystroke and timer: %+v", s)
	}
	if s.Mode != domain.ModeWriting {
		t.Fatalf("reset must keep writing mode, got %s", s.Mode)
	}
	if s.Resets != 1 {
		t.Fatalf("expected reset counter 1, got %d", s.Resets)
	}

	again, reset := s.CheckIdle(at(60))
	if reset || again != s {
		t.Fatalf("monitor must stay idle until the next keystroke")
	}
}

func TestIdleMonitorInactiveCases(t *testing.T) {
	t.Parallel()
	noTimeout := typeText(t, writing(domain.Settings{}), "x", at(0))
	if _, reset := noTimeout.CheckIdle(at(3600)); reset {
		t.Fatalf("no timeout configured must never reset")
	}

	noKeystroke := writing(domain.Settings{KeystrokeTimeout: time.Second})
	noKeystroke, _ = noKeystroke.Apply(domain.Enter(), at(0))
	if _, reset := noKeystroke.CheckIdle(at(3600)); reset {
		t.Fatalf("enter alone must not arm the monitor")
	}

	title := typeText(t, writing(domain.Settings{KeystrokeTimeout: time.Second}), "x", at(0))
	title, _ = title.Apply(domain.Escape(), at(0))
	if _, reset := title.CheckIdle(at(3600)); reset {
		t.Fatalf("title entry must never reset")
	}
}

func TestKeystrokeRearmsMonitor(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{KeystrokeTimeout: 5 * time.Second}), "a", at(0))
	s = typeText(t, s, "b", at(4))
	if _, reset := s.CheckIdle(at(8)); reset {
		t.Fatalf("keystroke at 4s must push the deadline")
	}
}

func TestUrgencyLevels(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{KeystrokeTimeout: 10 * time.Second}), "a", at(0))
	cases := []struct {
		now  time.Time
		want domain.Urgency
	}{
		{now: at(0), want: domain.UrgencyCalm},
		{now: at(4), want: domain.UrgencyCalm},
		{now: at(5), want: domain.UrgencyCalm},
		{now: at(6), want: domain.UrgencyWarning},
		{now: at(8), want: domain.UrgencyWarning},
		{now: at(9), want: domain.UrgencyDanger},
	}
	for _, tc := range cases {
		if got := s.Urgency(tc.now); got != tc.want {
			t.Fatalf("urgency at %s: expected %s, got %s", tc.now.Sub(t0), tc.want, got)
		}
	}

	if got := writing(domain.Settings{KeystrokeTimeout: 10 * time.Second}).Urgency(at(9)); got != domain.UrgencyCalm {
		t.Fatalf("no keystroke yet must be calm, got %s", got)
	}
	if got := domain.UrgencyAt(time.Hour, 0); got != domain.UrgencyCalm {
		t.Fatalf("no timeout must be calm, got %s", got)
	}
}
