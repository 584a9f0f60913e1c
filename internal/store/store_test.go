package store

import (
	"testing"
	"time"

	"github.com/quizagent/quizagent-backend/internal/quiz"
)

func TestCreateAndWith(t *testing.T) {
	st := New(time.Hour)
	v := st.Create()
	if v.ID == "" {
		t.Fatal("empty session id")
	}
	if v.Stage != quiz.StageUpload {
		t.Fatalf("stage = %q, want %q", v.Stage, quiz.StageUpload)
	}

	err := st.With(v.ID, func(s *quiz.Session) error {
		if s.ID != v.ID {
			t.Fatalf("session id = %q, want %q", s.ID, v.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
}

func TestWithUnknownID(t *testing.T) {
	st := New(time.Hour)
	err := st.With("missing", func(*quiz.Session) error { return nil })
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	st := New(time.Hour)
	v := st.Create()
	st.Delete(v.ID)
	if err := st.With(v.ID, func(*quiz.Session) error { return nil }); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSweepRemovesExpired(t *testing.T) {
	st := New(10 * time.Millisecond)
	stale := st.Create()
	time.Sleep(20 * time.Millisecond)
	fresh := st.Create()

	st.sweep()

	if err := st.With(stale.ID, func(*quiz.Session) error { return nil }); err != ErrNotFound {
		t.Fatalf("stale session survived sweep: %v", err)
	}
	if err := st.With(fresh.ID, func(*quiz.Session) error { return nil }); err != nil {
		t.Fatalf("fresh session swept: %v", err)
	}
	if st.Len() != 1 {
		t.Fatalf("len = %d, want 1", st.Len())
	}
}
