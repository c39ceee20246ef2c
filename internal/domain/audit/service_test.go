package audit

import (
	"context"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	entries   []Entry
	lastLimit int
}

func (r *testRepo) Record(ctx context.Context, e Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *testRepo) List(ctx context.Context, limit int) ([]Entry, error) {
	r.lastLimit = limit

	out := make([]Entry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Record_FillsIDAndTimestamp(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	e, err := svc.Record(context.Background(), RecordInput{
		Action:   ActionDeleted,
		AnimalID: "  A746874  ",
		Deleted:  1,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected generated entry id")
	}
	if !e.At.Equal(now) {
		t.Fatalf("expected At = now, got %v", e.At)
	}
	if e.AnimalID != "A746874" {
		t.Fatalf("expected trimmed animal id, got %q", e.AnimalID)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(repo.entries))
	}
}

func TestService_Record_RequiresAction(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), RecordInput{AnimalID: "A1"})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatalf("expected nothing stored, got %d entries", len(repo.entries))
	}
}

func TestService_List_ClampsLimit(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	cases := []struct {
		in   int
		want int
	}{
		{0, 50},
		{-7, 50},
		{10, 10},
		{200, 200},
		{1000, 200},
	}

	for _, tc := range cases {
		if _, err := svc.List(context.Background(), tc.in); err != nil {
			t.Fatalf("List(%d) returned error: %v", tc.in, err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("List(%d): expected repo limit %d, got %d", tc.in, tc.want, repo.lastLimit)
		}
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return at }
		if _, err := svc.Record(context.Background(), RecordInput{Action: ActionCreated, AnimalID: "A1"}); err != nil {
			t.Fatalf("Record #%d error: %v", i, err)
		}
	}

	got, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if !got[0].At.After(got[1].At) {
		t.Fatalf("expected newest first, got %v then %v", got[0].At, got[1].At)
	}
}
