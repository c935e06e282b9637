package session

import "testing"

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore()
	a := store.GetOrCreate(1)
	if a == nil || a.Phase != PhaseIdle {
		t.Fatalf("expected idle session, got %+v", a)
	}
	b := store.GetOrCreate(1)
	if a != b {
		t.Fatal("expected the same session instance for repeated lookups")
	}
	if store.InProgress(1) {
		t.Fatal("idle session must not report in progress")
	}
}

func TestStoreInProgress(t *testing.T) {
	store := NewStore()
	if store.InProgress(5) {
		t.Fatal("unknown user must not report in progress")
	}
	sess := store.GetOrCreate(5)
	sess.Phase = PhaseAwaitingCheckIn
	if !store.InProgress(5) {
		t.Fatal("session with an active phase must report in progress")
	}
}

func TestStoreResetKeepsName(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate(7)
	sess.Name = "Alex"
	sess.Phase = PhaseAwaitingAdults
	sess.Criteria.City = "Paris"
	sess.Buffer = NewBuffer([]Listing{{ID: "1"}})

	got := store.Reset(7)
	if got != sess {
		t.Fatal("reset must reuse the session instance")
	}
	if got.Phase != PhaseIdle {
		t.Fatalf("phase after reset = %s, want idle", got.Phase)
	}
	if got.Name != "Alex" {
		t.Fatalf("name after reset = %q, want Alex", got.Name)
	}
	if got.Criteria.City != "" || got.Buffer != nil {
		t.Fatal("search state must be cleared on reset")
	}
}

func TestBufferOrderAndRemove(t *testing.T) {
	buf := NewBuffer([]Listing{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	})
	if buf.Len() != 4 {
		t.Fatalf("len = %d, want 4", buf.Len())
	}

	head := buf.Head(2)
	if len(head) != 2 || head[0].ID != "a" || head[1].ID != "b" {
		t.Fatalf("unexpected head: %+v", head)
	}

	buf.Remove([]string{"a", "c", "nope"})
	if buf.Len() != 2 {
		t.Fatalf("len after remove = %d, want 2", buf.Len())
	}
	rest := buf.Head(10)
	if rest[0].ID != "b" || rest[1].ID != "d" {
		t.Fatalf("remove must keep relative order, got %+v", rest)
	}
	if buf.Get("a") != nil {
		t.Fatal("removed listing still reachable by id")
	}
}

func TestBufferSkipsDuplicatesAndEmptyIDs(t *testing.T) {
	buf := NewBuffer([]Listing{
		{ID: "x", Name: "first"}, {ID: ""}, {ID: "x", Name: "second"},
	})
	if buf.Len() != 1 {
		t.Fatalf("len = %d, want 1", buf.Len())
	}
	if got := buf.Get("x"); got == nil || got.Name != "first" {
		t.Fatalf("duplicate id must keep first occurrence, got %+v", got)
	}
}

func TestBufferHeadDoesNotConsume(t *testing.T) {
	buf := NewBuffer([]Listing{{ID: "a"}, {ID: "b"}})
	_ = buf.Head(2)
	if buf.Len() != 2 {
		t.Fatalf("head must not consume, len = %d", buf.Len())
	}
}
