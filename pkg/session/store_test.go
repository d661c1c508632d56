package session

import (
	"fmt"
	"testing"
)

func TestGetUnknownSession(t *testing.T) {
	s := NewStore()
	if got := s.Get("nope"); got != nil {
		t.Errorf("Get unknown = %+v, want nil", got)
	}
}

func TestUpdateCreatesAndMarks(t *testing.T) {
	s := NewStore()
	s.Update("abc", func(sess *Session) {
		sess.MarkShown(KindProduct, "tile-1", "tile-2")
		sess.LastIntent = "search_product"
		sess.LastQuery = "blue tiles"
	})

	got := s.Get("abc")
	if got == nil {
		t.Fatal("session should exist after Update")
	}
	if !got.WasShown(KindProduct, "tile-1") || !got.WasShown(KindProduct, "tile-2") {
		t.Error("shown handles missing")
	}
	if got.WasShown(KindProduct, "tile-3") {
		t.Error("unshown handle reported as shown")
	}
	if got.WasShown(KindBlog, "tile-1") {
		t.Error("kinds must not share shown sets")
	}
	if got.LastIntent != "search_product" || got.LastQuery != "blue tiles" {
		t.Errorf("last intent/query not kept: %+v", got)
	}
}

func TestMarkShownIdempotentUnion(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		s.Update("abc", func(sess *Session) {
			sess.MarkShown(KindProduct, "tile-1")
		})
	}
	got := s.Get("abc")
	if len(got.Shown[KindProduct]) != 1 {
		t.Errorf("shown set size = %d, want 1", len(got.Shown[KindProduct]))
	}
}

func TestShownSetIsACopy(t *testing.T) {
	s := NewStore()
	s.Update("abc", func(sess *Session) {
		sess.MarkShown(KindProduct, "tile-1")
	})

	set := s.ShownSet("abc", KindProduct)
	set["tile-2"] = true

	if s.Get("abc").WasShown(KindProduct, "tile-2") {
		t.Error("mutating the copy must not affect the session")
	}
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	s := NewStoreWithCapacity(3)
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("s%d", i)
		s.Update(id, func(sess *Session) { sess.LastQuery = id })
	}

	// Touch s0 so s1 becomes the least recently used.
	s.Get("s0")

	s.Update("s3", func(sess *Session) { sess.LastQuery = "s3" })

	if s.Get("s1") != nil {
		t.Error("least recently used session should have been evicted")
	}
	for _, id := range []string{"s0", "s2", "s3"} {
		if s.Get(id) == nil {
			t.Errorf("session %s should have survived eviction", id)
		}
	}
}
