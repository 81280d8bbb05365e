package world

import "testing"

func TestCoordMap(t *testing.T) {
	cm := NewCoordMap[int]()

	if cm.Contains(0, 0) {
		t.Error("empty map must not contain (0,0)")
	}
	if _, ok := cm.Get(0, 0); ok {
		t.Error("Get on empty map must report absence")
	}

	cm.Insert(-3, 7, 42)
	if !cm.Contains(-3, 7) {
		t.Error("expected (-3,7) after insert")
	}
	if v, ok := cm.Get(-3, 7); !ok || v != 42 {
		t.Errorf("Get(-3,7) = %d,%v, want 42", v, ok)
	}
	if cm.Contains(7, -3) {
		t.Error("keys must not be symmetric")
	}

	cm.Insert(-3, 7, 43)
	if v, _ := cm.Get(-3, 7); v != 43 {
		t.Errorf("insert must replace: got %d, want 43", v)
	}
	if cm.Len() != 1 {
		t.Errorf("Len = %d, want 1", cm.Len())
	}
}
