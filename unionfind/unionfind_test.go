package unionfind

import "testing"

func allPolicies() []FindPolicy {
	return []FindPolicy{PathCompression, PathHalving, PathSplitting}
}

func TestFindIsIdentityOnFreshSet(t *testing.T) {
	for _, p := range allPolicies() {
		d := New(10, p)
		for i := 0; i < 10; i++ {
			if got := d.Find(i); got != i {
				t.Fatalf("policy %v: Find(%d) = %d, want %d", p, i, got, i)
			}
		}
	}
}

func clusterMembers() []int { return []int{2, 3, 4, 6} }

func TestUnionConnectsExactCluster(t *testing.T) {
	for _, p := range allPolicies() {
		d := New(10, p)
		d.Union(3, 6)
		d.Union(2, 4)
		d.Union(2, 3)

		cluster := clusterMembers()
		isMember := func(v int) bool {
			for _, m := range cluster {
				if m == v {
					return true
				}
			}
			return false
		}
		for i := 0; i < 10; i++ {
			for j := 0; j < 10; j++ {
				if isMember(i) && isMember(j) {
					if !d.AreConnected(i, j) {
						t.Fatalf("policy %v: expected %d<->%d connected", p, i, j)
					}
				} else if i != j && isMember(i) != isMember(j) {
					if d.AreConnected(i, j) {
						t.Fatalf("policy %v: expected %d<->%d disconnected", p, i, j)
					}
				}
			}
		}
	}
}

func TestComponentsDecreasesOnUnion(t *testing.T) {
	d := New(5, PathCompression)
	if d.Components() != 5 {
		t.Fatalf("Components() = %d, want 5", d.Components())
	}
	d.Union(0, 1)
	if d.Components() != 4 {
		t.Fatalf("Components() = %d, want 4", d.Components())
	}
	d.Union(0, 1)
	if d.Components() != 4 {
		t.Fatalf("repeated union changed Components(): got %d, want 4", d.Components())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := New(5, PathCompression)
	d.Union(0, 1)
	clone := d.Clone()
	d.Union(2, 3)
	if clone.AreConnected(2, 3) {
		t.Fatalf("clone observed a union made on the original after cloning")
	}
	if !clone.AreConnected(0, 1) {
		t.Fatalf("clone lost a union made before cloning")
	}
}

func TestUndoRestoresToSavePoint(t *testing.T) {
	for _, p := range allPolicies() {
		u := NewUndo(10, p)
		before := snapshot(u)
		u.SaveState()
		u.Union(0, 3)
		u.Union(2, 4)
		u.Union(0, 6)
		u.Union(9, 1)
		u.RestoreState()
		after := snapshot(u)
		if !equalSnapshots(before, after) {
			t.Fatalf("policy %v: restore did not return to the save point", p)
		}
	}
}

func TestUndoInterleavedWithFind(t *testing.T) {
	u := NewUndo(10, PathCompression)
	before := snapshot(u)
	u.SaveState()
	u.Union(3, 6)
	u.Find(3)
	u.Find(6)
	u.Union(2, 4)
	u.Find(2)
	u.Find(4)
	u.RestoreState()
	after := snapshot(u)
	if !equalSnapshots(before, after) {
		t.Fatalf("restore did not return to the save point after interleaved finds")
	}
}

func TestUndoNestedCheckpointsOnlyUnwindOne(t *testing.T) {
	u := NewUndo(6, PathCompression)
	u.Union(0, 1)
	mid := snapshot(u)
	u.SaveState()
	u.Union(2, 3)
	u.Union(4, 5)
	u.RestoreState()
	after := snapshot(u)
	if !equalSnapshots(mid, after) {
		t.Fatalf("restore unwound past its own save point")
	}
	if !u.AreConnected(0, 1) {
		t.Fatalf("restore undid a union made before its save point")
	}
}

func snapshot(u *UndoDisjointSet) []node {
	return append([]node(nil), u.set.nodes...)
}

func equalSnapshots(a, b []node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
