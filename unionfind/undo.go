package unionfind

// historyEntry is one flat log entry: either a recorded prior node state
// (a Change) or a SavePoint marker. A single flat slice is enough — Karger–
// Stein never needs to undo past a SavePoint it didn't itself push, so no
// tree of checkpoints is needed.
type historyEntry struct {
	isSavePoint           bool
	index                 int
	priorState            node
	componentsDecremented bool
}

var savePointEntry = historyEntry{isSavePoint: true}

// UndoDisjointSet wraps a DisjointSet with an undo log: SaveState marks a
// checkpoint, RestoreState rewinds every change back to the most recent
// checkpoint (inclusive), in O(changes since that checkpoint).
type UndoDisjointSet struct {
	set     *DisjointSet
	history []historyEntry
}

// NewUndo allocates an UndoDisjointSet of n singleton components.
func NewUndo(n int, policy FindPolicy) *UndoDisjointSet {
	return &UndoDisjointSet{set: New(n, policy)}
}

// Components returns the current number of components.
func (u *UndoDisjointSet) Components() int { return u.set.Components() }

// Find returns the representative of id's component. Before the path is
// rewritten, every node on it whose parent is not the root (the only nodes
// any FindPolicy can re-point) is logged, so RestoreState undoes Find's path
// rewriting as well as Union's merges.
func (u *UndoDisjointSet) Find(id int) int {
	nodes := u.set.nodes
	for x := id; nodes[x].id != x && nodes[nodes[x].id].id != nodes[x].id; x = nodes[x].id {
		u.history = append(u.history, historyEntry{index: x, priorState: nodes[x]})
	}
	return u.set.Find(id)
}

// AreConnected reports whether i and j share a component.
func (u *UndoDisjointSet) AreConnected(i, j int) bool { return u.Find(i) == u.Find(j) }

// Union merges the components containing i and j, logging enough state to
// undo the merge later. A no-op (and no log entry) if already connected.
func (u *UndoDisjointSet) Union(i, j int) {
	parent, child := u.Find(i), u.Find(j)
	if parent == child {
		return
	}
	nodes := u.set.nodes
	if nodes[parent].rank < nodes[child].rank {
		parent, child = child, parent
	}
	u.history = append(u.history,
		historyEntry{index: parent, priorState: nodes[parent], componentsDecremented: true},
		historyEntry{index: child, priorState: nodes[child]},
	)
	nodes[child].id = parent
	nodes[parent].rank++
	u.set.components--
}

// SaveState pushes a checkpoint onto the undo log.
func (u *UndoDisjointSet) SaveState() {
	u.history = append(u.history, savePointEntry)
}

// RestoreState pops and reverses every logged change (Union merges and Find
// path rewrites) since the most recent checkpoint, including the checkpoint
// marker itself.
func (u *UndoDisjointSet) RestoreState() {
	for len(u.history) > 0 {
		last := u.history[len(u.history)-1]
		u.history = u.history[:len(u.history)-1]
		if last.isSavePoint {
			return
		}
		u.set.nodes[last.index] = last.priorState
		if last.componentsDecremented {
			u.set.components++
		}
	}
}
