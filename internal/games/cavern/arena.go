package cavern

// Handle is a generation-checked reference into the arena. A stale handle
// (its slot reused for a newer entity) resolves to nil instead of the
// impostor.
type Handle struct {
	idx int32
	gen uint32
}

// NilHandle never resolves.
var NilHandle = Handle{idx: -1}

// IsNil reports whether the handle is the null reference.
func (h Handle) IsNil() bool { return h.idx < 0 }

type slot struct {
	ent Entity
	gen uint32
	used bool
}

// Arena owns every entity in the simulation. Slots are reused via a free
// list; iteration visits live entities in ascending slot order, which is the
// tie-break order the resolver relies on. Dead entities stay in place until
// Compact runs at the end of the tick, so rules that fire mid-scan see a
// stable set.
type Arena struct {
	slots []slot
	free  []int32
	count int
}

// NewArena returns an empty arena with room for n entities before growing.
func NewArena(n int) *Arena {
	return &Arena{slots: make([]slot, 0, n)}
}

// Spawn inserts the entity and returns its handle. Alive is forced true.
func (a *Arena) Spawn(e Entity) Handle {
	e.Alive = true
	var idx int32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		idx = int32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.gen++
	s.ent = e
	s.used = true
	a.count++
	return Handle{idx: idx, gen: s.gen}
}

// Get resolves a handle to its entity, or nil if the handle is stale, nil,
// or points at a freed slot. Killed-but-not-compacted entities still resolve.
func (a *Arena) Get(h Handle) *Entity {
	if h.idx < 0 || int(h.idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.idx]
	if !s.used || s.gen != h.gen {
		return nil
	}
	return &s.ent
}

// Alive reports whether the handle resolves to a live entity.
func (a *Arena) Alive(h Handle) bool {
	e := a.Get(h)
	return e != nil && e.Alive
}

// Kill marks the entity dead. The slot is not freed until Compact, so the
// call is idempotent and handles keep resolving for the rest of the tick.
func (a *Arena) Kill(h Handle) {
	if e := a.Get(h); e != nil {
		e.Alive = false
	}
}

// Compact frees every dead slot. Run once at the end of each tick.
func (a *Arena) Compact() {
	for i := range a.slots {
		s := &a.slots[i]
		if s.used && !s.ent.Alive {
			s.used = false
			a.free = append(a.free, int32(i))
			a.count--
		}
	}
}

// Len is the number of occupied slots, dead-but-uncompacted included.
func (a *Arena) Len() int { return a.count }

// ForEach visits occupied slots in ascending order. The visitor sees dead
// entities too and must check Alive itself when it matters. Spawns during
// iteration that reuse an earlier freed slot are not revisited this pass;
// appended slots are.
func (a *Arena) ForEach(fn func(h Handle, e *Entity)) {
	for i := 0; i < len(a.slots); i++ {
		s := &a.slots[i]
		if s.used {
			fn(Handle{idx: int32(i), gen: s.gen}, &s.ent)
		}
	}
}

// ForEachKind visits occupied slots of one kind in ascending slot order.
func (a *Arena) ForEachKind(k Kind, fn func(h Handle, e *Entity)) {
	a.ForEach(func(h Handle, e *Entity) {
		if e.Kind == k {
			fn(h, e)
		}
	})
}

// CountKind counts live entities of a kind.
func (a *Arena) CountKind(k Kind) int {
	n := 0
	a.ForEach(func(_ Handle, e *Entity) {
		if e.Alive && e.Kind == k {
			n++
		}
	})
	return n
}

// First returns the first live entity of a kind in slot order.
func (a *Arena) First(k Kind) (Handle, *Entity) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.used && s.ent.Alive && s.ent.Kind == k {
			return Handle{idx: int32(i), gen: s.gen}, &s.ent
		}
	}
	return NilHandle, nil
}

// Reset drops every entity and recycles the backing storage.
func (a *Arena) Reset() {
	for i := range a.slots {
		a.slots[i].used = false
	}
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.count = 0
}
