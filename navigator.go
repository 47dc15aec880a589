package main

// Navigator maintains the ordered list of image paths and the cursor into it.
// All mutations keep the cursor valid: it is always within [0, len) while the
// list is non-empty, and -1 once the list is empty. A changed flag records
// that the cursor's referent differs from what the caller last consumed;
// callers drain it with HasChanged until it reports false, since reacting to
// one change (e.g. dropping an undecodable path) may raise it again.
type Navigator struct {
	paths   []string
	seen    map[string]bool
	current int
	changed bool
}

// NewNavigator creates an empty Navigator.
func NewNavigator() *Navigator {
	return &Navigator{
		seen:    make(map[string]bool),
		current: -1,
	}
}

// AddPath appends p to the list unless an identical string is already
// present. Paths are compared as opaque strings; two spellings of the same
// file count as distinct entries. Adding the first path points the cursor at
// it and raises the changed flag.
func (n *Navigator) AddPath(p string) {
	if n.seen[p] {
		return
	}
	n.paths = append(n.paths, p)
	n.seen[p] = true
	if len(n.paths) == 1 {
		n.current = 0
		n.changed = true
	}
}

// AddPathRecursive adds p, descending into it if the filesystem collaborator
// reports it as a directory. Entries that cannot be inspected or listed are
// skipped; a single unreadable entry never aborts the walk.
func (n *Navigator) AddPathRecursive(fsys Filesystem, p string) {
	isDir, err := fsys.IsDir(p)
	if err != nil {
		return
	}
	if !isDir {
		n.AddPath(p)
		return
	}
	entries, err := fsys.ListEntries(p)
	if err != nil {
		return
	}
	for _, e := range entries {
		n.AddPathRecursive(fsys, e)
	}
}

// NextPath advances the cursor by one, wrapping past the end. No-op when the
// list is empty.
func (n *Navigator) NextPath() {
	if len(n.paths) == 0 {
		return
	}
	n.current = (n.current + 1) % len(n.paths)
	n.changed = true
}

// PrevPath moves the cursor back by one, wrapping before the start. No-op
// when the list is empty.
func (n *Navigator) PrevPath() {
	if len(n.paths) == 0 {
		return
	}
	n.current--
	if n.current < 0 {
		n.current = len(n.paths) - 1
	}
	n.changed = true
}

// SetPath moves the cursor to index i, clamped into range. No-op when the
// list is empty.
func (n *Navigator) SetPath(i int) {
	if len(n.paths) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(n.paths) {
		i = len(n.paths) - 1
	}
	n.current = i
	n.changed = true
}

// RemoveCurrentPath deletes the entry under the cursor. The cursor keeps its
// numeric index, which now names the following entry, wrapping to 0 when the
// removed entry was the last one. An emptied list leaves the cursor at the
// sentinel.
func (n *Navigator) RemoveCurrentPath() {
	if n.current < 0 {
		return
	}
	delete(n.seen, n.paths[n.current])
	n.paths = append(n.paths[:n.current], n.paths[n.current+1:]...)
	if len(n.paths) == 0 {
		n.current = -1
	} else if n.current >= len(n.paths) {
		n.current = 0
	}
	n.changed = true
}

// CurrentPath returns the path under the cursor, or ok=false when the list is
// empty.
func (n *Navigator) CurrentPath() (string, bool) {
	if n.current < 0 {
		return "", false
	}
	return n.paths[n.current], true
}

// CurrentIndex returns the cursor position, -1 when empty.
func (n *Navigator) CurrentIndex() int {
	return n.current
}

// Length returns the number of paths held.
func (n *Navigator) Length() int {
	return len(n.paths)
}

// HasChanged reports whether the cursor's referent changed since the last
// call, clearing the flag. Edge-triggered: a second call without an
// intervening mutation returns false.
func (n *Navigator) HasChanged() bool {
	c := n.changed
	n.changed = false
	return c
}
