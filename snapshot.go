package fsnap

import "time"

// Metadata is the per-path record kept in a snapshot.
type Metadata struct {
	IsDir   bool
	IsFile  bool
	ModTime time.Time
}

// Entry pairs a path with its metadata.
type Entry struct {
	Path string
	Meta Metadata
}

// Snapshot is an ordered path -> metadata mapping captured at one moment.
// It is never mutated after construction. A nil *Snapshot is empty.
type Snapshot struct {
	order []string
	meta  map[string]Metadata
}

// NewSnapshot builds a snapshot from explicit entries, keeping the first
// occurrence of a repeated path.
func NewSnapshot(entries ...Entry) *Snapshot {
	s := newSnapshot(len(entries))
	for _, e := range entries {
		s.add(e.Path, e.Meta)
	}
	return s
}

func newSnapshot(size int) *Snapshot {
	return &Snapshot{
		order: make([]string, 0, size),
		meta:  make(map[string]Metadata, size),
	}
}

func (s *Snapshot) add(path string, m Metadata) {
	if _, ok := s.meta[path]; ok {
		return
	}
	s.order = append(s.order, path)
	s.meta[path] = m
}

// Len returns the number of paths in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Paths returns the paths in discovery order.
func (s *Snapshot) Paths() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Get returns the metadata recorded for path.
func (s *Snapshot) Get(path string) (Metadata, bool) {
	if s == nil {
		return Metadata{}, false
	}
	m, ok := s.meta[path]
	return m, ok
}

// Has reports whether path is in the snapshot.
func (s *Snapshot) Has(path string) bool {
	_, ok := s.Get(path)
	return ok
}

// Each calls fn for every entry in discovery order.
func (s *Snapshot) Each(fn func(path string, m Metadata)) {
	if s == nil {
		return
	}
	for _, p := range s.order {
		fn(p, s.meta[p])
	}
}
