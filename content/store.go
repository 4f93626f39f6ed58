package content

import "sync/atomic"

// Store hands out the current content. Readers never see a half-loaded
// catalog: a reload swaps the whole Content at once.
type Store struct {
	current atomic.Pointer[Content]
}

func NewStore(c *Content) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

func (s *Store) Get() *Content {
	return s.current.Load()
}

func (s *Store) Swap(c *Content) {
	s.current.Store(c)
}
