package session

// Buffer holds ranked hotel listings in display order. Listings are removed
// once shown, so the front of the buffer is always the next page.
type Buffer struct {
	items []*Listing
	index map[string]*Listing
}

// NewBuffer builds a buffer preserving the order of the provided listings.
// Duplicate IDs keep the first occurrence.
func NewBuffer(listings []Listing) *Buffer {
	b := &Buffer{
		items: make([]*Listing, 0, len(listings)),
		index: make(map[string]*Listing, len(listings)),
	}
	for i := range listings {
		l := listings[i]
		if l.ID == "" {
			continue
		}
		if _, ok := b.index[l.ID]; ok {
			continue
		}
		item := &l
		b.items = append(b.items, item)
		b.index[l.ID] = item
	}
	return b
}

// Len returns the number of listings remaining in the buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Head returns up to n listings from the front of the buffer without
// removing them.
func (b *Buffer) Head(n int) []*Listing {
	if b == nil || n <= 0 {
		return nil
	}
	if n > len(b.items) {
		n = len(b.items)
	}
	out := make([]*Listing, n)
	copy(out, b.items[:n])
	return out
}

// Get returns the listing with the given ID, or nil when absent.
func (b *Buffer) Get(id string) *Listing {
	if b == nil {
		return nil
	}
	return b.index[id]
}

// Remove deletes the listings with the given IDs, keeping the relative
// order of the remainder. Unknown IDs are ignored.
func (b *Buffer) Remove(ids []string) {
	if b == nil || len(ids) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := b.index[id]; ok {
			drop[id] = struct{}{}
			delete(b.index, id)
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := b.items[:0]
	for _, item := range b.items {
		if _, gone := drop[item.ID]; gone {
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(b.items); i++ {
		b.items[i] = nil
	}
	b.items = kept
}
