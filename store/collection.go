package store

// collection is an id-indexed record set that preserves insertion order.
// Lookups are O(1) by id; listing walks the insertion order so responses stay
// stable across calls.
type collection[T any] struct {
	order []string
	items map[string]*T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]*T)}
}

func (c *collection[T]) get(id string) (*T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) put(id string, item *T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) remove(id string) (*T, bool) {
	item, ok := c.items[id]
	if !ok {
		return nil, false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return item, true
}

func (c *collection[T]) all() []*T {
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}
