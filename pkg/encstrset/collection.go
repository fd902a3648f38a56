package encstrset

// collection is a set of ciphers. The Store's mutex guards every access.
type collection struct {
	members map[string]struct{}
}

func newCollection() *collection {
	return &collection{members: make(map[string]struct{})}
}

// add reports whether cipher was newly inserted.
func (c *collection) add(cipher string) bool {
	if _, ok := c.members[cipher]; ok {
		return false
	}
	c.members[cipher] = struct{}{}
	return true
}

// remove reports whether cipher was present.
func (c *collection) remove(cipher string) bool {
	if _, ok := c.members[cipher]; !ok {
		return false
	}
	delete(c.members, cipher)
	return true
}

func (c *collection) has(cipher string) bool {
	_, ok := c.members[cipher]
	return ok
}

func (c *collection) len() int {
	return len(c.members)
}

func (c *collection) clear() {
	clear(c.members)
}

// merge adds every member of from to c, calling visit (when non-nil) once per
// member of from. Merging a collection into itself changes nothing.
func (c *collection) merge(from *collection, visit func(cipher string, inserted bool)) {
	for cipher := range from.members {
		inserted := false
		if from != c {
			inserted = c.add(cipher)
		}
		if visit != nil {
			visit(cipher, inserted)
		}
	}
}
