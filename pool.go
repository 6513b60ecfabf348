package hashtags

// chipPool recycles chips between layout passes, one free list per kind.
type chipPool struct {
	free [2][]*Chip
	made int // chips allocated over the pool's lifetime
}

// acquire returns a chip of kind, reusing a released one when possible.
// The caller must configure it.
func (p *chipPool) acquire(kind ChipKind) *Chip {
	list := p.free[kind]
	if n := len(list); n > 0 {
		c := list[n-1]
		list[n-1] = nil
		p.free[kind] = list[:n-1]
		return c
	}
	p.made++
	return &Chip{Kind: kind}
}

// releaseAll returns chips to the pool and clears the slice so it no
// longer holds references.
func (p *chipPool) releaseAll(chips []*Chip) {
	for i, c := range chips {
		if c == nil {
			continue
		}
		c.reset()
		p.free[c.Kind] = append(p.free[c.Kind], c)
		chips[i] = nil
	}
}
