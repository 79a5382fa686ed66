package wave

import "asciipond/constants"

// Pool owns the live wave sources. Population is hard-capped per type:
// ripples evict the member with the lowest remaining-life fraction,
// directional wakes evict oldest-first. Callers must reap before
// spawning each frame so dead entries never cause capacity pressure.
type Pool struct {
	Ripples []Ripple
	Wakes   []Wake
}

// NewPool returns an empty pool with capacity preallocated.
func NewPool() *Pool {
	return &Pool{
		Ripples: make([]Ripple, 0, constants.MaxRipples+1),
		Wakes:   make([]Wake, 0, constants.MaxWakes+1),
	}
}

// Reap removes every source that is no longer alive, in place.
func (p *Pool) Reap(now float64) {
	ripples := p.Ripples[:0]
	for _, r := range p.Ripples {
		if r.Alive(now) {
			ripples = append(ripples, r)
		}
	}
	p.Ripples = ripples

	wakes := p.Wakes[:0]
	for _, w := range p.Wakes {
		if w.Alive(now) {
			wakes = append(wakes, w)
		}
	}
	p.Wakes = wakes
}

// AddRipple appends a ripple, then enforces the cap by evicting the
// single ripple closest to death.
func (p *Pool) AddRipple(r Ripple, now float64) {
	p.Ripples = append(p.Ripples, r)
	if len(p.Ripples) <= constants.MaxRipples {
		return
	}
	evict := 0
	lowest := p.Ripples[0].RemainingLife(now)
	for i := 1; i < len(p.Ripples); i++ {
		if rem := p.Ripples[i].RemainingLife(now); rem < lowest {
			lowest = rem
			evict = i
		}
	}
	p.Ripples = append(p.Ripples[:evict], p.Ripples[evict+1:]...)
}

// AddWake appends a wake, then enforces the cap by evicting the oldest.
func (p *Pool) AddWake(w Wake) {
	p.Wakes = append(p.Wakes, w)
	if len(p.Wakes) > constants.MaxWakes {
		// Shift down instead of reslicing so the backing array never crawls
		copy(p.Wakes, p.Wakes[1:])
		p.Wakes = p.Wakes[:constants.MaxWakes]
	}
}
