package annotation

import "sync"

// Playhead holds the current playback time of one player. Each player
// instance owns its own Playhead, so simultaneous players stay independent.
type Playhead struct {
	mu      sync.RWMutex
	current float64
	subs    map[int]chan float64
	nextID  int
}

func NewPlayhead() *Playhead {
	return &Playhead{subs: make(map[int]chan float64)}
}

func (p *Playhead) Current() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.current
}

// Set stores the time and notifies subscribers. A slow subscriber only ever
// sees the latest value.
func (p *Playhead) Set(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = seconds
	for _, ch := range p.subs {
		select {
		case <-ch:
		default:
		}
		ch <- seconds
	}
}

// Subscribe returns a channel of time updates and a func that stops them.
func (p *Playhead) Subscribe() (<-chan float64, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan float64, 1)
	p.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()

			delete(p.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}
