package widget

type lifecycle int

const (
	lifecycleStart lifecycle = iota
	lifecycleInteraction
	lifecycleEnd
)

type listener struct {
	id uint32
	fn func(Interaction)
}

type listenerRegistry struct {
	start       []listener
	interaction []listener
	end         []listener
	nextID      uint32
}

// Subscription allows removing a registered lifecycle listener
type Subscription struct {
	id    uint32
	reg   *listenerRegistry
	event lifecycle
}

// Remove unregisters the listener so it no longer fires
func (s Subscription) Remove() {
	if s.reg == nil {
		return
	}
	switch s.event {
	case lifecycleStart:
		s.reg.start = removeListener(s.reg.start, s.id)
	case lifecycleInteraction:
		s.reg.interaction = removeListener(s.reg.interaction, s.id)
	case lifecycleEnd:
		s.reg.end = removeListener(s.reg.end, s.id)
	}
}

func removeListener(s []listener, id uint32) []listener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *listenerRegistry) add(event lifecycle, fn func(Interaction)) Subscription {
	r.nextID++
	l := listener{id: r.nextID, fn: fn}
	switch event {
	case lifecycleStart:
		r.start = append(r.start, l)
	case lifecycleInteraction:
		r.interaction = append(r.interaction, l)
	case lifecycleEnd:
		r.end = append(r.end, l)
	}
	return Subscription{id: l.id, reg: r, event: event}
}

func (r *listenerRegistry) fire(event lifecycle, in Interaction) {
	var ls []listener
	switch event {
	case lifecycleStart:
		ls = r.start
	case lifecycleInteraction:
		ls = r.interaction
	case lifecycleEnd:
		ls = r.end
	}
	// listeners may remove themselves while firing
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(in)
	}
}
