package pwa

// ScrollThreshold is the scroll offset in pixels past which the header
// switches to its compact style.
const ScrollThreshold = 20

// HeaderState is the header style.
type HeaderState int

const (
	HeaderTop HeaderState = iota
	HeaderScrolled
)

func (s HeaderState) String() string {
	if s == HeaderScrolled {
		return "scrolled"
	}
	return "top"
}

// HeaderStyle tracks the header style from scroll positions.
type HeaderStyle struct {
	state HeaderState
}

// State returns the current style.
func (h *HeaderStyle) State() HeaderState {
	return h.state
}

// Scroll applies a vertical scroll offset and reports whether the style
// changed. Offsets strictly above ScrollThreshold are scrolled.
func (h *HeaderStyle) Scroll(offsetY float64) bool {
	next := HeaderTop
	if offsetY > ScrollThreshold {
		next = HeaderScrolled
	}
	changed := next != h.state
	h.state = next
	return changed
}

// Connectivity tracks the offline indicator.
type Connectivity struct {
	offline bool
}

// NewConnectivity starts from the browser's reported state.
func NewConnectivity(online bool) *Connectivity {
	return &Connectivity{offline: !online}
}

// Online handles the online event.
func (c *Connectivity) Online() bool {
	changed := c.offline
	c.offline = false
	return changed
}

// Offline handles the offline event.
func (c *Connectivity) Offline() bool {
	changed := !c.offline
	c.offline = true
	return changed
}

// Status names the connectivity state.
func (c *Connectivity) Status() string {
	if c.offline {
		return EventOffline
	}
	return EventOnline
}

// ShowIndicator reports whether the offline indicator is visible.
func (c *Connectivity) ShowIndicator() bool {
	return c.offline
}
