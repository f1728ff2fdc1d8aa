package service

// Guard is a single-slot lease preventing two full sync/search passes from
// overlapping the same remote-file targets. Callers that lose the race get
// a busy result and may retry; nothing blocks. The core engine stays
// stateless; the lease lives here, at the orchestration layer.
type Guard struct {
	slot chan struct{}
}

// NewGuard creates a released Guard.
func NewGuard() *Guard {
	return &Guard{slot: make(chan struct{}, 1)}
}

// TryAcquire takes the lease if it is free, reporting whether it did.
func (g *Guard) TryAcquire() bool {
	select {
	case g.slot <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees the lease. Releasing a free guard is a no-op.
func (g *Guard) Release() {
	select {
	case <-g.slot:
	default:
	}
}
