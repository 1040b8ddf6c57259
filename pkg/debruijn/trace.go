package debruijn

// TraceEvent records the term produced by one reduction step.
type TraceEvent struct {
	Step uint64
	Term Term
}

// EnableTrace keeps the last capacity steps of every following Run.
func (m *Machine) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	m.traceBuf = make([]TraceEvent, capacity)
	m.traceCap = uint64(capacity)
	m.traceIdx = 0
	m.traceOn = true
}

func (m *Machine) DisableTrace() {
	m.traceOn = false
}

// TraceSnapshot returns the recorded steps, oldest first.
func (m *Machine) TraceSnapshot() []TraceEvent {
	if !m.traceOn {
		return nil
	}
	if m.traceIdx <= m.traceCap {
		res := make([]TraceEvent, m.traceIdx)
		copy(res, m.traceBuf[:m.traceIdx])
		return res
	}
	start := m.traceIdx % m.traceCap
	res := make([]TraceEvent, 0, m.traceCap)
	res = append(res, m.traceBuf[start:]...)
	res = append(res, m.traceBuf[:start]...)
	return res
}

func (m *Machine) recordTrace(t Term) {
	if !m.traceOn || m.traceCap == 0 {
		return
	}
	m.traceBuf[m.traceIdx%m.traceCap] = TraceEvent{
		Step: m.steps,
		Term: t,
	}
	m.traceIdx++
}
