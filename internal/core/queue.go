package core

// ProcessQueue is the FIFO ready queue used by round robin.
type ProcessQueue struct {
	queue []*Process
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*Process, 0)}
}

func (p *ProcessQueue) AddToEnd(process *Process) {
	p.queue = append(p.queue, process)
}

func (p *ProcessQueue) RemoveFromTop() (*Process, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		return item, true
	}
	return nil, false
}

func (p *ProcessQueue) Len() int {
	return len(p.queue)
}
