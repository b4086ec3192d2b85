package workers

import (
	"sync"

	"addonpair/models"
)

// ProposalPump forwards staged proposals from a session's channel to the UI
// delivery function on its own goroutine, so the HTTP request that staged the
// proposal never waits on rendering.
type ProposalPump struct {
	events   <-chan models.Proposal
	deliver  func(models.Proposal)
	done     chan struct{}
	stopOnce sync.Once
}

// NewProposalPump builds a pump reading events and handing each one to
// deliver. The pump stops when events is closed or Stop is called.
func NewProposalPump(events <-chan models.Proposal, deliver func(models.Proposal)) *ProposalPump {
	return &ProposalPump{
		events:  events,
		deliver: deliver,
		done:    make(chan struct{}),
	}
}

func (p *ProposalPump) Run() {
	go func() {
		for {
			select {
			case proposal, ok := <-p.events:
				if !ok {
					return
				}
				p.deliver(proposal)
			case <-p.done:
				return
			}
		}
	}()
}

// Stop terminates the pump goroutine. Idempotent.
func (p *ProposalPump) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}
