package workers

import (
	"testing"
	"time"

	"addonpair/models"
)

func TestProposalPump_DeliversInOrder(t *testing.T) {
	events := make(chan models.Proposal, 2)
	delivered := make(chan string, 2)

	pump := NewProposalPump(events, func(p models.Proposal) {
		delivered <- p.Change.ID
	})
	pump.Run()
	defer pump.Stop()

	events <- models.Proposal{Change: models.PendingChange{ID: "first"}}
	events <- models.Proposal{Change: models.PendingChange{ID: "second"}}

	for _, want := range []string{"first", "second"} {
		select {
		case got := <-delivered:
			if got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestProposalPump_StopsOnClosedChannel(t *testing.T) {
	events := make(chan models.Proposal)
	pump := NewProposalPump(events, func(models.Proposal) {
		t.Error("no delivery expected")
	})
	pump.Run()

	close(events)

	// The goroutine exits on its own; Stop afterwards must not panic.
	time.Sleep(10 * time.Millisecond)
	pump.Stop()
	pump.Stop()
}

func TestProposalPump_StopHaltsDelivery(t *testing.T) {
	events := make(chan models.Proposal, 1)
	delivered := make(chan struct{}, 1)

	pump := NewProposalPump(events, func(models.Proposal) {
		delivered <- struct{}{}
	})
	pump.Run()
	pump.Stop()

	// Give the pump goroutine time to observe done before the send.
	time.Sleep(10 * time.Millisecond)
	events <- models.Proposal{Change: models.PendingChange{ID: "late"}}

	select {
	case <-delivered:
		t.Fatal("delivery after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
