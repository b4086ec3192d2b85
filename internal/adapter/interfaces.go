package adapter

import (
	"context"

	"addonpair/models"
)

// PairingAdapter is the device-side view of the TV's pairing API, used by
// the pairctl command.
type PairingAdapter interface {
	// Addons fetches the TV's committed addon list.
	Addons(ctx context.Context) ([]models.AddonRef, error)

	// Propose submits the desired final addon ordering. ErrBusy means
	// another change is still awaiting a decision on the TV.
	Propose(ctx context.Context, urls []string) (models.ProposeResponse, error)

	// ChangeStatus polls the resolution of a staged change.
	ChangeStatus(ctx context.Context, changeID string) (string, error)
}
