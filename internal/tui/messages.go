package tui

import (
	"addonpair/models"
)

// proposalMsg is injected by the proposal pump when the paired device stages
// a change.
type proposalMsg struct {
	proposal models.Proposal
}

type addonsLoadedMsg struct {
	addons []models.AddonRef
	err    error
}

type addonsUpdatedMsg struct {
	addons []models.AddonRef
}

type commitDoneMsg struct {
	err error
}

type rejectedMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
