package service

import (
	"github.com/diegoclair/duty-rotation-bot/internal/domain/contract"
)

type Instance struct {
	Roster       contract.RosterService
	Synchronizer contract.MembershipSynchronizer
	Orchestrator *orchestrator
}

func NewInstance(dm contract.DataManager, chatClient contract.ChatClient, excludedIDs []string, settings Settings) *Instance {
	roster := newRoster(dm)
	synchronizer := newSynchronizer(dm, roster, excludedIDs)

	return &Instance{
		Roster:       roster,
		Synchronizer: synchronizer,
		Orchestrator: newOrchestrator(roster, synchronizer, chatClient, settings),
	}
}
