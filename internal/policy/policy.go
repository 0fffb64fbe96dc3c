// Package policy provides authorization decisions for case actions.
package policy

import "github.com/dtroode/casekeeper-server/internal/model"

// Action represents a policy decision for an actor action on a case.
type Action int

const (
	// ActionViewCase allows reading a case and its snapshot.
	ActionViewCase Action = iota + 1
	// ActionEditStep allows writing step data.
	ActionEditStep
	// ActionActAsParty allows pre-questionnaires, lawyer selection and party approval.
	ActionActAsParty
	// ActionManagePartner allows inviting and removing the partner.
	ActionManagePartner
	// ActionManageCase allows unlocking, manager approval, assignment, status changes and draft links.
	ActionManageCase
)

// Can reports whether the actor can perform the action on the case.
//
// Parties own their case; privileged roles manage every case. While a case
// sits in the CM queue only its assigned manager and privileged roles edit steps.
func Can(actor model.Actor, action Action, c model.Case) bool {
	party := c.PartyOf(actor.ID)

	switch action {
	case ActionViewCase:
		return party != model.PartyNone || actor.IsPrivileged()
	case ActionEditStep:
		if actor.IsPrivileged() {
			return true
		}
		if party == model.PartyNone {
			return false
		}
		if c.WorkflowStatus.OrDraft() == model.WorkflowCM {
			return c.AssignedCaseManager != nil && *c.AssignedCaseManager == actor.ID
		}
		return true
	case ActionActAsParty:
		return party != model.PartyNone
	case ActionManagePartner:
		return party == model.PartyOwner || actor.IsPrivileged()
	case ActionManageCase:
		return actor.IsPrivileged()
	}

	return false
}
