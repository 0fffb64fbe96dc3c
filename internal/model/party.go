package model

// Party distinguishes the two sides of an agreement.
type Party int

const (
	// PartyNone is returned for users who are not a party to the case.
	PartyNone Party = iota
	// PartyOwner is the user who created the case.
	PartyOwner
	// PartyInvited is the partner who accepted the invitation.
	PartyInvited
)

// Other returns the opposite party.
func (p Party) Other() Party {
	switch p {
	case PartyOwner:
		return PartyInvited
	case PartyInvited:
		return PartyOwner
	}
	return PartyNone
}

func (p Party) String() string {
	switch p {
	case PartyOwner:
		return "user1"
	case PartyInvited:
		return "user2"
	}
	return "none"
}

// ParseParty resolves the wire name of a party ("user1" or "user2").
func ParseParty(s string) (Party, bool) {
	switch s {
	case "user1":
		return PartyOwner, true
	case "user2":
		return PartyInvited, true
	}
	return PartyNone, false
}
