package domain

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusCompleted CampaignStatus = "completed"
	StatusCancelled CampaignStatus = "cancelled"
	StatusSuspended CampaignStatus = "suspended"
)

// transitions lists the legal target states for each state. Completed and
// cancelled are terminal.
var transitions = map[CampaignStatus][]CampaignStatus{
	StatusDraft:     {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled, StatusSuspended},
	StatusSuspended: {StatusActive, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a campaign may move from s to next. Staying
// in the same state is always allowed.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	if s == next {
		return s.Valid()
	}
	for _, to := range transitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// AdminOnly reports whether moving from s to next requires the admin role.
// Suspension and reinstatement are moderation actions.
func (s CampaignStatus) AdminOnly(next CampaignStatus) bool {
	return s != next && (s == StatusSuspended || next == StatusSuspended)
}
