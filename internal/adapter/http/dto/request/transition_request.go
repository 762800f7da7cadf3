package request

import (
	"fieldserve/internal/domain/status"
)

// TransitionRequest asks to move a quote to a new status. Capture carries the
// structured payload when the transition requires one; omitting it on such a
// transition yields the capture contract back instead of a state change.
//
// Items/Milestones, when present, replace the child collections wholesale in
// the same commit, covering the "rework then approve" flow in one call.
type TransitionRequest struct {
	Status  string          `json:"status" binding:"required"`
	Capture *status.Payload `json:"capture"`

	Items      []LineItemRequest  `json:"items"`
	Milestones []MilestoneRequest `json:"milestones"`
}

// ReplacesChildren reports whether the request carries replacement child
// collections.
func (r TransitionRequest) ReplacesChildren() bool {
	return r.Items != nil || r.Milestones != nil
}
