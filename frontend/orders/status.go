package orders

// Backend lifecycle states. The listing endpoint spells the approval state
// with a space.
const (
	StateDraft     = "draft"
	StateToApprove = "to approve"
	StatePurchase  = "purchase"
	StateDone      = "done"
	StateCancel    = "cancel"
)

// StatusLabel maps a backend state to its display label. Unknown states
// pass through unchanged.
func StatusLabel(state string) string {
	switch state {
	case StateDraft:
		return "Draft"
	case StateToApprove:
		return "Pending"
	case StatePurchase:
		return "Approved"
	case StateDone:
		return "Completed"
	case StateCancel:
		return "Cancelled"
	default:
		return state
	}
}

// StatusBadgeClass maps a backend state to its badge color class. Purchase
// and done share the green class; unknown states get the gray fallback.
func StatusBadgeClass(state string) string {
	switch state {
	case StatePurchase, StateDone:
		return "badge badge-green"
	case StateToApprove:
		return "badge badge-amber"
	case StateDraft:
		return "badge badge-blue"
	case StateCancel:
		return "badge badge-red"
	default:
		return "badge badge-gray"
	}
}
