package valueobjects

// Status represents the subscription lifecycle state, mirroring the payment
// provider's status vocabulary.
type Status string

const (
	StatusIncomplete        Status = "incomplete"
	StatusIncompleteExpired Status = "incomplete_expired"
	StatusTrialing          Status = "trialing"
	StatusActive            Status = "active"
	StatusPastDue           Status = "past_due"
	StatusCanceled          Status = "canceled"
	StatusUnpaid            Status = "unpaid"
	StatusPaused            Status = "paused"
)

// ValidStatuses enumerates every recognized subscription status.
var ValidStatuses = map[Status]bool{
	StatusIncomplete:        true,
	StatusIncompleteExpired: true,
	StatusTrialing:          true,
	StatusActive:            true,
	StatusPastDue:           true,
	StatusCanceled:          true,
	StatusUnpaid:            true,
	StatusPaused:            true,
}

// transitions encodes the allowed lifecycle moves. incomplete_expired and
// canceled are terminal; paused and unpaid are side states off active/past_due.
var transitions = map[Status][]Status{
	StatusIncomplete: {StatusTrialing, StatusActive, StatusIncompleteExpired, StatusCanceled},
	StatusTrialing:   {StatusActive, StatusPastDue, StatusCanceled, StatusPaused},
	StatusActive:     {StatusPastDue, StatusCanceled, StatusPaused, StatusUnpaid},
	StatusPastDue:    {StatusActive, StatusCanceled, StatusUnpaid},
	StatusUnpaid:     {StatusActive, StatusCanceled},
	StatusPaused:     {StatusActive, StatusCanceled},
}

func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCanceled || s == StatusIncompleteExpired
}

// CountsAsActive reports whether the status occupies an active-subscription
// slot for role-based limits.
func (s Status) CountsAsActive() bool {
	return s == StatusActive || s == StatusTrialing
}

// GrantsAccess reports whether content entitlements should be in force.
// Only a fully active subscription unlocks content; trials count toward
// subscription limits but do not grant access until the first payment.
func (s Status) GrantsAccess() bool {
	return s == StatusActive
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ParseStatus validates a stored status string.
func ParseStatus(s string) (Status, bool) {
	status := Status(s)
	return status, status.IsValid()
}
