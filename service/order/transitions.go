package ordersvc

// TransitionPolicy decides which status changes UpdateStatus accepts.
type TransitionPolicy interface {
	Allowed(from, to int64) bool
}

type allowAll struct{}

func (allowAll) Allowed(_, _ int64) bool { return true }

// AllowAllTransitions permits any status to any status. This mirrors the
// historical behavior of the system and is the default.
func AllowAllTransitions() TransitionPolicy { return allowAll{} }

// Seeded status ids.
const (
	statusProcessing int64 = 2
	statusShipped    int64 = 3
	statusCompleted  int64 = 4
	statusCancelled  int64 = 5
)

type strict struct{ allowed map[int64][]int64 }

func (p strict) Allowed(from, to int64) bool {
	for _, t := range p.allowed[from] {
		if t == to {
			return true
		}
	}
	return false
}

// StrictTransitions permits only the forward lifecycle
// New -> Processing -> Shipped -> Completed, plus Cancelled from any
// non-terminal state. Completed and Cancelled are terminal.
func StrictTransitions() TransitionPolicy {
	return strict{allowed: map[int64][]int64{
		statusNew:        {statusProcessing, statusCancelled},
		statusProcessing: {statusShipped, statusCancelled},
		statusShipped:    {statusCompleted, statusCancelled},
	}}
}
