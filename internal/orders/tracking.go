package orders

import "strings"

// Find locates an order by full id or id suffix, the two forms the
// tracking page accepts. An empty query matches nothing.
func Find(list []Order, query string) (Order, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Order{}, false
	}
	for _, o := range list {
		if o.ID == query || strings.HasSuffix(o.ID, query) {
			return o, true
		}
	}
	return Order{}, false
}

// StepState is the rendering state of one tracking-ladder step.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepPending   StepState = "pending"
	StepError     StepState = "error"
)

// TrackStep reports how a ladder step should render for an order in the
// given status. A cancelled order shows every step as an error.
func TrackStep(step, current Status) StepState {
	if current == StatusCancelled {
		return StepError
	}
	stepIdx, currentIdx := -1, -1
	for i, s := range Steps {
		if s == step {
			stepIdx = i
		}
		if s == current {
			currentIdx = i
		}
	}
	if stepIdx >= 0 && currentIdx >= stepIdx {
		return StepCompleted
	}
	return StepPending
}
