package order

// CompactSteps is the three-step timeline shown on the tracking page.
// Pending, processing and cancelled are server-reported but not part of
// this simplified progression.
var CompactSteps = []Status{StatusConfirmed, StatusShipped, StatusDelivered}

// DashboardSteps is the five-step timeline shown in the user dashboard.
var DashboardSteps = []Status{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered}

// Step is one rendered position on a timeline.
type Step struct {
	Status  Status
	Reached bool
	Current bool
}

// Progress returns the index of the status within the step list, or -1
// when the status is not a step (unknown, cancelled, or a status the
// timeline omits). Progress is pure index lookup; no forward-only
// invariant is enforced on the client.
func Progress(steps []Status, s Status) int {
	for i, step := range steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Timeline renders the step list against a status. An unrecognized
// status marks no step reached.
func Timeline(steps []Status, s Status) []Step {
	idx := Progress(steps, s)
	out := make([]Step, len(steps))
	for i, step := range steps {
		out[i] = Step{
			Status:  step,
			Reached: idx >= 0 && i <= idx,
			Current: idx >= 0 && i == idx,
		}
	}
	return out
}
