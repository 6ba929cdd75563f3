package registration

// Stepper sequences the registration steps. Advance and Retreat are no-ops
// at the boundaries. The completed set is informational only and never gates
// navigation; submit handlers record their step synchronously before moving
// on, which is what keeps the laxness benign.
type Stepper struct {
	steps     []StepID
	index     int
	completed map[StepID]struct{}
}

// NewStepper builds a stepper over the given ordered steps, starting at the
// first. With no arguments it covers the standard registration sequence.
func NewStepper(steps ...StepID) *Stepper {
	if len(steps) == 0 {
		steps = RegistrationSteps
	}
	return &Stepper{
		steps:     append([]StepID(nil), steps...),
		completed: make(map[StepID]struct{}),
	}
}

func (s *Stepper) Current() StepID {
	return s.steps[s.index]
}

func (s *Stepper) Advance() {
	if s.index < len(s.steps)-1 {
		s.index++
	}
}

func (s *Stepper) Retreat() {
	if s.index > 0 {
		s.index--
	}
}

func (s *Stepper) IsFirst() bool {
	return s.index == 0
}

func (s *Stepper) IsLast() bool {
	return s.index == len(s.steps)-1
}

// MarkCompleted records a step as completed. Unknown step ids are ignored.
func (s *Stepper) MarkCompleted(id StepID) {
	for _, step := range s.steps {
		if step == id {
			s.completed[id] = struct{}{}
			return
		}
	}
}

func (s *Stepper) IsCompleted(id StepID) bool {
	_, ok := s.completed[id]
	return ok
}

// Completed returns the completed steps in sequence order.
func (s *Stepper) Completed() []StepID {
	out := make([]StepID, 0, len(s.completed))
	for _, step := range s.steps {
		if _, ok := s.completed[step]; ok {
			out = append(out, step)
		}
	}
	return out
}

// Reset returns the stepper to the first step and clears the completed set.
// A failed registration retry resets everything; no partial state survives.
func (s *Stepper) Reset() {
	s.index = 0
	s.completed = make(map[StepID]struct{})
}
