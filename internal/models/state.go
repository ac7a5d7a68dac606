package models

// Step is the wizard position of a Session.
type Step string

const (
	StepIdle        Step = ""
	StepTitle       Step = "awaiting_title"
	StepDescription Step = "awaiting_description"
	StepDate        Step = "awaiting_date"
	StepTime        Step = "awaiting_time"
)

// Next returns the step that follows s. The wizard has no backward edges.
func (s Step) Next() Step {
	switch s {
	case StepTitle:
		return StepDescription
	case StepDescription:
		return StepDate
	case StepDate:
		return StepTime
	default:
		return StepIdle
	}
}
