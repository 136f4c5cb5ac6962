package model

import "github.com/google/uuid"

type Outcome int8

const (
	OutcomeWarning = Outcome(iota)
	OutcomeAnswer
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnswer:
		return "answer"
	case OutcomeError:
		return "error"
	default:
		return "warning"
	}
}

// Consultation is the single result of one form submission. Answer is set only
// for OutcomeAnswer, Error only for OutcomeError.
type Consultation struct {
	RequestID uuid.UUID
	Persona   Persona
	Query     string
	Outcome   Outcome
	Answer    string
	Error     string
}

// ConfigurationError reports a missing setting together with where to set it.
type ConfigurationError struct {
	Remediation string
}

func (e *ConfigurationError) Error() string {
	return e.Remediation
}
