package router

import (
	"jobfinder-chatbot/internal/catalog"
)

// Action is the closed set of structured actions the model may request.
type Action int

const (
	ActionUnknown Action = iota
	ActionCallFunction
	ActionAskForClarification
)

// ParseAction maps the wire tag to an Action.
func ParseAction(tag string) Action {
	switch tag {
	case ActionTagCallFunction:
		return ActionCallFunction
	case ActionTagAskForClarification:
		return ActionAskForClarification
	default:
		return ActionUnknown
	}
}

// Decision is the routing outcome: exactly one of DirectAnswer, Clarification
// or FunctionCall.
type Decision interface {
	isDecision()
}

// DirectAnswer is final text that needs no lookup.
type DirectAnswer struct {
	Text string
}

// Clarification is a follow-up question returned to the user as is.
type Clarification struct {
	Question string
}

// FunctionCall asks for one allow-listed lookup. Function is FunctionUnknown
// when Name is not on the allow-list or the action itself was not recognized.
type FunctionCall struct {
	Function catalog.Function
	// Name is the raw tag the model produced, kept for logging.
	Name   string
	Params map[string]string
}

func (DirectAnswer) isDecision()  {}
func (Clarification) isDecision() {}
func (FunctionCall) isDecision()  {}

// Param returns the value of key and whether it is non-empty.
func (c FunctionCall) Param(key string) (string, bool) {
	v := c.Params[key]
	if v == "" {
		return "", false
	}
	return v, true
}
