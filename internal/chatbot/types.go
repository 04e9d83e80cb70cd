package chatbot

import "jobfinder-chatbot/internal/catalog"

// Outcome tells which routing branch produced an answer.
type Outcome string

const (
	OutcomeDirect        Outcome = "direct"
	OutcomeClarification Outcome = "clarification"
	OutcomeFunctionCall  Outcome = "function_call"
)

// --- UseCase Inputs ---

type AnswerInput struct {
	Query string
}

// --- UseCase Outputs ---

type AnswerOutput struct {
	Answer  string
	Outcome Outcome
	// Function and Context are set for OutcomeFunctionCall only.
	Function catalog.Function
	Context  string
}
