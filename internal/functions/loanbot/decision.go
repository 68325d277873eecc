// internal/functions/loanbot/decision.go
package loanbot

// DecisionResult is the outcome of a loan evaluation.
type DecisionResult string

const (
	DecisionApproved DecisionResult = "Approved"
	DecisionDenied   DecisionResult = "Denied"
)

const (
	approvedMessage = "Congratulations! Your loan is approved. I'll now transfer you to an agent for help with processing your loan."
	deniedMessage   = "Your loan has been denied. I'll transfer you to an agent for further assistance."
)

// Decision carries the evaluation result and the message delivered to the user.
type Decision struct {
	Result  DecisionResult `json:"result"`
	Message string         `json:"message"`
}

// Decide approves a loan when half the documented wage amount strictly
// exceeds the requested amount. Ties deny.
func Decide(wageAmount, requestedAmount int) Decision {
	if float64(wageAmount)*0.5 > float64(requestedAmount) {
		return Decision{Result: DecisionApproved, Message: approvedMessage}
	}
	return Decision{Result: DecisionDenied, Message: deniedMessage}
}
