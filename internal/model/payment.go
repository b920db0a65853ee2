package model

// SessionState is the phase of a payment session.
type SessionState string

const (
	SessionIdle            SessionState = "IDLE"
	SessionAwaitingPayment SessionState = "AWAITING_PAYMENT"
	SessionProcessing      SessionState = "PROCESSING"
	SessionSucceeded       SessionState = "SUCCEEDED"
	SessionFailed          SessionState = "FAILED"
	SessionCancelled       SessionState = "CANCELLED"
)

// Terminal reports whether no further transitions are possible.
func (s SessionState) Terminal() bool {
	return s == SessionSucceeded || s == SessionFailed || s == SessionCancelled
}
