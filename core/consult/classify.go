package consult

import "fmt"

// Stable message templates per outcome kind. Ledger entries and progress
// records always store the rendered text, never error objects; API failures
// surface as these advisory strings in place of the specialist's answer.
const (
	msgMisconfigured = "Server Configuration Issue - The instructor needs to set up the AI specialist " +
		"API key. Students don't need to worry about this - just let your instructor know! " +
		"This message only appears when the server isn't properly configured."
	msgAuthError   = "API Key Issue - Please contact your instructor to fix the server configuration."
	msgRateLimited = "Rate Limited - Too many students are using the system. Please wait a moment and try again."
	msgBadRequest  = "Request Error - The consultation request could not be processed. " +
		"Please rephrase your question and try again."
	msgServerError = "Server Error - Status %d. Please try again or contact your instructor."
	msgTimeout     = "Timeout - The AI specialist is taking too long to respond. Please try again."
	msgTransport   = "Connection Error - Please check your internet connection and try again."
)

// Classify maps a raw outcome to the user-facing message. It is a pure,
// deterministic mapping; Success passes the completion text through unchanged.
func Classify(outcome Outcome) string {
	switch outcome.Kind {
	case Success:
		return outcome.Text
	case Misconfigured:
		return msgMisconfigured
	case AuthError:
		return msgAuthError
	case RateLimited:
		return msgRateLimited
	case BadRequest:
		return msgBadRequest
	case Timeout:
		return msgTimeout
	case TransportError:
		return msgTransport
	default:
		return fmt.Sprintf(msgServerError, outcome.Status)
	}
}
