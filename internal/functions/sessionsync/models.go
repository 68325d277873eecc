// internal/functions/sessionsync/models.go
package sessionsync

// Request is the POST /session body.
type Request struct {
	ParticipantID string            `json:"participantId"`
	Action        string            `json:"action"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

// ResponseBody is the uniform envelope returned for both outcomes.
type ResponseBody struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// requestSchema rejects structurally malformed bodies before any field
// checks run. Presence of participantId/action is checked separately so the
// caller gets the canonical error message.
const requestSchema = `{
	"type": "object",
	"properties": {
		"participantId": {"type": "string"},
		"action": {"type": "string"},
		"attributes": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

// ackSessionState is the decoded shape of the store's compressed write
// acknowledgement. Attribute values may be JSON null here, unlike the typed
// SDK view.
type ackSessionState struct {
	SessionAttributes map[string]*string `json:"sessionAttributes"`
}
