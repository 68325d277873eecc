// internal/functions/chatstart/models.go
package chatstart

// Request is the chat front-door body.
type Request struct {
	InstanceID         string             `json:"InstanceId"`
	ContactFlowID      string             `json:"ContactFlowId"`
	ParticipantDetails ParticipantDetails `json:"ParticipantDetails"`
}

type ParticipantDetails struct {
	DisplayName string `json:"DisplayName"`
}

// StartChatResult is the subset of the platform response the client needs to
// open the websocket connection.
type StartChatResult struct {
	ContactID        string `json:"ContactId,omitempty"`
	ParticipantID    string `json:"ParticipantId,omitempty"`
	ParticipantToken string `json:"ParticipantToken,omitempty"`
}

type successBody struct {
	Data struct {
		StartChatResult StartChatResult `json:"startChatResult"`
	} `json:"data"`
}

type errorBody struct {
	Data struct {
		Error string `json:"Error"`
	} `json:"data"`
}

const requestSchema = `{
	"type": "object",
	"properties": {
		"InstanceId": {"type": "string"},
		"ContactFlowId": {"type": "string"},
		"ParticipantDetails": {
			"type": "object",
			"properties": {
				"DisplayName": {"type": "string"}
			},
			"required": ["DisplayName"]
		}
	},
	"required": ["InstanceId", "ContactFlowId", "ParticipantDetails"]
}`
