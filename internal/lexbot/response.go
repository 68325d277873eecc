// internal/lexbot/response.go
package lexbot

import "encoding/json"

// Dialog directive types.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionElicitIntent  = "ElicitIntent"
	ActionConfirmIntent = "ConfirmIntent"
	ActionDelegate      = "Delegate"
	ActionClose         = "Close"
)

// Response is the directive object returned to the runtime. Intent, contexts,
// session attributes, and request attributes are echoed back alongside exactly
// one dialog action.
type Response struct {
	Messages          []Message         `json:"messages,omitempty"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
	SessionState      SessionState      `json:"sessionState"`
}

func respond(actionType string, slotToElicit string, intent Intent, contexts []json.RawMessage, attrs map[string]string, messages []Message, reqAttrs map[string]string) Response {
	return Response{
		Messages:          messages,
		RequestAttributes: reqAttrs,
		SessionState: SessionState{
			ActiveContexts:    contexts,
			Intent:            intent,
			SessionAttributes: attrs,
			DialogAction: &DialogAction{
				Type:         actionType,
				SlotToElicit: slotToElicit,
			},
		},
	}
}

// ElicitSlot asks the user for a specific slot value.
func ElicitSlot(intent Intent, contexts []json.RawMessage, attrs map[string]string, slot string, message Message, reqAttrs map[string]string) Response {
	return respond(ActionElicitSlot, slot, intent, contexts, attrs, []Message{message}, reqAttrs)
}

// ElicitIntent asks the user to restate what they want.
func ElicitIntent(intent Intent, contexts []json.RawMessage, attrs map[string]string, message Message, reqAttrs map[string]string) Response {
	return respond(ActionElicitIntent, "", intent, contexts, attrs, []Message{message}, reqAttrs)
}

// ConfirmIntent asks the user for a yes/no confirmation of the intent.
func ConfirmIntent(intent Intent, contexts []json.RawMessage, attrs map[string]string, message Message, reqAttrs map[string]string) Response {
	return respond(ActionConfirmIntent, "", intent, contexts, attrs, []Message{message}, reqAttrs)
}

// Delegate defers the next step to the bot's declared slot logic.
func Delegate(intent Intent, contexts []json.RawMessage, attrs map[string]string, messages []Message, reqAttrs map[string]string) Response {
	return respond(ActionDelegate, "", intent, contexts, attrs, messages, reqAttrs)
}

// Close ends the turn with a terminal message.
func Close(intent Intent, contexts []json.RawMessage, attrs map[string]string, message Message, reqAttrs map[string]string) Response {
	return respond(ActionClose, "", intent, contexts, attrs, []Message{message}, reqAttrs)
}
