// internal/lexbot/event.go

// Package lexbot models the Lex V2 code-hook wire contract: the invocation
// event, session state, slots, messages, and the dialog directive responses a
// handler must return exactly once per invocation.
package lexbot

import "encoding/json"

// Invocation phases.
const (
	SourceDialogCodeHook      = "DialogCodeHook"
	SourceFulfillmentCodeHook = "FulfillmentCodeHook"
)

// Intent states.
const (
	IntentInProgress = "InProgress"
	IntentFulfilled  = "Fulfilled"
	IntentFailed     = "Failed"
)

// Confirmation states.
const (
	ConfirmationNone      = "None"
	ConfirmationConfirmed = "Confirmed"
	ConfirmationDenied    = "Denied"
)

// Message content types.
const (
	ContentPlainText     = "PlainText"
	ContentCustomPayload = "CustomPayload"
)

// Event is the code-hook invocation payload. Fields the state machine does
// not interpret are carried opaquely so they round-trip unchanged.
type Event struct {
	InvocationSource  string            `json:"invocationSource"`
	SessionState      SessionState      `json:"sessionState"`
	Messages          []Message         `json:"messages,omitempty"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	SessionID         string            `json:"sessionId,omitempty"`
	Bot               json.RawMessage   `json:"bot,omitempty"`
}

// SessionState is the per-conversation context the runtime threads through
// every turn. Active contexts are opaque to the core.
type SessionState struct {
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	Intent            Intent            `json:"intent"`
	ActiveContexts    []json.RawMessage `json:"activeContexts,omitempty"`
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
}

// Intent is one conversational goal instance. Slot entries may be absent or
// present-but-null; both count as unfilled.
type Intent struct {
	Name              string           `json:"name"`
	State             string           `json:"state,omitempty"`
	ConfirmationState string           `json:"confirmationState,omitempty"`
	Slots             map[string]*Slot `json:"slots,omitempty"`
}

// Slot carries one interpreted parameter value.
type Slot struct {
	Shape string     `json:"shape,omitempty"`
	Value *SlotValue `json:"value,omitempty"`
}

type SlotValue struct {
	OriginalValue    string   `json:"originalValue,omitempty"`
	InterpretedValue string   `json:"interpretedValue,omitempty"`
	ResolvedValues   []string `json:"resolvedValues,omitempty"`
}

// IsFilled reports whether the slot holds a usable value. A nil slot, a slot
// without a value object, and a blank interpreted value are all unfilled.
func (s *Slot) IsFilled() bool {
	return s != nil && s.Value != nil && s.Value.InterpretedValue != ""
}

// Interpreted returns the interpreted value of a filled slot, or "".
func (s *Slot) Interpreted() string {
	if !s.IsFilled() {
		return ""
	}
	return s.Value.InterpretedValue
}

// Slot returns the named slot, nil when the intent does not carry it.
func (i *Intent) Slot(name string) *Slot {
	if i.Slots == nil {
		return nil
	}
	return i.Slots[name]
}

// Message is a single structured reply for one turn.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a plain text message.
func PlainText(content string) Message {
	return Message{ContentType: ContentPlainText, Content: content}
}

// DialogAction is the directive the runtime executes next.
type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}
