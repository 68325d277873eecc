package loanbot

import (
	"context"
	"encoding/json"
	"testing"

	apperrors "chatbot-lambdas/internal/common/errors"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/docextract"
	"chatbot-lambdas/internal/lexbot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Collaborators
// ==========================

type MockWageReader struct {
	mock.Mock
}

func (m *MockWageReader) WageAmount(ctx context.Context, documentBytes []byte) (int, error) {
	args := m.Called(ctx, documentBytes)
	return args.Int(0), args.Error(1)
}

type MockFileFetcher struct {
	mock.Mock
}

func (m *MockFileFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// ==========================
// Test Helpers
// ==========================

func newTestHandler(t *testing.T) (*Handler, *MockWageReader, *MockFileFetcher) {
	t.Helper()
	extractor := new(MockWageReader)
	fetcher := new(MockFileFetcher)
	h := NewHandler(LoadConfig(), extractor, fetcher, logger.NewTestLogger(t))
	return h, extractor, fetcher
}

func filledSlot(value string) *lexbot.Slot {
	return &lexbot.Slot{Value: &lexbot.SlotValue{InterpretedValue: value}}
}

func newEvent(source, intentName, confirmation string, slots map[string]*lexbot.Slot, attrs map[string]string) lexbot.Event {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return lexbot.Event{
		InvocationSource: source,
		SessionState: lexbot.SessionState{
			SessionAttributes: attrs,
			Intent: lexbot.Intent{
				Name:              intentName,
				ConfirmationState: confirmation,
				Slots:             slots,
			},
		},
		RequestAttributes: map[string]string{"channel": "web"},
	}
}

func dialogAction(t *testing.T, resp lexbot.Response) lexbot.DialogAction {
	t.Helper()
	require.NotNil(t, resp.SessionState.DialogAction)
	return *resp.SessionState.DialogAction
}

// ==========================
// Validation Phase
// ==========================

func TestValidate_SlotElicitationOrder(t *testing.T) {
	tests := []struct {
		name       string
		slots      map[string]*lexbot.Slot
		wantAction string
		wantSlot   string
	}{
		{
			name:       "no slots filled elicits loanType first",
			slots:      map[string]*lexbot.Slot{},
			wantAction: lexbot.ActionElicitSlot,
			wantSlot:   SlotLoanType,
		},
		{
			name: "present-but-empty slot counts as unfilled",
			slots: map[string]*lexbot.Slot{
				SlotLoanType: {},
			},
			wantAction: lexbot.ActionElicitSlot,
			wantSlot:   SlotLoanType,
		},
		{
			name: "loanType filled elicits loanAmount",
			slots: map[string]*lexbot.Slot{
				SlotLoanType: filledSlot("auto"),
			},
			wantAction: lexbot.ActionElicitSlot,
			wantSlot:   SlotLoanAmount,
		},
		{
			name: "loanType and loanAmount filled elicits fileUpload",
			slots: map[string]*lexbot.Slot{
				SlotLoanType:   filledSlot("auto"),
				SlotLoanAmount: filledSlot("5000"),
			},
			wantAction: lexbot.ActionElicitSlot,
			wantSlot:   SlotFileUpload,
		},
		{
			name: "all required slots filled delegates",
			slots: map[string]*lexbot.Slot{
				SlotLoanType:   filledSlot("auto"),
				SlotLoanAmount: filledSlot("5000"),
				SlotFileUpload: filledSlot("uploaded"),
			},
			wantAction: lexbot.ActionDelegate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(t)
			event := newEvent(lexbot.SourceDialogCodeHook, IntentLoanApp, "", tt.slots, nil)

			resp, err := h.Handle(context.Background(), event)
			require.NoError(t, err)

			action := dialogAction(t, resp)
			assert.Equal(t, tt.wantAction, action.Type)
			assert.Equal(t, tt.wantSlot, action.SlotToElicit)
		})
	}
}

func TestValidate_LoanTypePromptIsListPicker(t *testing.T) {
	h, _, _ := newTestHandler(t)
	event := newEvent(lexbot.SourceDialogCodeHook, IntentLoanApp, "", map[string]*lexbot.Slot{}, nil)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)

	msg := resp.Messages[0]
	assert.Equal(t, lexbot.ContentCustomPayload, msg.ContentType)

	var tpl map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &tpl))
	assert.Equal(t, "ListPicker", tpl["templateType"])
	assert.Equal(t, "1.0", tpl["version"])
}

func TestValidate_OtherIntentDelegates(t *testing.T) {
	h, _, _ := newTestHandler(t)
	event := newEvent(lexbot.SourceDialogCodeHook, "SomeOtherIntent", "", nil, nil)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, lexbot.ActionDelegate, dialogAction(t, resp).Type)
}

// ==========================
// Fallback Retry
// ==========================

func TestFallback_RetrySequence(t *testing.T) {
	h, _, _ := newTestHandler(t)
	attrs := map[string]string{}

	// Attempt 1
	resp, err := h.Handle(context.Background(),
		newEvent(lexbot.SourceFulfillmentCodeHook, IntentFallback, "", nil, attrs))
	require.NoError(t, err)
	assert.Equal(t, lexbot.ActionElicitIntent, dialogAction(t, resp).Type)
	assert.Equal(t, "1", resp.SessionState.SessionAttributes["botTry"])
	assert.Equal(t, lexbot.IntentInProgress, resp.SessionState.Intent.State)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, retryPromptFirst, resp.Messages[0].Content)

	// Attempt 2 - counter carried over in session attributes
	attrs = resp.SessionState.SessionAttributes
	resp, err = h.Handle(context.Background(),
		newEvent(lexbot.SourceFulfillmentCodeHook, IntentFallback, "", nil, attrs))
	require.NoError(t, err)
	assert.Equal(t, lexbot.ActionElicitIntent, dialogAction(t, resp).Type)
	assert.Equal(t, "2", resp.SessionState.SessionAttributes["botTry"])
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, retryPromptSecond, resp.Messages[0].Content)

	// Attempt 3 - ceiling reached, terminal give-up
	attrs = resp.SessionState.SessionAttributes
	resp, err = h.Handle(context.Background(),
		newEvent(lexbot.SourceFulfillmentCodeHook, IntentFallback, "", nil, attrs))
	require.NoError(t, err)
	assert.Equal(t, lexbot.ActionClose, dialogAction(t, resp).Type)
	assert.Equal(t, lexbot.IntentFulfilled, resp.SessionState.Intent.State)
	assert.NotContains(t, resp.SessionState.SessionAttributes, "botTry")
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, giveUpMessage, resp.Messages[0].Content)
}

func TestFallback_UnparseableCounterRestarts(t *testing.T) {
	h, _, _ := newTestHandler(t)
	attrs := map[string]string{"botTry": "not-a-number"}

	resp, err := h.Handle(context.Background(),
		newEvent(lexbot.SourceFulfillmentCodeHook, IntentFallback, "", nil, attrs))
	require.NoError(t, err)
	assert.Equal(t, "1", resp.SessionState.SessionAttributes["botTry"])
}

// ==========================
// Confirmation Flow
// ==========================

func TestFulfill_ConfirmationNone(t *testing.T) {
	h, _, _ := newTestHandler(t)
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentLoanApp, lexbot.ConfirmationNone, nil, nil)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, lexbot.ActionConfirmIntent, dialogAction(t, resp).Type)
	assert.Equal(t, lexbot.IntentInProgress, resp.SessionState.Intent.State)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, lexbot.ContentCustomPayload, resp.Messages[0].ContentType)
	assert.Contains(t, resp.Messages[0].Content, confirmTitle)
}

func TestFulfill_ConfirmationDenied(t *testing.T) {
	h, _, _ := newTestHandler(t)
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentLoanApp, lexbot.ConfirmationDenied, nil, nil)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, lexbot.ActionClose, dialogAction(t, resp).Type)
	assert.Equal(t, lexbot.IntentFulfilled, resp.SessionState.Intent.State)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, cancelledMessage, resp.Messages[0].Content)
}

func TestFulfill_ConfirmedWithoutFileReference(t *testing.T) {
	h, extractor, fetcher := newTestHandler(t)
	slots := map[string]*lexbot.Slot{
		SlotLoanType:   filledSlot("home"),
		SlotLoanAmount: filledSlot("5000"),
	}
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentLoanApp, lexbot.ConfirmationConfirmed, slots, nil)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, lexbot.ActionClose, dialogAction(t, resp).Type)
	assert.Equal(t, lexbot.IntentFailed, resp.SessionState.Intent.State)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, technicalIssuesMessage, resp.Messages[0].Content)

	// Terminal failure: no document fetch or extraction attempted.
	fetcher.AssertNotCalled(t, "FetchBytes", mock.Anything, mock.Anything)
	extractor.AssertNotCalled(t, "WageAmount", mock.Anything, mock.Anything)
}

// ==========================
// Fulfillment Evaluation
// ==========================

func TestFulfill_ConfirmedApproves(t *testing.T) {
	h, extractor, fetcher := newTestHandler(t)

	fetcher.On("FetchBytes", mock.Anything, "https://files.example.com/w2.png").
		Return([]byte("image-bytes"), nil)
	extractor.On("WageAmount", mock.Anything, []byte("image-bytes")).
		Return(12000, nil)

	slots := map[string]*lexbot.Slot{
		SlotLoanType:   filledSlot("auto"),
		SlotLoanAmount: filledSlot("4000"),
	}
	attrs := map[string]string{"urlfile": "https://files.example.com/w2.png"}
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentLoanApp, lexbot.ConfirmationConfirmed, slots, attrs)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, lexbot.ActionClose, dialogAction(t, resp).Type)
	assert.Equal(t, lexbot.IntentFulfilled, resp.SessionState.Intent.State)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, approvedMessage, resp.Messages[0].Content)

	fetcher.AssertExpectations(t)
	extractor.AssertExpectations(t)
}

func TestFulfill_ConfirmedDenies(t *testing.T) {
	h, extractor, fetcher := newTestHandler(t)

	fetcher.On("FetchBytes", mock.Anything, mock.Anything).Return([]byte("doc"), nil)
	extractor.On("WageAmount", mock.Anything, mock.Anything).Return(1000, nil)

	slots := map[string]*lexbot.Slot{
		SlotLoanType:   filledSlot("business"),
		SlotLoanAmount: filledSlot("500"),
	}
	attrs := map[string]string{"urlfile": "https://files.example.com/w2.png"}
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentLoanApp, lexbot.ConfirmationConfirmed, slots, attrs)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, deniedMessage, resp.Messages[0].Content)
	assert.Equal(t, lexbot.IntentFulfilled, resp.SessionState.Intent.State)
}

func TestFulfill_WageFieldMissingIsTerminal(t *testing.T) {
	h, extractor, fetcher := newTestHandler(t)

	fetcher.On("FetchBytes", mock.Anything, mock.Anything).Return([]byte("doc"), nil)
	extractor.On("WageAmount", mock.Anything, mock.Anything).
		Return(0, docextract.ErrFieldNotFound)

	slots := map[string]*lexbot.Slot{
		SlotLoanType:   filledSlot("auto"),
		SlotLoanAmount: filledSlot("4000"),
	}
	attrs := map[string]string{"urlfile": "https://files.example.com/w2.png"}
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentLoanApp, lexbot.ConfirmationConfirmed, slots, attrs)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, lexbot.ActionClose, dialogAction(t, resp).Type)
	assert.Equal(t, lexbot.IntentFailed, resp.SessionState.Intent.State)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, technicalIssuesMessage, resp.Messages[0].Content)
}

// ==========================
// Dispatch
// ==========================

func TestHandle_UnknownInvocationSource(t *testing.T) {
	h, _, _ := newTestHandler(t)
	event := newEvent("SomethingElse", IntentLoanApp, "", nil, nil)

	_, err := h.Handle(context.Background(), event)
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeRequestInvalid, stdErr.Code)
	assert.Contains(t, stdErr.Details, "unknown invocation source: SomethingElse")
}

func TestHandle_FallbackCheckedBeforeConfirmationState(t *testing.T) {
	h, extractor, _ := newTestHandler(t)

	// A fallback intent carrying a confirmed state must still take the
	// retry path, never the evaluation path.
	event := newEvent(lexbot.SourceFulfillmentCodeHook, IntentFallback, lexbot.ConfirmationConfirmed, nil, map[string]string{})

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, lexbot.ActionElicitIntent, dialogAction(t, resp).Type)
	extractor.AssertNotCalled(t, "WageAmount", mock.Anything, mock.Anything)
}
