// internal/functions/sessionsync/handler.go

// Package sessionsync reconciles session state between the web client and the
// Lex session store: "get" returns the stored attributes, "put" merges caller
// attributes into the store via read-modify-write and returns the
// store-authoritative post-write attributes.
package sessionsync

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"

	"chatbot-lambdas/internal/common/errors"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/common/metrics"
	"chatbot-lambdas/internal/common/validation"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2/types"
	"github.com/prometheus/client_golang/prometheus"
)

const FunctionName = "session-sync"

const sessionPath = "/session"

// Supported action values.
const (
	actionGet = "get"
	actionPut = "put"
)

// SessionStore is the narrow Lex runtime surface the adapter depends on. Bot
// identity is fixed inside the implementation; only the session id varies.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*lexruntimev2.GetSessionOutput, error)
	PutSession(ctx context.Context, sessionID string, state *types.SessionState) (*lexruntimev2.PutSessionOutput, error)
}

type Handler struct {
	store  SessionStore
	logger logger.Logger
}

func NewHandler(store SessionStore, log logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: log.WithFields(map[string]interface{}{"function": FunctionName}),
	}
}

// Handle serves one POST /session invocation. Every outcome, including
// errors, is a 200 with the uniform envelope; the caller branches on status.
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	timer := prometheus.NewTimer(metrics.HandlerDuration.WithLabelValues(FunctionName))
	defer timer.ObserveDuration()
	metrics.HandlerInvocations.WithLabelValues(FunctionName).Inc()

	if request.Path != sessionPath {
		return h.errorResponse(errors.NewRequestInvalidError("path: "+request.Path),
			"Invalid url configuration"), nil
	}

	var req Request
	if request.Body != "" {
		result, err := validation.ValidateBody([]byte(request.Body), requestSchema)
		if err != nil {
			return h.errorResponse(errors.NewRequestInvalidError(err.Error()),
				"request validation error: "+err.Error()), nil
		}
		if !result.Valid {
			return h.errorResponse(errors.NewRequestInvalidError(result.ErrorText()),
				"invalid request body: "+result.ErrorText()), nil
		}
		if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
			return h.errorResponse(errors.NewRequestInvalidError(err.Error()),
				"invalid request body: "+err.Error()), nil
		}
	}

	if req.ParticipantID == "" || req.Action == "" {
		return h.errorResponse(errors.NewRequestInvalidError("participantId and action are required"),
			"no participantId or action type provided"), nil
	}

	// Action is validated before any store traffic.
	if req.Action != actionGet && req.Action != actionPut {
		return h.errorResponse(errors.NewUnknownActionError(req.Action),
			"unknown action type: "+req.Action), nil
	}

	// Both actions start from the current store state; there is no atomic
	// patch operation.
	getResp, err := h.store.GetSession(ctx, req.ParticipantID)
	if err != nil {
		return h.errorResponse(errors.NewSessionGetFailedError(err),
			"lex get session error: "+err.Error()), nil
	}

	state := getResp.SessionState
	attributes := map[string]string{}
	if state != nil {
		attributes = stripClearedAttributes(state.SessionAttributes)
	}

	if req.Action == actionGet {
		return h.successResponse("lex get session", attributes), nil
	}

	if state == nil {
		state = &types.SessionState{}
	}
	normalizeSlots(state)
	if state.SessionAttributes == nil {
		state.SessionAttributes = map[string]string{}
	}
	for k, v := range req.Attributes {
		state.SessionAttributes[k] = v
	}

	putResp, err := h.store.PutSession(ctx, req.ParticipantID, state)
	if err != nil {
		return h.errorResponse(errors.NewSessionPutFailedError(err),
			"lex put session error: "+err.Error()), nil
	}

	// The acknowledged state is authoritative; the store may normalize
	// or augment what was written.
	ackAttributes, err := decodeAckAttributes(putResp.SessionState)
	if err != nil {
		return h.errorResponse(errors.NewSessionPutFailedError(err),
			"lex put session error: "+err.Error()), nil
	}
	return h.successResponse("lex put session", ackAttributes), nil
}

// stripClearedAttributes drops attributes the runtime reports with no value.
func stripClearedAttributes(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// normalizeSlots rewrites valueless slot entries as empty placeholders; the
// store rejects raw nulls for slots on write.
func normalizeSlots(state *types.SessionState) {
	if state.Intent == nil {
		return
	}
	for name, slot := range state.Intent.Slots {
		if slot.Value == nil && len(slot.Values) == 0 {
			state.Intent.Slots[name] = types.Slot{}
		}
	}
}

// decodeAckAttributes decodes the PutSession acknowledgement: a base64
// encoded, gzip compressed session state document.
func decodeAckAttributes(encoded *string) (map[string]string, error) {
	if encoded == nil {
		return map[string]string{}, nil
	}

	compressed, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	var ack ackSessionState
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(ack.SessionAttributes))
	for k, v := range ack.SessionAttributes {
		if v != nil {
			out[k] = *v
		}
	}
	return out, nil
}

func (h *Handler) successResponse(message string, attributes map[string]string) events.APIGatewayProxyResponse {
	return h.envelope(statusSuccess, message, attributes)
}

func (h *Handler) errorResponse(cause *errors.StandardError, message string) events.APIGatewayProxyResponse {
	h.logger.WithError(cause).Error(message, nil)
	metrics.HandlerFailures.WithLabelValues(FunctionName, string(cause.Code)).Inc()
	return h.envelope(statusError, message, nil)
}

func (h *Handler) envelope(status, message string, attributes map[string]string) events.APIGatewayProxyResponse {
	if attributes == nil {
		attributes = map[string]string{}
	}
	body, _ := json.Marshal(ResponseBody{
		Status:     status,
		Message:    message,
		Attributes: attributes,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers: map[string]string{
			"Access-Control-Allow-Headers": "Content-Type,Authorization,X-Amz-Date,X-Api-Key,X-Amz-Security-Token",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "OPTIONS,POST",
		},
		Body: string(body),
	}
}
