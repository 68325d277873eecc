// internal/functions/chatstart/handler.go

// Package chatstart starts a chat contact on the contact-center platform on
// behalf of the web client.
package chatstart

import (
	"context"
	"encoding/json"

	"chatbot-lambdas/internal/common/errors"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/common/metrics"
	"chatbot-lambdas/internal/common/validation"

	"github.com/aws/aws-lambda-go/events"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const FunctionName = "chat-start"

// ChatStarter is the narrow Connect surface the handler depends on.
type ChatStarter interface {
	StartChatContact(ctx context.Context, input *connect.StartChatContactInput) (*connect.StartChatContactOutput, error)
}

type Handler struct {
	connect ChatStarter
	logger  logger.Logger
}

func NewHandler(connectClient ChatStarter, log logger.Logger) *Handler {
	return &Handler{
		connect: connectClient,
		logger:  log.WithFields(map[string]interface{}{"function": FunctionName}),
	}
}

func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	timer := prometheus.NewTimer(metrics.HandlerDuration.WithLabelValues(FunctionName))
	defer timer.ObserveDuration()
	metrics.HandlerInvocations.WithLabelValues(FunctionName).Inc()

	result, err := validation.ValidateBody([]byte(request.Body), requestSchema)
	if err != nil {
		return h.errorResponse(errors.NewRequestInvalidError(err.Error()),
			"request validation error: "+err.Error()), nil
	}
	if !result.Valid {
		return h.errorResponse(errors.NewRequestInvalidError(result.ErrorText()),
			"invalid request body: "+result.ErrorText()), nil
	}

	var req Request
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return h.errorResponse(errors.NewRequestInvalidError(err.Error()),
			"invalid request body: "+err.Error()), nil
	}

	h.logger.Info("start chat contact", map[string]interface{}{
		"instanceId":    req.InstanceID,
		"contactFlowId": req.ContactFlowID,
	})

	resp, err := h.connect.StartChatContact(ctx, &connect.StartChatContactInput{
		InstanceId:    awssdk.String(req.InstanceID),
		ContactFlowId: awssdk.String(req.ContactFlowID),
		ClientToken:   awssdk.String(uuid.NewString()),
		Attributes: map[string]string{
			"customerName": req.ParticipantDetails.DisplayName,
		},
		ParticipantDetails: &types.ParticipantDetails{
			DisplayName: awssdk.String(req.ParticipantDetails.DisplayName),
		},
	})
	if err != nil {
		return h.errorResponse(errors.NewChatStartFailedError(err), err.Error()), nil
	}

	return h.successResponse(StartChatResult{
		ContactID:        awssdk.ToString(resp.ContactId),
		ParticipantID:    awssdk.ToString(resp.ParticipantId),
		ParticipantToken: awssdk.ToString(resp.ParticipantToken),
	}), nil
}

func (h *Handler) successResponse(result StartChatResult) events.APIGatewayProxyResponse {
	var body successBody
	body.Data.StartChatResult = result
	payload, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    corsHeaders(),
		Body:       string(payload),
	}
}

func (h *Handler) errorResponse(cause *errors.StandardError, message string) events.APIGatewayProxyResponse {
	h.logger.WithError(cause).Error(message, nil)
	metrics.HandlerFailures.WithLabelValues(FunctionName, string(cause.Code)).Inc()
	var body errorBody
	body.Data.Error = message
	payload, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Headers:    corsHeaders(),
		Body:       string(payload),
	}
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      "*",
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Allow-Headers":     "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
	}
}
