// internal/functions/provision/handler.go

// Package provision implements the infrastructure lifecycle hook: it
// associates the bot with the contact-center instance, publishes the chat
// widget assets, and customizes the website index file, then reports
// completion to the caller-supplied callback URL exactly once per invocation.
package provision

import (
	"context"
	"encoding/json"

	"chatbot-lambdas/internal/common/config"
	"chatbot-lambdas/internal/common/errors"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/common/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const FunctionName = "provisioner"

// BotAssociator is the contact-center surface for bot lifecycle.
type BotAssociator interface {
	AssociateBot(ctx context.Context, instanceID, botAliasArn string) error
	DisassociateBot(ctx context.Context, instanceID, botAliasArn string) error
}

// ObjectPutter uploads website assets to the destination bucket.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucket, key, contentType string, body []byte) error
}

// CallbackSender delivers the completion payload to the presigned URL.
type CallbackSender interface {
	PutCallback(ctx context.Context, url string, payload []byte) error
}

type Handler struct {
	website  config.WebsiteConfig
	connect  BotAssociator
	s3       ObjectPutter
	callback CallbackSender
	logger   logger.Logger

	// logStreamName identifies the invocation in the completion Reason and
	// doubles as the physical resource id.
	logStreamName string
}

func NewHandler(website config.WebsiteConfig, connectClient BotAssociator, s3Client ObjectPutter, callback CallbackSender, logStreamName string, log logger.Logger) *Handler {
	if logStreamName == "" {
		logStreamName = uuid.NewString()
	}
	return &Handler{
		website:       website,
		connect:       connectClient,
		s3:            s3Client,
		callback:      callback,
		logger:        log.WithFields(map[string]interface{}{"function": FunctionName}),
		logStreamName: logStreamName,
	}
}

// Handle processes one lifecycle event. The completion callback is sent for
// every outcome, success or failure.
func (h *Handler) Handle(ctx context.Context, event Event) error {
	timer := prometheus.NewTimer(metrics.HandlerDuration.WithLabelValues(FunctionName))
	defer timer.ObserveDuration()
	metrics.HandlerInvocations.WithLabelValues(FunctionName).Inc()

	status := h.process(ctx, event)
	if status != StatusSuccess {
		metrics.HandlerFailures.WithLabelValues(FunctionName, "PROVISION_FAILED").Inc()
	}
	return h.sendCompletion(ctx, event, status)
}

func (h *Handler) process(ctx context.Context, event Event) string {
	customAction := event.ResourceProperties[propCustomAction]
	h.logger.Info("processing lifecycle event", map[string]interface{}{
		"requestType":  event.RequestType,
		"customAction": customAction,
	})

	if customAction == "" {
		h.logger.Error("no customAction defined in resource properties", nil)
		return StatusFailed
	}

	switch event.RequestType {
	case RequestDelete:
		if customAction == ActionConfigureConnectBot {
			return h.disassociateBot(ctx, event.ResourceProperties)
		}
		// Nothing to tear down for the other actions.
		return StatusSuccess

	case RequestCreate, RequestUpdate:
		switch customAction {
		case ActionConfigureConnectBot:
			// Association happens on create only; updates are a no-op.
			if event.RequestType == RequestCreate {
				return h.associateBot(ctx, event.ResourceProperties)
			}
			return StatusSuccess
		case ActionConfigureWebsite:
			return h.copyWebsiteFiles(ctx, event.ResourceProperties)
		case ActionConfigureIndexFile:
			return h.configIndexFile(ctx, event.ResourceProperties)
		default:
			h.logger.Error("unknown custom action", map[string]interface{}{
				"customAction": customAction,
			})
			return StatusFailed
		}

	default:
		h.logger.Error("unknown request type", map[string]interface{}{
			"requestType": event.RequestType,
		})
		return StatusFailed
	}
}

func (h *Handler) associateBot(ctx context.Context, props map[string]string) string {
	err := h.connect.AssociateBot(ctx, props[propInstanceID], props[propBotAliasArn])
	if err != nil {
		h.logger.WithError(errors.NewBotAssociateFailedError(err)).Error("associate bot failed", nil)
		return StatusFailed
	}
	h.logger.Info("bot associated with instance", map[string]interface{}{
		"instanceId": props[propInstanceID],
	})
	return StatusSuccess
}

func (h *Handler) disassociateBot(ctx context.Context, props map[string]string) string {
	err := h.connect.DisassociateBot(ctx, props[propInstanceID], props[propBotAliasArn])
	if err != nil {
		h.logger.WithError(errors.NewBotAssociateFailedError(err)).Error("disassociate bot failed", nil)
		return StatusFailed
	}
	h.logger.Info("bot disassociated from instance", map[string]interface{}{
		"instanceId": props[propInstanceID],
	})
	return StatusSuccess
}

func (h *Handler) sendCompletion(ctx context.Context, event Event, status string) error {
	payload, err := json.Marshal(completion{
		Status:             status,
		Reason:             "See the details in CloudWatch Log Stream: " + h.logStreamName,
		PhysicalResourceID: h.logStreamName,
		StackID:            event.StackID,
		RequestID:          event.RequestID,
		LogicalResourceID:  event.LogicalResourceID,
		Data:               map[string]string{},
	})
	if err != nil {
		return err
	}

	if err := h.callback.PutCallback(ctx, event.ResponseURL, payload); err != nil {
		stdErr := errors.NewCallbackSendFailedError(err)
		h.logger.WithError(stdErr).Error("completion callback delivery failed", nil)
		return stdErr
	}
	h.logger.Info("completion callback delivered", map[string]interface{}{
		"status": status,
	})
	return nil
}
