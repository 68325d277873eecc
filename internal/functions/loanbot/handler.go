// internal/functions/loanbot/handler.go

// Package loanbot implements the Lex V2 code hook for the loan application
// intent: slot elicitation during validation, confirmation and fulfillment,
// and the bounded fallback retry loop.
package loanbot

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	apperrors "chatbot-lambdas/internal/common/errors"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/common/metrics"
	"chatbot-lambdas/internal/docextract"
	"chatbot-lambdas/internal/lexbot"

	"github.com/prometheus/client_golang/prometheus"
)

const FunctionName = "bot-handler"

// Intent and slot names the dispatcher keys on.
const (
	IntentLoanApp  = "LoanAppIntent"
	IntentFallback = "FallbackIntent"

	SlotLoanType   = "loanType"
	SlotLoanAmount = "loanAmount"
	SlotFileUpload = "fileUpload"
)

// User-facing prompts and terminal messages.
const (
	loanTypeTitle          = "What type of loan do you want?"
	loanAmountPrompt       = "How much do you want to borrow?"
	fileUploadPrompt       = "Please upload an image of your wages document."
	confirmTitle           = "Submit loan application?"
	retryPromptFirst       = "Sorry, but I don't understand. Can you please repeat your response?"
	retryPromptSecond      = "I still don't understand. Can you please repeat your response once more?"
	giveUpMessage          = "I'm sorry, but I cannot help at this time."
	cancelledMessage       = "Ok. I've cancelled your loan request."
	technicalIssuesMessage = "Sorry, but we are having technical difficulties. Please try again later."
)

// WageReader resolves the wage amount from uploaded document bytes.
type WageReader interface {
	WageAmount(ctx context.Context, documentBytes []byte) (int, error)
}

// FileFetcher retrieves the uploaded file referenced from session attributes.
type FileFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

type Handler struct {
	config    *Config
	extractor WageReader
	fetcher   FileFetcher
	logger    logger.Logger
}

func NewHandler(config *Config, extractor WageReader, fetcher FileFetcher, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		extractor: extractor,
		fetcher:   fetcher,
		logger:    log.WithFields(map[string]interface{}{"function": FunctionName}),
	}
}

// Handle dispatches one invocation by phase and returns exactly one dialog
// directive.
func (h *Handler) Handle(ctx context.Context, event lexbot.Event) (lexbot.Response, error) {
	timer := prometheus.NewTimer(metrics.HandlerDuration.WithLabelValues(FunctionName))
	defer timer.ObserveDuration()
	metrics.HandlerInvocations.WithLabelValues(FunctionName).Inc()

	if event.SessionState.SessionAttributes == nil {
		event.SessionState.SessionAttributes = map[string]string{}
	}

	switch event.InvocationSource {
	case lexbot.SourceDialogCodeHook:
		return h.validate(event)
	case lexbot.SourceFulfillmentCodeHook:
		return h.fulfill(ctx, event)
	default:
		h.logger.Error("unknown invocation source", map[string]interface{}{
			"invocationSource": event.InvocationSource,
		})
		metrics.HandlerFailures.WithLabelValues(FunctionName, string(apperrors.ErrCodeRequestInvalid)).Inc()
		return lexbot.Response{}, apperrors.NewRequestInvalidError(
			"unknown invocation source: " + event.InvocationSource)
	}
}

// validate elicits the first unfilled required slot; the check order
// loanType, loanAmount, fileUpload is significant.
func (h *Handler) validate(event lexbot.Event) (lexbot.Response, error) {
	intent := event.SessionState.Intent
	contexts := event.SessionState.ActiveContexts
	attrs := event.SessionState.SessionAttributes

	h.logger.Info("validation", map[string]interface{}{
		"intent": intent.Name,
		"slots":  intent.Slots,
	})

	if intent.Name == IntentLoanApp {
		if !intent.Slot(SlotLoanType).IsFilled() {
			message, err := lexbot.ListPicker(loanTypeTitle, []lexbot.ListPickerElement{
				{Title: "auto"},
				{Title: "home"},
				{Title: "business"},
			})
			if err != nil {
				return lexbot.Response{}, err
			}
			return lexbot.ElicitSlot(intent, contexts, attrs, SlotLoanType, message, event.RequestAttributes), nil
		}

		if !intent.Slot(SlotLoanAmount).IsFilled() {
			return lexbot.ElicitSlot(intent, contexts, attrs, SlotLoanAmount,
				lexbot.PlainText(loanAmountPrompt), event.RequestAttributes), nil
		}

		if !intent.Slot(SlotFileUpload).IsFilled() {
			return lexbot.ElicitSlot(intent, contexts, attrs, SlotFileUpload,
				lexbot.PlainText(fileUploadPrompt), event.RequestAttributes), nil
		}
	}

	return lexbot.Delegate(intent, contexts, attrs, event.Messages, event.RequestAttributes), nil
}

// fulfill handles the fulfillment phase. The fallback-intent check runs
// before any confirmation-state logic; dispatch is intent-name-driven.
func (h *Handler) fulfill(ctx context.Context, event lexbot.Event) (lexbot.Response, error) {
	intent := event.SessionState.Intent
	contexts := event.SessionState.ActiveContexts
	attrs := event.SessionState.SessionAttributes

	h.logger.Info("fulfillment", map[string]interface{}{
		"intent":            intent.Name,
		"confirmationState": intent.ConfirmationState,
	})

	if intent.Name == IntentFallback {
		return h.fallbackRetry(intent, contexts, attrs, event.RequestAttributes)
	}

	switch intent.ConfirmationState {
	case lexbot.ConfirmationNone:
		intent.State = lexbot.IntentInProgress
		message, err := lexbot.ListPicker(confirmTitle, []lexbot.ListPickerElement{
			{Title: "yes"},
			{Title: "no"},
		})
		if err != nil {
			return lexbot.Response{}, err
		}
		return lexbot.ConfirmIntent(intent, contexts, attrs, message, event.RequestAttributes), nil

	case lexbot.ConfirmationDenied:
		intent.State = lexbot.IntentFulfilled
		return lexbot.Close(intent, contexts, attrs,
			lexbot.PlainText(cancelledMessage), event.RequestAttributes), nil

	default:
		return h.evaluateLoan(ctx, intent, contexts, attrs, event.RequestAttributes)
	}
}

// fallbackRetry implements the bounded retry loop keyed on the botTry
// session attribute.
func (h *Handler) fallbackRetry(intent lexbot.Intent, contexts []json.RawMessage, attrs map[string]string, reqAttrs map[string]string) (lexbot.Response, error) {
	intent.State = lexbot.IntentInProgress

	retry := loadRetryState(attrs)
	retry.Attempts++
	retry.store(attrs)

	if retry.Attempts < h.config.MaxBotTries {
		prompt := retryPromptSecond
		if retry.Attempts == 1 {
			prompt = retryPromptFirst
		}
		return lexbot.ElicitIntent(intent, contexts, attrs,
			lexbot.PlainText(prompt), reqAttrs), nil
	}

	intent.State = lexbot.IntentFulfilled
	clearRetryState(attrs)
	h.logger.Info("fallback retry ceiling reached", map[string]interface{}{
		"attempts": retry.Attempts,
		"outcome":  string(apperrors.ErrCodeRetryCeiling),
	})
	return lexbot.Close(intent, contexts, attrs,
		lexbot.PlainText(giveUpMessage), reqAttrs), nil
}

// evaluateLoan runs the confirmed-intent path: fetch the uploaded document,
// extract the wage amount, and close with the decision.
func (h *Handler) evaluateLoan(ctx context.Context, intent lexbot.Intent, contexts []json.RawMessage, attrs map[string]string, reqAttrs map[string]string) (lexbot.Response, error) {
	loanType := intent.Slot(SlotLoanType).Interpreted()
	fileURL := attrs[attrFileURL]

	loanAmount, amountErr := strconv.Atoi(intent.Slot(SlotLoanAmount).Interpreted())

	if fileURL == "" || amountErr != nil {
		// No uploaded document reference (or an unusable amount) is a
		// terminal failure for this turn, not retried.
		h.logger.Error("fulfillment missing prerequisites", map[string]interface{}{
			"hasFileUrl":  fileURL != "",
			"amountError": amountErr,
		})
		metrics.HandlerFailures.WithLabelValues(FunctionName, string(apperrors.ErrCodeRequestInvalid)).Inc()
		intent.State = lexbot.IntentFailed
		return lexbot.Close(intent, contexts, attrs,
			lexbot.PlainText(technicalIssuesMessage), reqAttrs), nil
	}

	documentBytes, err := h.fetcher.FetchBytes(ctx, fileURL)
	if err != nil {
		stdErr := apperrors.NewFileFetchFailedError(fileURL, err)
		h.logger.WithError(stdErr).Error("uploaded file fetch failed", map[string]interface{}{
			"url": fileURL,
		})
		metrics.HandlerFailures.WithLabelValues(FunctionName, string(stdErr.Code)).Inc()
		intent.State = lexbot.IntentFailed
		return lexbot.Close(intent, contexts, attrs,
			lexbot.PlainText(technicalIssuesMessage), reqAttrs), nil
	}

	h.logger.Info("loan evaluate", map[string]interface{}{
		"loanType":   loanType,
		"loanAmount": loanAmount,
	})

	wage, err := h.extractor.WageAmount(ctx, documentBytes)
	if err != nil {
		// A document with no recognizable wage field is a terminal domain
		// outcome; any other extraction failure lands on the same path.
		stdErr := apperrors.NewExtractionFailedError(err)
		if errors.Is(err, docextract.ErrFieldNotFound) {
			stdErr = apperrors.NewWageFieldNotFoundError(err)
		}
		h.logger.WithError(stdErr).Error("wage extraction failed", nil)
		metrics.HandlerFailures.WithLabelValues(FunctionName, string(stdErr.Code)).Inc()
		intent.State = lexbot.IntentFailed
		return lexbot.Close(intent, contexts, attrs,
			lexbot.PlainText(technicalIssuesMessage), reqAttrs), nil
	}

	decision := Decide(wage, loanAmount)
	h.logger.Info("loan decision", map[string]interface{}{
		"result": decision.Result,
	})

	intent.State = lexbot.IntentFulfilled
	return lexbot.Close(intent, contexts, attrs,
		lexbot.PlainText(decision.Message), reqAttrs), nil
}
