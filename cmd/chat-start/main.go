// cmd/chat-start/main.go
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"chatbot-lambdas/internal/common/aws"
	"chatbot-lambdas/internal/common/config"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/functions/chatstart"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	connectClient, err := aws.NewConnectClient(context.Background(), cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("connect client init failed", zap.Error(err))
	}

	handler := chatstart.NewHandler(connectClient, log)
	lambda.Start(handler.Handle)
}
