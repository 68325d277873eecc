// cmd/bot-handler/main.go
package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"chatbot-lambdas/internal/common/aws"
	"chatbot-lambdas/internal/common/config"
	commonhttp "chatbot-lambdas/internal/common/http"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/docextract"
	"chatbot-lambdas/internal/functions/loanbot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx := context.Background()
	textractClient, err := aws.NewTextractClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("textract client init failed", zap.Error(err))
	}

	handler := loanbot.NewHandler(
		loanbot.LoadConfig(),
		docextract.NewExtractor(textractClient),
		commonhttp.NewClient(20*time.Second),
		log,
	)

	lambda.Start(handler.Handle)
}
