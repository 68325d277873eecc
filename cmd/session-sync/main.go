// cmd/session-sync/main.go
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"chatbot-lambdas/internal/common/aws"
	"chatbot-lambdas/internal/common/config"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/functions/sessionsync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	if err := config.ValidateLex(cfg); err != nil {
		zapLog.Fatal("lex bot configuration missing", zap.Error(err))
	}

	store, err := aws.NewLexSessionClient(
		context.Background(),
		cfg.AWS.Region,
		cfg.Lex.BotID,
		cfg.Lex.BotAliasID,
		cfg.Lex.LocaleID,
	)
	if err != nil {
		zapLog.Fatal("lex client init failed", zap.Error(err))
	}

	handler := sessionsync.NewHandler(store, log)
	lambda.Start(handler.Handle)
}
