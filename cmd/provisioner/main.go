// cmd/provisioner/main.go
package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"chatbot-lambdas/internal/common/aws"
	"chatbot-lambdas/internal/common/config"
	commonhttp "chatbot-lambdas/internal/common/http"
	"chatbot-lambdas/internal/common/logger"
	"chatbot-lambdas/internal/functions/provision"
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
	connectClient, err := aws.NewConnectClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("connect client init failed", zap.Error(err))
	}
	s3Client, err := aws.NewS3Client(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("s3 client init failed", zap.Error(err))
	}

	handler := provision.NewHandler(
		cfg.Website,
		connectClient,
		s3Client,
		commonhttp.NewClient(30*time.Second),
		lambdacontext.LogStreamName,
		log,
	)

	lambda.Start(handler.Handle)
}
