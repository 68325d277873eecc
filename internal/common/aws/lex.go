// internal/common/aws/lex.go
package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2/types"
)

// LexSessionClient wraps the Lex V2 runtime client for session store access.
// Bot identity is fixed at construction; callers supply only the session id.
type LexSessionClient struct {
	client     *lexruntimev2.Client
	botID      string
	botAliasID string
	localeID   string
}

func NewLexSessionClient(ctx context.Context, region, botID, botAliasID, localeID string) (*LexSessionClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &LexSessionClient{
		client:     lexruntimev2.NewFromConfig(cfg),
		botID:      botID,
		botAliasID: botAliasID,
		localeID:   localeID,
	}, nil
}

func (c *LexSessionClient) GetSession(ctx context.Context, sessionID string) (*lexruntimev2.GetSessionOutput, error) {
	return c.client.GetSession(ctx, &lexruntimev2.GetSessionInput{
		BotId:      awssdk.String(c.botID),
		BotAliasId: awssdk.String(c.botAliasID),
		LocaleId:   awssdk.String(c.localeID),
		SessionId:  awssdk.String(sessionID),
	})
}

func (c *LexSessionClient) PutSession(ctx context.Context, sessionID string, state *types.SessionState) (*lexruntimev2.PutSessionOutput, error) {
	return c.client.PutSession(ctx, &lexruntimev2.PutSessionInput{
		BotId:               awssdk.String(c.botID),
		BotAliasId:          awssdk.String(c.botAliasID),
		LocaleId:            awssdk.String(c.localeID),
		SessionId:           awssdk.String(sessionID),
		SessionState:        state,
		ResponseContentType: awssdk.String("text/plain; charset=utf-8"),
	})
}
