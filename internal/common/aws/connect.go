// internal/common/aws/connect.go
package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/connect/types"
)

type ConnectClient struct {
	client *connect.Client
}

func NewConnectClient(ctx context.Context, region string) (*ConnectClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &ConnectClient{client: connect.NewFromConfig(cfg)}, nil
}

func (c *ConnectClient) StartChatContact(ctx context.Context, input *connect.StartChatContactInput) (*connect.StartChatContactOutput, error) {
	return c.client.StartChatContact(ctx, input)
}

// AssociateBot attaches a Lex V2 bot alias to a Connect instance.
func (c *ConnectClient) AssociateBot(ctx context.Context, instanceID, botAliasArn string) error {
	_, err := c.client.AssociateBot(ctx, &connect.AssociateBotInput{
		InstanceId: awssdk.String(instanceID),
		LexV2Bot: &types.LexV2Bot{
			AliasArn: awssdk.String(botAliasArn),
		},
	})
	return err
}

// DisassociateBot detaches a Lex V2 bot alias from a Connect instance.
func (c *ConnectClient) DisassociateBot(ctx context.Context, instanceID, botAliasArn string) error {
	_, err := c.client.DisassociateBot(ctx, &connect.DisassociateBotInput{
		InstanceId: awssdk.String(instanceID),
		LexV2Bot: &types.LexV2Bot{
			AliasArn: awssdk.String(botAliasArn),
		},
	})
	return err
}
