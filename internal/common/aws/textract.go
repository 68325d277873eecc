// internal/common/aws/textract.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

type TextractClient struct {
	client *textract.Client
}

func NewTextractClient(ctx context.Context, region string) (*TextractClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &TextractClient{client: textract.NewFromConfig(cfg)}, nil
}

// AnalyzeDocumentForms runs form-field extraction over raw document bytes.
func (c *TextractClient) AnalyzeDocumentForms(ctx context.Context, documentBytes []byte) (*textract.AnalyzeDocumentOutput, error) {
	return c.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document: &types.Document{
			Bytes: documentBytes,
		},
		FeatureTypes: []types.FeatureType{types.FeatureTypeForms},
	})
}
