package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/shopspring/decimal"
)

const TypeOrderPlaced = "order.placed"

type OrderPlaced struct {
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total_price"`
	PlacedAt   time.Time       `json:"placed_at"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event *OrderPlaced) error
}

// subset of *sns.Client used here
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsPublisher struct {
	client   snsAPI
	topicARN string
}

// NewSNSPublisher returns a publisher for cfg.OrderTopicARN, or one that
// drops events when no topic is configured.
func NewSNSPublisher(ctx context.Context, cfg config.AWS) (Publisher, error) {
	if cfg.OrderTopicARN == "" {
		slog.Info("Order topic not configured, order events are disabled")

		return noopPublisher{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newSNSPublisher(sns.NewFromConfig(awsCfg), cfg.OrderTopicARN), nil
}

func newSNSPublisher(client snsAPI, topicARN string) Publisher {
	return &snsPublisher{client: client, topicARN: topicARN}
}

func (p *snsPublisher) PublishOrderPlaced(ctx context.Context, event *OrderPlaced) error {
	return p.publish(ctx, TypeOrderPlaced, event)
}

func (p *snsPublisher) publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(eventType),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", p.topicARN, err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishOrderPlaced(context.Context, *OrderPlaced) error {
	return nil
}
