package metrics

import (
	"context"
	"fmt"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/qscaler/qscaler/models"
)

type QueueLengthFetcher interface {
	QueueLength(ctx context.Context, queueURL string) (int, error)
}

// SQSAPI is the part of *sqs.Client used to read queue depth.
type SQSAPI interface {
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
}

type SQSConfig struct {
	Region   string `yaml:"region" json:"region"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

var _ QueueLengthFetcher = &SQSQueueLengthFetcher{}

type SQSQueueLengthFetcher struct {
	client SQSAPI
	logger lager.Logger
}

// NewSQSClient resolves credentials and region through the default AWS chain.
func NewSQSClient(ctx context.Context, conf SQSConfig) (*sqs.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, awsconfig.WithRegion(conf.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws sdk configuration: %w", err)
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	}), nil
}

func NewSQSQueueLengthFetcher(client SQSAPI, logger lager.Logger) *SQSQueueLengthFetcher {
	return &SQSQueueLengthFetcher{
		client: client,
		logger: logger.Session("sqs-queue-length-fetcher"),
	}
}

func (f *SQSQueueLengthFetcher) QueueLength(ctx context.Context, queueURL string) (int, error) {
	output, err := f.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameApproximateNumberOfMessages},
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", models.ErrQueueUnreachable, err.Error())
	}

	raw, ok := output.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]
	if !ok {
		f.logger.Info("approximate-number-of-messages-missing", lager.Data{"queue_url": queueURL})
		return 0, nil
	}

	length, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid approximate number of messages %q", models.ErrQueueUnreachable, raw)
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: negative approximate number of messages %d", models.ErrQueueUnreachable, length)
	}
	return length, nil
}
