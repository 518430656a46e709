package metrics_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/qscaler/qscaler/fakes"
	"github.com/qscaler/qscaler/metrics"
	"github.com/qscaler/qscaler/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

const queueURL = "https://sqs.us-east-1.amazonaws.com/123456789012/jobs"

var _ = Describe("SQSQueueLengthFetcher", func() {
	var (
		client  *fakes.FakeSQSAPI
		logger  *lagertest.TestLogger
		fetcher *metrics.SQSQueueLengthFetcher
		length  int
		err     error
	)

	withAttributes := func(attributes map[string]string) {
		client.GetQueueAttributesReturns(&sqs.GetQueueAttributesOutput{Attributes: attributes}, nil)
	}

	BeforeEach(func() {
		client = &fakes.FakeSQSAPI{}
		logger = lagertest.NewTestLogger("sqs-test")
		fetcher = metrics.NewSQSQueueLengthFetcher(client, logger)
	})

	JustBeforeEach(func() {
		length, err = fetcher.QueueLength(context.Background(), queueURL)
	})

	Context("when the queue reports its depth", func() {
		BeforeEach(func() {
			withAttributes(map[string]string{"ApproximateNumberOfMessages": "42"})
		})

		It("returns the approximate number of messages", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(length).To(Equal(42))

			Expect(client.GetQueueAttributesCallCount()).To(Equal(1))
			_, input, _ := client.GetQueueAttributesArgsForCall(0)
			Expect(aws.ToString(input.QueueUrl)).To(Equal(queueURL))
			Expect(input.AttributeNames).To(ConsistOf(types.QueueAttributeNameApproximateNumberOfMessages))
		})
	})

	Context("when the attribute is missing", func() {
		BeforeEach(func() {
			withAttributes(map[string]string{})
		})

		It("treats the queue as empty", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(length).To(Equal(0))
			Expect(logger.Buffer()).To(gbytes.Say("approximate-number-of-messages-missing"))
		})
	})

	Context("when the attribute is not a number", func() {
		BeforeEach(func() {
			withAttributes(map[string]string{"ApproximateNumberOfMessages": "many"})
		})

		It("returns a queue unreachable error", func() {
			Expect(err).To(MatchError(models.ErrQueueUnreachable))
		})
	})

	Context("when the attribute is negative", func() {
		BeforeEach(func() {
			withAttributes(map[string]string{"ApproximateNumberOfMessages": "-1"})
		})

		It("returns a queue unreachable error", func() {
			Expect(err).To(MatchError(models.ErrQueueUnreachable))
		})
	})

	Context("when the request fails", func() {
		BeforeEach(func() {
			client.GetQueueAttributesReturns(nil, errors.New("AccessDenied"))
		})

		It("returns a queue unreachable error", func() {
			Expect(err).To(MatchError(models.ErrQueueUnreachable))
			Expect(err).To(MatchError(ContainSubstring("AccessDenied")))
		})
	})
})

var _ = Describe("NewSQSClient", func() {
	It("uses the configured region and endpoint", func() {
		client, err := metrics.NewSQSClient(context.Background(), metrics.SQSConfig{
			Region:   "eu-west-1",
			Endpoint: "http://localhost:4566",
		})
		Expect(err).NotTo(HaveOccurred())

		options := client.Options()
		Expect(options.Region).To(Equal("eu-west-1"))
		Expect(aws.ToString(options.BaseEndpoint)).To(Equal("http://localhost:4566"))
	})
})
