// Package snsfake stubs the AWS SNS publish API for tests of code that
// talks to the generated SDK v2 client directly instead of the generic
// notify.Publisher contract.
package snsfake

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

// PublishAPI is the slice of the SNS client that code under test should
// depend on so this fake can stand in for the real client.
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// FakeSNSClient records publish inputs and can raise on demand. Like
// the doubles in pkg/fakes it is unsynchronized and owned by a single
// test.
type FakeSNSClient struct {
	Published   []*sns.PublishInput
	shouldRaise bool
}

func NewFakeSNSClient(shouldRaise bool) *FakeSNSClient {
	return &FakeSNSClient{
		Published:   make([]*sns.PublishInput, 0),
		shouldRaise: shouldRaise,
	}
}

// Publish appends params to Published before any forced failure. On
// success it returns an output with a fresh message id, like the real
// service.
func (c *FakeSNSClient) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	c.Published = append(c.Published, params)
	if c.shouldRaise {
		return nil, &smithy.GenericAPIError{Code: "InternalError", Message: "publish boom"}
	}
	return &sns.PublishOutput{MessageId: aws.String(uuid.NewString())}, nil
}

// Reset clears the recorded inputs so the fake can be reused between
// sub-tests.
func (c *FakeSNSClient) Reset() {
	c.Published = c.Published[:0]
}

var _ PublishAPI = (*FakeSNSClient)(nil)
