package snsfake

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSNSClientRecordsPublishInput(t *testing.T) {
	client := NewFakeSNSClient(false)

	out, err := client.Publish(context.Background(), &sns.PublishInput{
		TopicArn: aws.String("arn:aws:sns:us-east-1:123456789012:alerts"),
		Message:  aws.String("x"),
	})

	require.NoError(t, err)
	require.NotNil(t, out.MessageId)
	assert.NotEmpty(t, *out.MessageId)
	require.Len(t, client.Published, 1)
	assert.Equal(t, "x", *client.Published[0].Message)
}

func TestFakeSNSClientKeepsInputOrder(t *testing.T) {
	client := NewFakeSNSClient(false)

	messages := []string{"first", "second", "third"}
	for _, msg := range messages {
		_, err := client.Publish(context.Background(), &sns.PublishInput{Message: aws.String(msg)})
		require.NoError(t, err)
	}

	require.Len(t, client.Published, len(messages))
	for i, msg := range messages {
		assert.Equal(t, msg, *client.Published[i].Message)
	}
}

func TestFakeSNSClientForcedFailure(t *testing.T) {
	client := NewFakeSNSClient(true)

	out, err := client.Publish(context.Background(), &sns.PublishInput{
		TopicArn: aws.String("arn:aws:sns:us-east-1:123456789012:alerts"),
		Message:  aws.String("x"),
	})

	require.Error(t, err)
	assert.Nil(t, out)

	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "InternalError", apiErr.ErrorCode())
	assert.Equal(t, "publish boom", apiErr.ErrorMessage())

	// The attempt is recorded even though the call failed.
	require.Len(t, client.Published, 1)
}

func TestFakeSNSClientReset(t *testing.T) {
	client := NewFakeSNSClient(false)
	_, err := client.Publish(context.Background(), &sns.PublishInput{Message: aws.String("x")})
	require.NoError(t, err)

	client.Reset()

	assert.Empty(t, client.Published)
}

func TestFakeSNSClientInstancesAreIsolated(t *testing.T) {
	first := NewFakeSNSClient(false)
	second := NewFakeSNSClient(true)

	_, err := first.Publish(context.Background(), &sns.PublishInput{Message: aws.String("x")})
	require.NoError(t, err)

	assert.Len(t, first.Published, 1)
	assert.Empty(t, second.Published)
}
