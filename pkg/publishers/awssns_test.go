package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
)

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSNSPublisherSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	pub := &snsPublisher{
		id:       "topic-1",
		topicARN: "arn:aws:sns:::alerts",
		client:   client,
		log:      noopLogger{},
	}

	evt := NewPasteEvent("w2", "bar@example.com", domain.Paste{Source: "Pastebin", ID: "abc", EmailCount: 3})
	if err := pub.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::alerts" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["watch_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "w2" {
		t.Fatalf("watch_id attribute missing or wrong: %#v", attr)
	}
	kind, ok := client.input.MessageAttributes["kind"]
	if !ok || aws.ToString(kind.StringValue) != KindPaste {
		t.Fatalf("kind attribute missing or wrong: %#v", kind)
	}
	if client.input.Message == nil || !strings.Contains(aws.ToString(client.input.Message), `"kind":"paste"`) {
		t.Fatalf("Message missing kind: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSPublisherError(t *testing.T) {
	client := &fakeSNSClient{err: errors.New("boom")}
	pub := &snsPublisher{
		id:       "topic-1",
		topicARN: "arn:aws:sns:::alerts",
		client:   client,
		log:      noopLogger{},
	}

	evt := NewPasteEvent("w2", "bar@example.com", domain.Paste{Source: "Pastebin", ID: "abc", EmailCount: 3})
	if err := pub.Publish(context.Background(), evt); err == nil {
		t.Fatalf("expected error from Publish")
	}
}
