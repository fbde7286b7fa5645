package publishers

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
)

func TestGCPPubSubPublisherPublishes(t *testing.T) {
	// Use the in-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	defer os.Unsetenv("PUBSUB_EMULATOR_HOST")
	os.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if _, err := client.CreateTopic(ctx, "alerts"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	pub, err := newGCPPubSubPublisher(ctx, PublisherConfig{
		ID:   "gcp-1",
		Type: TypeGCPPubSub,
		GCP: &GCPPublisherConfig{
			ProjectID: "test-project",
			Topic:     "alerts",
		},
	}, nil)
	if err != nil {
		t.Fatalf("newGCPPubSubPublisher: %v", err)
	}

	evt := NewBreachEvent("w1", "foo@example.com", domain.Breach{Name: "Adobe"})
	if err := pub.Publish(ctx, evt); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestGCPPubSubPublisherRejectsMissingTopic(t *testing.T) {
	server := pstest.NewServer()
	defer server.Close()
	defer os.Unsetenv("PUBSUB_EMULATOR_HOST")
	os.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	_, err := newGCPPubSubPublisher(context.Background(), PublisherConfig{
		ID:   "gcp-1",
		Type: TypeGCPPubSub,
		GCP: &GCPPublisherConfig{
			ProjectID: "test-project",
			Topic:     "missing",
		},
	}, nil)
	if err == nil {
		t.Fatalf("expected error for missing topic")
	}
}
