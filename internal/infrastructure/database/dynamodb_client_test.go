package database

import (
	"context"
	"testing"

	"salamatlab/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfig(ctx, config.DynamoDBConfig{
		Region:          "eu-central-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "eu-central-1" {
		t.Fatalf("expected region eu-central-1, got %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}

	ep, err := cfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, cfg.Region)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.URL != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %q", ep.URL)
	}
}
