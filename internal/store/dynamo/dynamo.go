// Package dynamo stores credential records in an Amazon DynamoDB table
// keyed by email.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"registro-service/internal/domain"
	"registro-service/internal/store"
)

// Store persists credentials in a DynamoDB table (or compatible APIs).
type Store struct {
	client *dynamodb.Client
	table  string
}

func New(client *dynamodb.Client, table string) *Store {
	return &Store{
		client: client,
		table:  table,
	}
}

func (s *Store) Put(ctx context.Context, cred domain.Credential) error {
	if s.table == "" {
		return fmt.Errorf("store table is required")
	}

	item, err := attributevalue.MarshalMap(cred)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put credential: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, email string) (domain.Credential, error) {
	if s.table == "" {
		return domain.Credential{}, fmt.Errorf("store table is required")
	}

	output, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return domain.Credential{}, fmt.Errorf("get credential: %w", err)
	}
	if len(output.Item) == 0 {
		return domain.Credential{}, store.ErrNotFound
	}

	var cred domain.Credential
	if err := attributevalue.UnmarshalMap(output.Item, &cred); err != nil {
		return domain.Credential{}, fmt.Errorf("unmarshal credential: %w", err)
	}
	if cred.Password == "" {
		return domain.Credential{}, store.ErrNotFound
	}
	return cred, nil
}

var _ store.Store = (*Store)(nil)
