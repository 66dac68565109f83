package s3

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/fixgo/checkpoint"
)

// Compile time check to ensure DDBStore satisfies the checkpoint interface.
var _ checkpoint.Store = (*DDBStore)(nil)

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

const (
	attrKey    = "checkpoint_key"
	attrRecord = "record"
)

// DDBStore implements checkpoint.Store on a DynamoDB table, one item per
// checkpoint key. PutItem replaces the whole item, which gives the same
// overwrite-per-stage atomicity as the file-based stores.
//
// Table schema:
//   - Partition key: checkpoint_key (string)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name fixgo-checkpoints \
//	  --attribute-definitions AttributeName=checkpoint_key,AttributeType=S \
//	  --key-schema AttributeName=checkpoint_key,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type DDBStore struct {
	client    DDBClient
	tableName string
	opts      checkpoint.Options
}

// NewDDBStore creates a new DynamoDB checkpoint store.
func NewDDBStore(client DDBClient, tableName string, optFns ...func(o *checkpoint.Options)) *DDBStore {
	opts := checkpoint.DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &DDBStore{
		client:    client,
		tableName: tableName,
		opts:      opts,
	}
}

// Put encodes record and overwrites the item under key.
func (s *DDBStore) Put(ctx context.Context, key string, record any) error {
	data, err := checkpoint.EncodeRecord(s.opts, record)
	if err != nil {
		return err
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			attrKey:    &types.AttributeValueMemberS{Value: key},
			attrRecord: &types.AttributeValueMemberB{Value: data},
		},
	})
	if err != nil {
		return fmt.Errorf("put checkpoint %s: %w", key, err)
	}
	return nil
}

// Get reads and decodes the item under key.
func (s *DDBStore) Get(ctx context.Context, key string, record any) error {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            map[string]types.AttributeValue{attrKey: &types.AttributeValueMemberS{Value: key}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get checkpoint %s: %w", key, err)
	}
	if len(resp.Item) == 0 {
		return fmt.Errorf("%w: %s", checkpoint.ErrNotFound, key)
	}

	recordAttr, ok := resp.Item[attrRecord].(*types.AttributeValueMemberB)
	if !ok {
		return fmt.Errorf("%w: invalid record attribute for %s", checkpoint.ErrMalformedRecord, key)
	}
	return checkpoint.DecodeRecord(recordAttr.Value, record)
}

// Delete removes the item under key.
func (s *DDBStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       map[string]types.AttributeValue{attrKey: &types.AttributeValueMemberS{Value: key}},
	})
	if err != nil {
		return fmt.Errorf("delete checkpoint %s: %w", key, err)
	}
	return nil
}

// List returns all keys with the given prefix, sorted.
func (s *DDBStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:            aws.String(s.tableName),
			ProjectionExpression: aws.String(attrKey),
			ExclusiveStartKey:    startKey,
		}
		if prefix != "" {
			input.FilterExpression = aws.String("begins_with(checkpoint_key, :p)")
			input.ExpressionAttributeValues = map[string]types.AttributeValue{
				":p": &types.AttributeValueMemberS{Value: prefix},
			}
		}

		resp, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list checkpoints: %w", err)
		}
		for _, item := range resp.Items {
			if keyAttr, ok := item[attrKey].(*types.AttributeValueMemberS); ok {
				keys = append(keys, keyAttr.Value)
			}
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	sort.Strings(keys)
	return keys, nil
}
