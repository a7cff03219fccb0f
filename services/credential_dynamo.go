package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"meetingbot/config"
	"meetingbot/models"
)

const (
	credentialTable = "CalendarCredentials"
	// single-tenant design: every row operation uses the same key
	credentialOwnerID = "calendar-owner"
)

// DynamoCredentialStore keeps the owner credential as a single DynamoDB
// item, for deployments where a local file does not survive restarts.
type DynamoCredentialStore struct {
	db *dynamodb.Client
}

func NewDynamoCredentialStore() (*DynamoCredentialStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{}

	if endpoint := config.GetDynamoDBEndpoint(); endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: endpoint}, nil
		})
		opts = append(opts,
			awsconfig.WithRegion("us-east-1"),
			awsconfig.WithEndpointResolverWithOptions(resolver),
			awsconfig.WithCredentialsProvider(credentials.StaticCredentialsProvider{
				Value: aws.Credentials{
					AccessKeyID: "dummy", SecretAccessKey: "dummy", SessionToken: "dummy",
				},
			}),
		)
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, err
	}

	store := &DynamoCredentialStore{db: dynamodb.NewFromConfig(cfg)}
	store.ensureTableExists()
	return store, nil
}

func (s *DynamoCredentialStore) ensureTableExists() {
	_, err := s.db.CreateTable(context.TODO(), &dynamodb.CreateTableInput{
		TableName: aws.String(credentialTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("OwnerID"),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("OwnerID"),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		log.Printf("Credential table might already exist: %v", err)
	}
}

func (s *DynamoCredentialStore) Load() (*models.Credential, error) {
	result, err := s.db.GetItem(context.TODO(), &dynamodb.GetItemInput{
		TableName: aws.String(credentialTable),
		Key: map[string]types.AttributeValue{
			"OwnerID": &types.AttributeValueMemberS{Value: credentialOwnerID},
		},
	})
	if err != nil || result.Item == nil {
		return nil, &MissingCredentialError{Source: "dynamodb:" + credentialTable}
	}

	blob, ok := result.Item["Credential"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, &MissingCredentialError{Source: "dynamodb:" + credentialTable}
	}

	var cred models.Credential
	if err := json.Unmarshal([]byte(blob.Value), &cred); err != nil || cred.AccessToken == "" {
		return nil, &MissingCredentialError{Source: "dynamodb:" + credentialTable}
	}
	return &cred, nil
}

func (s *DynamoCredentialStore) Save(cred *models.Credential) error {
	blob, err := json.Marshal(cred)
	if err != nil {
		return err
	}

	_, err = s.db.PutItem(context.TODO(), &dynamodb.PutItemInput{
		TableName: aws.String(credentialTable),
		Item: map[string]types.AttributeValue{
			"OwnerID":    &types.AttributeValueMemberS{Value: credentialOwnerID},
			"Credential": &types.AttributeValueMemberS{Value: string(blob)},
			"IssuedAt":   &types.AttributeValueMemberS{Value: cred.IssuedAt.Format(time.RFC3339)},
		},
	})
	return err
}
