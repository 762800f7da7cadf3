package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

const defaultNotificationsTableName = "notification_events"

type notificationItem struct {
	CompanyID string `dynamodbav:"company_id"`
	SK        string `dynamodbav:"sk"`
	ID        string `dynamodbav:"id"`
	Category  string `dynamodbav:"category"`
	Severity  string `dynamodbav:"severity"`
	RelatedID string `dynamodbav:"related_id"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// NotificationDynamoRepository persists in-app notification events in
// DynamoDB.
//
// Table requirements:
//   - PK: company_id (string)
//   - SK: sk (string), created_at#id so a tenant query reads its feed in time
//     order without a secondary index
//   - TTL attribute: expires_at (epoch seconds)
//
// Events are write-once; retention is handled entirely by the TTL attribute,
// there is no cleanup job.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationEventRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName)
	}
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, e entities.NotificationEvent) (entities.NotificationEvent, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(e))
	if err != nil {
		return entities.NotificationEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return entities.NotificationEvent{}, err
	}
	return e, nil
}

func (r *NotificationDynamoRepository) ListByCompany(ctx context.Context, companyID string, limit int) ([]entities.NotificationEvent, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#company_id = :company_id"),
		ExpressionAttributeNames: map[string]string{
			"#company_id": "company_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		// Newest first.
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	events := make([]entities.NotificationEvent, 0, len(out.Items))
	for _, item := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		events = append(events, fromNotificationItem(it))
	}
	return events, nil
}

func toNotificationItem(e entities.NotificationEvent) notificationItem {
	createdAt := e.CreatedAt.UTC().Format(time.RFC3339Nano)
	return notificationItem{
		CompanyID: e.CompanyID,
		SK:        fmt.Sprintf("%s#%s", createdAt, e.ID),
		ID:        e.ID,
		Category:  string(e.Category),
		Severity:  string(e.Severity),
		RelatedID: e.RelatedID,
		Title:     e.Title,
		Message:   e.Message,
		CreatedAt: createdAt,
		ExpiresAt: e.ExpiresAt.UTC().Unix(),
	}
}

func fromNotificationItem(it notificationItem) entities.NotificationEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.NotificationEvent{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Category:  entities.NotificationCategory(it.Category),
		Severity:  entities.NotificationSeverity(it.Severity),
		RelatedID: it.RelatedID,
		Title:     it.Title,
		Message:   it.Message,
		CreatedAt: createdAt,
		ExpiresAt: time.Unix(it.ExpiresAt, 0).UTC(),
	}
}
