package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsTableName = "parts"

type partItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	Quantity    int    `dynamodbav:"quantity"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PartDynamoRepository persists stock items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// AdjustQuantity uses a conditional update expression so a concurrent
// consume cannot take the quantity below zero.

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	items := []entities.Part{}
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it partItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPartItem(it))
		}
	}
	return items, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) AdjustQuantity(ctx context.Context, id string, delta int) (entities.Part, error) {
	now := timeToString(time.Now().UTC())

	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if delta < 0 {
		condition += " AND #quantity >= :need"
		values[":need"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #quantity = #quantity + :delta, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Part{}, nil
		}
		return entities.Part{}, err
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       floatToString(p.Price),
		Quantity:    p.Quantity,
		CreatedAt:   timeToString(p.CreatedAt),
		UpdatedAt:   timeToString(p.UpdatedAt),
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       stringToFloat(it.Price),
		Quantity:    it.Quantity,
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
