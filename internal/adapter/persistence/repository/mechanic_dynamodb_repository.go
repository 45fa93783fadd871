package repository

import (
	"context"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMechanicsTableName = "mechanics"

type mechanicItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	Email     string `dynamodbav:"email"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MechanicDynamoRepository persists Mechanic entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
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
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) List(ctx context.Context) ([]entities.Mechanic, error) {
	items := []entities.Mechanic{}
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it mechanicItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMechanicItem(it))
		}
	}
	return items, nil
}

func (r *MechanicDynamoRepository) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(toMechanicItem(m))
	if err != nil {
		return entities.Mechanic{}, err
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
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: timeToString(m.CreatedAt),
		UpdatedAt: timeToString(m.UpdatedAt),
	}
}

func fromMechanicItem(it mechanicItem) entities.Mechanic {
	return entities.Mechanic{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
