package repository

import (
	"context"
	"errors"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	TotalAmount string `dynamodbav:"total_amount"`
	FinalAmount string `dynamodbav:"final_amount"`
	Method      string `dynamodbav:"method"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// CreateAndLink is the only writer of service_orders.payment_id: one
// TransactWriteItems puts the payment row and links it, conditioned on the
// order existing and having no payment yet. That closes the
// check-then-act window between "does this order have a payment" and the
// write.

type PaymentDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	ordersTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		ordersTable: getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PaymentDynamoRepository) CreateAndLink(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.ordersTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.OrderID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#payment_id)"),
					UpdateExpression:    aws.String("SET #payment_id = :payment_id, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#payment_id": "payment_id",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":payment_id": &types.AttributeValueMemberS{Value: p.ID},
						":updated_at": &types.AttributeValueMemberS{Value: timeToString(p.UpdatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Payment{}, interfaces.ErrPaymentAlreadyLinked
				}
			}
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #final_amount = :final_amount, #method = :method, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#final_amount": "final_amount",
			"#method":       "method",
			"#status":       "status",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":final_amount": &types.AttributeValueMemberS{Value: floatToString(p.FinalAmount)},
			":method":       &types.AttributeValueMemberS{Value: p.Method},
			":status":       &types.AttributeValueMemberS{Value: string(p.Status)},
			":updated_at":   &types.AttributeValueMemberS{Value: timeToString(p.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		TotalAmount: floatToString(p.TotalAmount),
		FinalAmount: floatToString(p.FinalAmount),
		Method:      p.Method,
		Status:      string(p.Status),
		CreatedAt:   timeToString(p.CreatedAt),
		UpdatedAt:   timeToString(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:          it.ID,
		OrderID:     it.OrderID,
		TotalAmount: stringToFloat(it.TotalAmount),
		FinalAmount: stringToFloat(it.FinalAmount),
		Method:      it.Method,
		Status:      entities.PaymentStatus(it.Status),
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
