package repository

import (
	"context"
	"errors"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersCustomerIDIndex  = "customer_id-index"
)

type serviceOrderItem struct {
	ID             string       `dynamodbav:"id"`
	CustomerID     string       `dynamodbav:"customer_id"`
	VehicleID      string       `dynamodbav:"vehicle_id"`
	MechanicID     string       `dynamodbav:"mechanic_id"`
	Diagnosis      string       `dynamodbav:"diagnosis"`
	Description    string       `dynamodbav:"description"`
	Budget         string       `dynamodbav:"budget"`
	EntryDate      string       `dynamodbav:"entry_date"`
	ExpectedExit   string       `dynamodbav:"expected_exit_date"`
	Status         string       `dynamodbav:"status"`
	PaymentID      string       `dynamodbav:"payment_id,omitempty"`
	Returned       bool         `dynamodbav:"returned"`
	HomeService    bool         `dynamodbav:"home_service"`
	ServiceAddress *addressItem `dynamodbav:"service_address,omitempty"`
	CreatedAt      string       `dynamodbav:"created_at"`
	UpdatedAt      string       `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// payment_id is written exclusively by the payment settlement transaction
// (see PaymentDynamoRepository.CreateAndLink); Update and UpdateStatus never
// touch it.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) TableName() string {
	return r.tableName
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	items := []entities.ServiceOrder{}
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromServiceOrderItem(it))
		}
	}
	return items, nil
}

func (r *ServiceOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceOrderItem(it))
	}
	return items, nil
}

// Update rewrites the descriptive attributes; status and payment_id keep
// their stored values.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	expr := "SET #customer_id = :customer_id, #vehicle_id = :vehicle_id, #mechanic_id = :mechanic_id, " +
		"#diagnosis = :diagnosis, #description = :description, #budget = :budget, " +
		"#entry_date = :entry_date, #expected_exit_date = :expected_exit_date, " +
		"#returned = :returned, #home_service = :home_service, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":customer_id":        &types.AttributeValueMemberS{Value: o.CustomerID},
		":vehicle_id":         &types.AttributeValueMemberS{Value: o.VehicleID},
		":mechanic_id":        &types.AttributeValueMemberS{Value: o.MechanicID},
		":diagnosis":          &types.AttributeValueMemberS{Value: o.Diagnosis},
		":description":        &types.AttributeValueMemberS{Value: o.Description},
		":budget":             &types.AttributeValueMemberS{Value: floatToString(o.Budget)},
		":entry_date":         &types.AttributeValueMemberS{Value: timeToString(o.EntryDate)},
		":expected_exit_date": &types.AttributeValueMemberS{Value: timeToString(o.ExpectedExit)},
		":returned":           &types.AttributeValueMemberBOOL{Value: o.Returned},
		":home_service":       &types.AttributeValueMemberBOOL{Value: o.HomeService},
		":updated_at":         &types.AttributeValueMemberS{Value: timeToString(o.UpdatedAt)},
	}
	names := map[string]string{
		"#customer_id":        "customer_id",
		"#vehicle_id":         "vehicle_id",
		"#mechanic_id":        "mechanic_id",
		"#diagnosis":          "diagnosis",
		"#description":        "description",
		"#budget":             "budget",
		"#entry_date":         "entry_date",
		"#expected_exit_date": "expected_exit_date",
		"#returned":           "returned",
		"#home_service":       "home_service",
		"#updated_at":         "updated_at",
	}

	if o.HomeService && o.ServiceAddress != nil {
		av, err := attributevalue.Marshal(toAddressItem(*o.ServiceAddress))
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		expr += ", #service_address = :service_address"
		values[":service_address"] = av
		names["#service_address"] = "service_address"
	} else {
		expr += " REMOVE #service_address"
		names["#service_address"] = "service_address"
	}

	return r.update(ctx, o.ID, expr, values, names)
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	return r.update(ctx, id, expr, values, names)
}

func (r *ServiceOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.ServiceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		VehicleID:    o.VehicleID,
		MechanicID:   o.MechanicID,
		Diagnosis:    o.Diagnosis,
		Description:  o.Description,
		Budget:       floatToString(o.Budget),
		EntryDate:    timeToString(o.EntryDate),
		ExpectedExit: timeToString(o.ExpectedExit),
		Status:       string(o.Status),
		PaymentID:    o.PaymentID,
		Returned:     o.Returned,
		HomeService:  o.HomeService,
		CreatedAt:    timeToString(o.CreatedAt),
		UpdatedAt:    timeToString(o.UpdatedAt),
	}
	if o.ServiceAddress != nil {
		addr := toAddressItem(*o.ServiceAddress)
		it.ServiceAddress = &addr
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		VehicleID:    it.VehicleID,
		MechanicID:   it.MechanicID,
		Diagnosis:    it.Diagnosis,
		Description:  it.Description,
		Budget:       stringToFloat(it.Budget),
		EntryDate:    stringToTime(it.EntryDate),
		ExpectedExit: stringToTime(it.ExpectedExit),
		Status:       entities.OrderStatus(it.Status),
		PaymentID:    it.PaymentID,
		Returned:     it.Returned,
		HomeService:  it.HomeService,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
	if it.ServiceAddress != nil {
		addr := fromAddressItem(*it.ServiceAddress)
		o.ServiceAddress = &addr
	}
	return o
}
