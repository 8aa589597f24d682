package repository

import (
	"context"
	"errors"
	"time"

	"uniformes_store/internal/domain/entities"
	"uniformes_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsExternalIDIndex  = "external_id-index"
)

type paymentIntentItem struct {
	ID               string                 `dynamodbav:"id"`
	ExternalID       string                 `dynamodbav:"external_id,omitempty"`
	CustomerID       string                 `dynamodbav:"customer_id"`
	OrderIDs         []string               `dynamodbav:"order_ids"`
	TotalCents       int64                  `dynamodbav:"total_cents"`
	Method           string                 `dynamodbav:"method"`
	Status           string                 `dynamodbav:"status"`
	Installments     int                    `dynamodbav:"installments,omitempty"`
	GatewayMethod    string                 `dynamodbav:"gateway_method,omitempty"`
	WebhookProcessed bool                   `dynamodbav:"webhook_processed"`
	InvoiceNumber    string                 `dynamodbav:"invoice_number,omitempty"`
	InvoiceDocKey    string                 `dynamodbav:"invoice_document_key,omitempty"`
	InvoiceDocURL    string                 `dynamodbav:"invoice_document_url,omitempty"`
	InvoiceIssuedAt  string                 `dynamodbav:"invoice_issued_at,omitempty"`
	NotificationSent bool                   `dynamodbav:"notification_sent"`
	ApprovedAt       string                 `dynamodbav:"approved_at,omitempty"`
	CreatedAt        string                 `dynamodbav:"created_at"`
	UpdatedAt        string                 `dynamodbav:"updated_at"`
	GatewayPayload   map[string]interface{} `dynamodbav:"gateway_payload,omitempty"`
	GatewayRaw       string                 `dynamodbav:"gateway_payload_raw,omitempty"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string); the id is also the external_reference sent to the gateway,
//     so the conditional Put on id enforces the one-intent-per-reference invariant.
//   - GSI: external_id-index (PK: external_id)

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	it := toPaymentIntentItem(intent)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentIntent{}, err
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
		return entities.PaymentIntent{}, err
	}
	return intent, nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: externalID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

// ApproveIfPending performs the confirmation check-and-set as one conditional
// UpdateItem. A ConditionalCheckFailedException means another caller already won;
// that is reported as won=false with the current record, not as an error.
func (r *PaymentIntentDynamoRepository) ApproveIfPending(ctx context.Context, id, gatewayPaymentID, gatewayMethod string, approvedAt time.Time) (entities.PaymentIntent, bool, error) {
	ts := approvedAt.UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :approved, #external_id = :eid, #gateway_method = :gm, #webhook_processed = :true, #approved_at = :at, #updated_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :approved AND #webhook_processed <> :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#status":            "status",
			"#external_id":       "external_id",
			"#gateway_method":    "gateway_method",
			"#webhook_processed": "webhook_processed",
			"#approved_at":       "approved_at",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(entities.PaymentIntentStatusAprovado)},
			":eid":      &types.AttributeValueMemberS{Value: gatewayPaymentID},
			":gm":       &types.AttributeValueMemberS{Value: gatewayMethod},
			":true":     &types.AttributeValueMemberBOOL{Value: true},
			":at":       &types.AttributeValueMemberS{Value: ts},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			current, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.PaymentIntent{}, false, getErr
			}
			return current, false, nil
		}
		return entities.PaymentIntent{}, false, err
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentIntent{}, false, err
	}
	return fromPaymentIntentItem(it), true, nil
}

func (r *PaymentIntentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentIntentStatus) (entities.PaymentIntent, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PaymentIntentDynamoRepository) SetInvoiceNumber(ctx context.Context, id, number string, generatedAt time.Time) error {
	issued := generatedAt.UTC().Format(time.RFC3339Nano)
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #invoice_number = :number, #invoice_issued_at = :issued, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":number":     &types.AttributeValueMemberS{Value: number},
			":issued":     &types.AttributeValueMemberS{Value: issued},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#invoice_number":    "invoice_number",
			"#invoice_issued_at": "invoice_issued_at",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *PaymentIntentDynamoRepository) SetInvoiceDocument(ctx context.Context, id, documentKey, documentURL string) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #invoice_document_key = :key, #invoice_document_url = :url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":key":        &types.AttributeValueMemberS{Value: documentKey},
			":url":        &types.AttributeValueMemberS{Value: documentURL},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#invoice_document_key": "invoice_document_key",
			"#invoice_document_url": "invoice_document_url",
			"#updated_at":           "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *PaymentIntentDynamoRepository) SetNotificationSent(ctx context.Context, id string) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #notification_sent = :true, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#notification_sent": "notification_sent",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
	return err
}

type updateExprBuilder func(now string) (string, map[string]types.AttributeValue, map[string]string)

func (r *PaymentIntentDynamoRepository) update(ctx context.Context, id string, build updateExprBuilder) (entities.PaymentIntent, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, vals, names := build(now)
	names["#id"] = "id"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	it := paymentIntentItem{
		ID:               p.ID,
		ExternalID:       p.ExternalID,
		CustomerID:       p.CustomerID,
		OrderIDs:         p.OrderIDs,
		TotalCents:       p.TotalCents,
		Method:           string(p.Method),
		Status:           string(p.Status),
		Installments:     p.Installments,
		GatewayMethod:    p.GatewayMethod,
		WebhookProcessed: p.WebhookProcessed,
		InvoiceNumber:    p.Invoice.Number,
		InvoiceDocKey:    p.Invoice.DocumentKey,
		InvoiceDocURL:    p.Invoice.DocumentURL,
		NotificationSent: p.Invoice.NotificationSent,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		GatewayPayload:   p.GatewayPayload,
		GatewayRaw:       string(p.GatewayPayloadRaw),
	}
	if p.Invoice.GeneratedAt != nil {
		it.InvoiceIssuedAt = p.Invoice.GeneratedAt.UTC().Format(time.RFC3339Nano)
	}
	if p.ApprovedAt != nil {
		it.ApprovedAt = p.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.PaymentIntent{
		ID:               it.ID,
		ExternalID:       it.ExternalID,
		CustomerID:       it.CustomerID,
		OrderIDs:         it.OrderIDs,
		TotalCents:       it.TotalCents,
		Method:           entities.PaymentMethod(it.Method),
		Status:           entities.PaymentIntentStatus(it.Status),
		Installments:     it.Installments,
		GatewayMethod:    it.GatewayMethod,
		WebhookProcessed: it.WebhookProcessed,
		Invoice: entities.InvoiceMetadata{
			Number:           it.InvoiceNumber,
			DocumentKey:      it.InvoiceDocKey,
			DocumentURL:      it.InvoiceDocURL,
			NotificationSent: it.NotificationSent,
		},
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
		GatewayPayload: it.GatewayPayload,
	}
	if it.GatewayRaw != "" {
		p.GatewayPayloadRaw = []byte(it.GatewayRaw)
	}
	if it.InvoiceIssuedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.InvoiceIssuedAt); err == nil {
			p.Invoice.GeneratedAt = &ts
		}
	}
	if it.ApprovedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			p.ApprovedAt = &ts
		}
	}
	return p
}
