package invoices

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"strings"

	"uniformes_store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingInvoicesBucket = errors.New("missing INVOICES_BUCKET")

// S3InvoiceRenderer renders the nota fiscal document and stores it in S3
// (or any S3-compatible endpoint via S3_ENDPOINT).
//
// The document key is invoices/<year>/<number>.html; the public URL is derived
// from PUBLIC_BASE_URL when set, otherwise from the endpoint and bucket.

type S3InvoiceRenderer struct {
	s3Client      *s3.Client
	bucket        string
	endpoint      string
	publicBaseURL string
	tmpl          *template.Template
}

var _ interfaces.IInvoiceRenderer = (*S3InvoiceRenderer)(nil)

func NewS3InvoiceRenderer(ctx context.Context) (*S3InvoiceRenderer, error) {
	bucket := os.Getenv("INVOICES_BUCKET")
	if bucket == "" {
		return nil, ErrMissingInvoicesBucket
	}
	endpoint := os.Getenv("S3_ENDPOINT")

	region := getenvDefault("AWS_REGION", "us-east-1")
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// MinIO/local S3 needs path-style addressing.
			o.UsePathStyle = true
		}
	})

	log.Printf("[invoice][renderer] S3 renderer initialized bucket=%s", bucket)
	return &S3InvoiceRenderer{
		s3Client:      client,
		bucket:        bucket,
		endpoint:      endpoint,
		publicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		tmpl:          template.Must(template.New("invoice").Funcs(template.FuncMap{"money": formatCents}).Parse(invoiceTemplate)),
	}, nil
}

func (r *S3InvoiceRenderer) Render(ctx context.Context, data interfaces.InvoiceData) (interfaces.RenderedInvoice, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return interfaces.RenderedInvoice{}, fmt.Errorf("invoice template: %w", err)
	}

	key := fmt.Sprintf("invoices/%d/%s.html", data.IssuedAt.Year(), data.Number)
	_, err := r.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		log.Printf("[invoice][renderer] upload failed key=%s err=%v", key, err)
		return interfaces.RenderedInvoice{}, err
	}
	log.Printf("[invoice][renderer] document stored key=%s size=%d", key, buf.Len())

	return interfaces.RenderedInvoice{
		DocumentKey: key,
		DocumentURL: r.documentURL(key),
	}, nil
}

func (r *S3InvoiceRenderer) documentURL(key string) string {
	if r.publicBaseURL != "" {
		return r.publicBaseURL + "/" + key
	}
	if r.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(r.endpoint, "/"), r.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", r.bucket, key)
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Nota Fiscal {{.Number}}</title>
</head>
<body>
<h1>Nota Fiscal {{.Number}}</h1>
<p>Emitida em {{.IssuedAt.Format "02/01/2006 15:04"}}</p>
<p>Cliente: {{.Customer.Name}}{{if .Customer.Document}} ({{.Customer.Document}}){{end}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Produto</th><th>Qtd</th><th>Valor unit.</th><th>Total</th></tr>
{{range .Lines}}<tr><td>{{.ProductName}}</td><td>{{.Quantity}}</td><td>{{money .UnitPriceCents}}</td><td>{{money .TotalCents}}</td></tr>
{{end}}</table>
<p><strong>Total: {{money .TotalCents}}</strong></p>
</body>
</html>
`
