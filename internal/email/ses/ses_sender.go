package ses

import (
	"bytes"
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"basesync/internal/port"
	"basesync/internal/report"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed ReportSender.
func NewSESSender(region, fromAddress, fromName string) (port.ReportSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

// Deliver sends the report payload to recipient. The payload is the CSV
// body produced by internal/report; it goes out inline so recipients can
// open it straight in a spreadsheet.
func (s *sesSender) Deliver(ctx context.Context, recipient, subject string, payload []byte) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	textBody, htmlBody := composeBodies(payload)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// composeBodies builds the text and HTML bodies. The payload carries a BOM
// for spreadsheet compatibility; inline in an email it is stray bytes, so
// it gets stripped here.
func composeBodies(payload []byte) (textBody, htmlBody string) {
	body := string(bytes.TrimPrefix(payload, report.BOM))
	textBody = fmt.Sprintf("Relatório BaseSync\n\n%s\n", body)
	htmlBody = fmt.Sprintf("<p>Relatório BaseSync</p><pre>%s</pre>", body)
	return textBody, htmlBody
}
