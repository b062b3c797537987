package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESSender delivers notifications through Amazon SES. The sender address
// must be verified in the owning AWS account.
type SESSender struct {
	client *sesv2.Client
	sender string
}

func NewSESSender(client *sesv2.Client, sender string) *SESSender {
	return &SESSender{
		client: client,
		sender: sender,
	}
}

func (s *SESSender) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if s.sender == "" {
		return fmt.Errorf("mail sender address is required")
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(textBody)},
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

var _ Sender = (*SESSender)(nil)
