// Package ses sends match notification emails via AWS SES.
package ses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	appConfig "property-finance-engine/internal/config"
	"property-finance-engine/internal/models"
	"property-finance-engine/internal/utils"
)

// Notifier sends top-match notifications. Notification is a fire-and-forget
// side effect: failures are logged and reported, never retried here, and
// must not block or fail the matching response.
type Notifier struct {
	client    *ses.Client
	fromEmail string
}

// SendResult contains the result of sending a notification.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// NewNotifier creates a notifier from the ambient AWS config.
func NewNotifier(ctx context.Context) (*Notifier, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	appCfg, err := appConfig.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}

	return &Notifier{
		client:    ses.NewFromConfig(cfg),
		fromEmail: appCfg.SESSenderEmail,
	}, nil
}

// SendTopMatches emails a user their latest top provider matches.
func (n *Notifier) SendTopMatches(ctx context.Context, toEmail string, matches []models.ProviderMatch) (*SendResult, error) {
	if n.fromEmail == "" {
		return nil, fmt.Errorf("sender email not configured")
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matches to notify")
	}

	subject := fmt.Sprintf("Your top %d provider matches", len(matches))
	textBody := buildTextBody(matches)
	htmlBody := buildHTMLBody(matches)

	input := &ses.SendEmailInput{
		Source: aws.String(n.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(textBody),
					Charset: aws.String("UTF-8"),
				},
				Html: &types.Content{
					Data:    aws.String(htmlBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	result, err := n.client.SendEmail(ctx, input)
	if err != nil {
		utils.GetLogger().Error("Failed to send match notification",
			zap.String("to", toEmail),
			zap.Error(err))
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	utils.GetLogger().Info("Match notification sent",
		zap.String("to", toEmail),
		zap.Int("matches", len(matches)))

	return &SendResult{
		MessageID: aws.ToString(result.MessageId),
		SentAt:    time.Now().UTC(),
	}, nil
}

func buildTextBody(matches []models.ProviderMatch) string {
	var b strings.Builder
	b.WriteString("We found providers that fit your profile:\n\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s (match score %d/100)\n", i+1, m.ProviderName, m.MatchScore)
		for _, reason := range m.MatchReasons {
			fmt.Fprintf(&b, "   - %s\n", reason)
		}
		b.WriteString("\n")
	}
	b.WriteString("Log in to your dashboard to get in touch.\n")
	return b.String()
}

func buildHTMLBody(matches []models.ProviderMatch) string {
	var b strings.Builder
	b.WriteString("<h2>Your top provider matches</h2><ol>")
	for _, m := range matches {
		fmt.Fprintf(&b, "<li><strong>%s</strong> &mdash; match score %d/100<ul>", m.ProviderName, m.MatchScore)
		for _, reason := range m.MatchReasons {
			fmt.Fprintf(&b, "<li>%s</li>", reason)
		}
		b.WriteString("</ul></li>")
	}
	b.WriteString("</ol><p>Log in to your dashboard to get in touch.</p>")
	return b.String()
}
