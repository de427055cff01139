package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// DailySummary is the data rendered into the end-of-day summary email.
type DailySummary struct {
	RestaurantName string
	Date           string
	BillCount      int64
	Revenue        string
	Expenses       string
	NetAmount      string
	TopItems       []SummaryItem
}

// SummaryItem is a single best-selling item row in the summary email.
type SummaryItem struct {
	Name     string
	Quantity int64
	Revenue  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendDailySummary sends the end-of-day sales summary to the given address.
func (s *EmailService) SendDailySummary(toEmail string, summary DailySummary) error {
	htmlContent, err := s.renderDailySummary(summary)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Daily Sales Summary - %s", summary.Date)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderDailySummary renders the daily summary email template
func (s *EmailService) renderDailySummary(summary DailySummary) (string, error) {
	tmpl, err := template.New("daily_summary").Parse(dailySummaryTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summary); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// dailySummaryTemplate is the HTML template for the end-of-day summary email
const dailySummaryTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Daily Sales Summary</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #f37335 0%, #fdc830 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.RestaurantName}}</h1>
                            <p style="color: #fff7e6; margin: 10px 0 0 0; font-size: 16px;">Daily Sales Summary &mdash; {{.Date}}</p>
                        </td>
                    </tr>

                    <!-- Totals -->
                    <tr>
                        <td style="padding: 40px 30px 20px 30px;">
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="padding: 12px 0; border-bottom: 1px solid #e2e8f0; color: #4a5568; font-size: 16px;">Bills</td>
                                    <td style="padding: 12px 0; border-bottom: 1px solid #e2e8f0; color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.BillCount}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px 0; border-bottom: 1px solid #e2e8f0; color: #4a5568; font-size: 16px;">Revenue</td>
                                    <td style="padding: 12px 0; border-bottom: 1px solid #e2e8f0; color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.Revenue}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px 0; border-bottom: 1px solid #e2e8f0; color: #4a5568; font-size: 16px;">Expenses</td>
                                    <td style="padding: 12px 0; border-bottom: 1px solid #e2e8f0; color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.Expenses}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px 0; color: #4a5568; font-size: 16px;">Net</td>
                                    <td style="padding: 12px 0; color: #1a7f37; font-size: 18px; font-weight: 700; text-align: right;">{{.NetAmount}}</td>
                                </tr>
                            </table>
                        </td>
                    </tr>

                    {{if .TopItems}}
                    <!-- Top Items -->
                    <tr>
                        <td style="padding: 0 30px 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 15px 0; font-size: 18px; font-weight: 600;">Top Selling Items</h2>
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                {{range .TopItems}}
                                <tr>
                                    <td style="padding: 8px 0; border-bottom: 1px solid #f1f5f9; color: #4a5568; font-size: 14px;">{{.Name}}</td>
                                    <td style="padding: 8px 0; border-bottom: 1px solid #f1f5f9; color: #718096; font-size: 14px; text-align: center;">x{{.Quantity}}</td>
                                    <td style="padding: 8px 0; border-bottom: 1px solid #f1f5f9; color: #1a1a2e; font-size: 14px; font-weight: 600; text-align: right;">{{.Revenue}}</td>
                                </tr>
                                {{end}}
                            </table>
                        </td>
                    </tr>
                    {{end}}

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0;">
                                This email was sent by {{.RestaurantName}} POS
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
