package utils

import (
	"crm/config"
	"fmt"
	"net/smtp"
	"strings"
)

// SendMail delivers an HTML email over SMTP. It is a package variable so
// tests can swap delivery out without a mail server.
var SendMail = sendMailSMTP

func sendMailSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CRM Support <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.otp { text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CRM SUPPORT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message. Please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail mails a one-time passcode. The caller decides what the code
// authorizes; the subject just names the flow.
func SendOTPEmail(otp, email, purpose string) error {
	subject := "Your OTP for " + purpose
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 class="otp">%s</h1>
		<p>Do not share this OTP with anyone.</p>
	`, otp)

	return SendMail([]string{email}, subject, getEmailTemplate("OTP Verification", body))
}

// SendPaymentConfirmationEmail confirms a successful gateway charge.
func SendPaymentConfirmationEmail(email string, amount float64, transactionID string) error {
	subject := "Payment Confirmation"
	body := fmt.Sprintf(`
		<p>Your payment of <strong>$%.2f</strong> was successful.</p>
		<p>Transaction ID: <strong>%s</strong></p>
	`, amount, transactionID)

	return SendMail([]string{email}, subject, getEmailTemplate("Payment Received", body))
}
