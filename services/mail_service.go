package services

import (
	"bytes"
	"html/template"
	"log"
	"sufipulse-api/config"
)

var otpEmailTmpl = template.Must(template.New("otp").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
    <div style="max-width: 500px; margin: auto; background: #ffffff; border-radius: 12px; padding: 30px;">
      <div style="text-align: center; margin-bottom: 20px;">
        <h2 style="color: #065f46; margin: 0;">SufiPulse</h2>
      </div>
      <p style="color: #333; font-size: 15px;">
        Please use the following One-Time Password (OTP) to complete your verification:
      </p>
      <div style="text-align: center; margin: 25px 0;">
        <span style="display: inline-block; background: #065f46; color: #ffffff; font-size: 24px;
                     font-weight: bold; letter-spacing: 3px; padding: 12px 20px; border-radius: 8px;">
          {{.OTP}}
        </span>
      </div>
      <p style="color: #555; font-size: 14px;">
        This OTP will expire in <b>5 minutes</b>. Please do not share it with anyone.
      </p>
    </div>
  </body>
</html>`))

var contactEmailTmpl = template.Must(template.New("contact").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2 style="color: #065f46;">SufiPulse Contact Form</h2>
    <p><b>Name:</b> {{.Name}}</p>
    <p><b>Email:</b> {{.Email}}</p>
    <p><b>Subject:</b> {{.Subject}}</p>
    <p>{{.Message}}</p>
  </body>
</html>`))

var statusEmailTmpl = template.Must(template.New("status").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2 style="color: #065f46;">SufiPulse</h2>
    <p>{{.Message}}</p>
    {{if .Comment}}<p><b>Admin comment:</b> {{.Comment}}</p>{{end}}
  </body>
</html>`))

// SendOTPEmail delivers a verification code. Callers treat failure as
// non-fatal and report it alongside the successful mutation.
func SendOTPEmail(to, otp string) error {
	var body bytes.Buffer
	if err := otpEmailTmpl.Execute(&body, map[string]string{"OTP": otp}); err != nil {
		return err
	}
	return config.SendMail([]string{to}, "Your OTP Verification Code - SufiPulse", body.String())
}

// SendContactEmails confirms receipt to the sender and notifies the
// platform inbox. Failures are logged, never surfaced as request errors.
func SendContactEmails(name, email, subject, message, adminInbox string) {
	var body bytes.Buffer
	err := contactEmailTmpl.Execute(&body, map[string]string{
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Message": message,
	})
	if err != nil {
		log.Printf("Failed to render contact email: %v", err)
		return
	}

	if err := config.SendMail([]string{email}, "Thank You for Contacting SufiPulse", body.String()); err != nil {
		log.Printf("Failed to send contact confirmation email: %v", err)
	}
	if adminInbox != "" {
		if err := config.SendMail([]string{adminInbox}, "New Contact Form: "+subject, body.String()); err != nil {
			log.Printf("Failed to send contact admin notification: %v", err)
		}
	}
}

// SendStatusEmail tells an owner about a review decision.
func SendStatusEmail(to, message, comment string) {
	var body bytes.Buffer
	err := statusEmailTmpl.Execute(&body, map[string]string{
		"Message": message,
		"Comment": comment,
	})
	if err != nil {
		log.Printf("Failed to render status email: %v", err)
		return
	}

	if err := config.SendMail([]string{to}, "SufiPulse Status Update", body.String()); err != nil {
		log.Printf("Failed to send status email to %s: %v", to, err)
	}
}
