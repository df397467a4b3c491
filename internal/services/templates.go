package services

import (
	"fmt"
	"strings"
)

const emailVerifyTemplate = `<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0">
      <tr>
        <td align="center" style="padding:40px 0;">
          <table width="480" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
            <tr><td style="font-size:20px;font-weight:bold;color:#333333;">Verify your email</td></tr>
            <tr><td style="padding-top:16px;color:#555555;">You are just one step away from verifying the account for this email: {{email}}. Use the OTP below to complete the verification.</td></tr>
            <tr><td align="center" style="padding:24px 0;">
              <span style="display:inline-block;background:#22d172;color:#ffffff;font-size:24px;font-weight:bold;letter-spacing:6px;padding:12px 24px;border-radius:4px;">{{otp}}</span>
            </td></tr>
            <tr><td style="color:#999999;font-size:13px;">This code is valid for 24 hours.</td></tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`

const passwordResetTemplate = `<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0">
      <tr>
        <td align="center" style="padding:40px 0;">
          <table width="480" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
            <tr><td style="font-size:20px;font-weight:bold;color:#333333;">Reset your password</td></tr>
            <tr><td style="padding-top:16px;color:#555555;">We received a password reset request for your account: {{email}}. Use the OTP below to reset the password.</td></tr>
            <tr><td align="center" style="padding:24px 0;">
              <span style="display:inline-block;background:#4c83ee;color:#ffffff;font-size:24px;font-weight:bold;letter-spacing:6px;padding:12px 24px;border-radius:4px;">{{otp}}</span>
            </td></tr>
            <tr><td style="color:#999999;font-size:13px;">This code is valid for 15 minutes.</td></tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`

// VerifyOtpEmail renders the account-verification email body for the given
// recipient and code.
func VerifyOtpEmail(email, otp string) string {
	return renderTemplate(emailVerifyTemplate, email, otp)
}

// ResetOtpEmail renders the password-reset email body.
func ResetOtpEmail(email, otp string) string {
	return renderTemplate(passwordResetTemplate, email, otp)
}

// WelcomeEmail renders the plain welcome message sent on registration.
func WelcomeEmail(email string) string {
	return fmt.Sprintf("Welcome! Your account has been created with email id: %s.", email)
}

func renderTemplate(tmpl, email, otp string) string {
	return strings.NewReplacer("{{otp}}", otp, "{{email}}", email).Replace(tmpl)
}
