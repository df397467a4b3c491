package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/authsrv/internal/services"
	"github.com/example/authsrv/internal/store"
	"github.com/example/authsrv/internal/utils"
)

// Reset codes expire after 15 minutes; a password reset is higher risk than
// account verification, so the window is deliberately short.
const resetOtpTTL = 15 * time.Minute

// PasswordResetHandler manages the forgot-password flow.
type PasswordResetHandler struct {
	store  store.UserStore
	mailer services.MailSender
}

// NewPasswordResetHandler constructs a PasswordResetHandler.
func NewPasswordResetHandler(store store.UserStore, mailer services.MailSender) *PasswordResetHandler {
	return &PasswordResetHandler{store: store, mailer: mailer}
}

type sendResetOtpRequest struct {
	Email string `json:"email"`
}

// SendResetOtp issues a fresh reset code for the account with the given
// email, overwriting any pending one, and emails it.
func (h *PasswordResetHandler) SendResetOtp(c *fiber.Ctx) error {
	var req sendResetOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, "Invalid request body.")
	}

	if req.Email == "" {
		return fail(c, "Email is required.")
	}

	user, err := h.store.FindByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, "User not found.")
		}
		return fail(c, err.Error())
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fail(c, err.Error())
	}

	user.ResetOtp = otp
	user.ResetOtpExpireAt = time.Now().Add(resetOtpTTL).UnixMilli()

	if err := h.store.Update(c.UserContext(), user); err != nil {
		return fail(c, err.Error())
	}

	if err := h.mailer.Send(user.Email, "Password reset OTP", services.ResetOtpEmail(user.Email, otp)); err != nil {
		return fail(c, err.Error())
	}

	return okMsg(c, "OTP sent to your email.")
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword consumes a reset code and replaces the stored password hash.
// Check order matches VerifyAccount: existence, then code match, then expiry.
// Outstanding session tokens are not touched.
func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, "Invalid request body.")
	}

	if req.Email == "" || req.Otp == "" || req.NewPassword == "" {
		return fail(c, "Email, OTP and new password are required.")
	}

	user, err := h.store.FindByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, "User not found.")
		}
		return fail(c, err.Error())
	}

	if user.ResetOtp == "" || user.ResetOtp != req.Otp {
		return fail(c, "Invalid OTP.")
	}

	if time.Now().UnixMilli() >= user.ResetOtpExpireAt {
		return fail(c, "OTP expired.")
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fail(c, err.Error())
	}

	user.Password = passwordHash
	user.ResetOtp = ""
	user.ResetOtpExpireAt = 0

	if err := h.store.Update(c.UserContext(), user); err != nil {
		return fail(c, err.Error())
	}

	return okMsg(c, "Password has been reset successfully.")
}
