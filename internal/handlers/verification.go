package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/authsrv/internal/middleware"
	"github.com/example/authsrv/internal/services"
	"github.com/example/authsrv/internal/store"
	"github.com/example/authsrv/internal/utils"
)

// Verification codes stay valid for a full day; the reset flow uses a much
// shorter window (see password_reset.go).
const verifyOtpTTL = 24 * time.Hour

// VerificationHandler manages the email-verification OTP flow.
type VerificationHandler struct {
	store  store.UserStore
	mailer services.MailSender
}

// NewVerificationHandler constructs a VerificationHandler.
func NewVerificationHandler(store store.UserStore, mailer services.MailSender) *VerificationHandler {
	return &VerificationHandler{store: store, mailer: mailer}
}

// SendVerifyOtp issues a fresh verification code for the authenticated user,
// overwriting any pending one, and emails it.
func (h *VerificationHandler) SendVerifyOtp(c *fiber.Ctx) error {
	userID, found := middleware.GetCurrentUserID(c)
	if !found {
		return fail(c, "Not authorized. Login again.")
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fail(c, "User not found.")
	}

	user, err := h.store.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, "User not found.")
		}
		return fail(c, err.Error())
	}

	if user.IsAccountVerified {
		return fail(c, "Account already verified.")
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fail(c, err.Error())
	}

	user.VerifyOtp = otp
	user.VerifyOtpExpireAt = time.Now().Add(verifyOtpTTL).UnixMilli()

	if err := h.store.Update(c.UserContext(), user); err != nil {
		return fail(c, err.Error())
	}

	if err := h.mailer.Send(user.Email, "Account verification OTP", services.VerifyOtpEmail(user.Email, otp)); err != nil {
		return fail(c, err.Error())
	}

	return okMsg(c, "Verification OTP sent successfully.")
}

type verifyAccountRequest struct {
	UserID string `json:"userId"`
	Otp    string `json:"otp"`
}

// VerifyAccount consumes a verification code. The checks run in a fixed
// order: user existence, then code match, then expiry, so a caller with
// several problems at once always sees the earliest one.
func (h *VerificationHandler) VerifyAccount(c *fiber.Ctx) error {
	var req verifyAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, "Invalid request body.")
	}

	userID, found := middleware.GetCurrentUserID(c)
	if !found {
		userID = req.UserID
	}

	if userID == "" || req.Otp == "" {
		return fail(c, "Missing details.")
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fail(c, "User not found.")
	}

	user, err := h.store.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, "User not found.")
		}
		return fail(c, err.Error())
	}

	// An empty stored code never matches a presented one.
	if user.VerifyOtp == "" || user.VerifyOtp != req.Otp {
		return fail(c, "Invalid OTP.")
	}

	// Valid strictly before the expiry millisecond.
	if time.Now().UnixMilli() >= user.VerifyOtpExpireAt {
		return fail(c, "OTP expired.")
	}

	user.IsAccountVerified = true
	user.VerifyOtp = ""
	user.VerifyOtpExpireAt = 0

	if err := h.store.Update(c.UserContext(), user); err != nil {
		return fail(c, err.Error())
	}

	return okMsg(c, "Email verified successfully.")
}
