package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the sole persisted entity: account identity, credentials and the
// state of the two outstanding OTP slots (verification and password reset).
//
// An OTP slot is "set" iff the code is non-empty; expiry timestamps are epoch
// milliseconds and zeroed together with the code.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password" json:"-"`
	IsAccountVerified bool               `bson:"isAccountVerified" json:"isAccountVerified"`
	VerifyOtp         string             `bson:"verifyOtp" json:"-"`
	VerifyOtpExpireAt int64              `bson:"verifyOtpExpireAt" json:"-"`
	ResetOtp          string             `bson:"resetOtp" json:"-"`
	ResetOtpExpireAt  int64              `bson:"resetOtpExpireAt" json:"-"`
}
