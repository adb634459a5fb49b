package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessGetAddresses   = "addresses retrieved successfully"
	MessageSuccessDeleteAddress  = "address deleted successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedUploadAvatar   = "failed to upload avatar"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedGetAddresses   = "failed to retrieve addresses"
	MessageFailedDeleteAddress  = "failed to delete address"
	MessageFailedOAuth          = "failed to sign in with Google"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrAddressNotFound        = errors.New("address not found")
	ErrOAuthExchangeFailed    = errors.New("oauth code exchange failed")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		FullName string `json:"full_name" validate:"required"`
		Phone    string `json:"phone" validate:"omitempty,min=10,max=15,numeric"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Token    string `json:"token"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		// GuestID, when present, triggers a best-effort guest cart merge
		// after the session is established.
		GuestID string `json:"guest_id" validate:"omitempty"`
	}

	LoginResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Token    string `json:"token"`
	}

	ProfileResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		FullName  string    `json:"full_name"`
		Phone     string    `json:"phone,omitempty"`
		Provider  string    `json:"provider"`
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	UpdateProfileRequest struct {
		FullName string `json:"full_name" validate:"omitempty"`
		Phone    string `json:"phone" validate:"omitempty,min=10,max=15,numeric"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	AddressResponse struct {
		ID           string `json:"id"`
		FullName     string `json:"full_name"`
		Phone        string `json:"phone"`
		AddressLine1 string `json:"address_line_1"`
		AddressLine2 string `json:"address_line_2,omitempty"`
		City         string `json:"city"`
		State        string `json:"state"`
		PostalCode   string `json:"postal_code"`
		IsDefault    bool   `json:"is_default"`
	}
)
