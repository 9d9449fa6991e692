package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "user profile retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent successfully"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessForgotPassword  = "password reset email sent successfully"
	MessageSuccessResetPassword   = "password reset successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve user profile"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedForgotPassword  = "failed to send password reset email"
	MessageFailedResetPassword   = "failed to reset password"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrHashPassword           = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		PhotoURL   string    `json:"photo_url,omitempty"`
		IsVerified bool      `json:"is_verified"`
		IsPremium  bool      `json:"is_premium"`
		CreatedAt  time.Time `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name  string                `json:"name" form:"name" validate:"omitempty"`
		Photo *multipart.FileHeader `json:"photo" form:"photo" validate:"omitempty"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
