package controllers

import (
	"net/http"
	"os"
	"strconv"
	"sufipulse-api/config"
	"sufipulse-api/middleware"
	"sufipulse-api/models"
	"sufipulse-api/services"
	"sufipulse-api/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Country  string `json:"country"`
	City     string `json:"city"`
}

type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken   string      `json:"access_token"`
	RefreshToken  string      `json:"refresh_token"`
	TokenType     string      `json:"token_type"`
	InfoSubmitted bool        `json:"info_submitted"`
	User          models.User `json:"user"`
}

// Signup creates an unverified account and emails an OTP. Admin roles can
// not be chosen here.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.SignupRole(req.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot sign up with this role"})
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	otp := utils.GenerateOTP()
	expiry := utils.OTPExpiry()

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		if existing.IsRegistered {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}

		// Unverified account: rotate the OTP and let them continue.
		if err := config.DB.Model(&models.User{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"otp":        otp,
				"otp_expiry": expiry,
				"updated_at": time.Now(),
			}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh OTP"})
			return
		}

		if err := services.SendOTPEmail(req.Email, otp); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"message":               "User exists but not verified. New OTP generated, but the email could not be sent. Please contact support.",
				"user_exists_unverified": true,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User exists but not verified. New OTP sent to your email."})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	now := time.Now()
	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		Country:      req.Country,
		City:         req.City,
		IsRegistered: false,
		OTP:          &otp,
		OTPExpiry:    &expiry,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if err := services.SendOTPEmail(req.Email, otp); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"message":      "User created successfully, but the OTP email could not be sent. Please contact support.",
			"user_created": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created. OTP sent to your email."})
}

// VerifyOTP completes registration and issues the first token pair.
func VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	if user.OTP == nil || *user.OTP != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		return
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired"})
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"is_registered": true,
			"otp":           nil,
			"otp_expiry":    nil,
			"updated_at":    time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}
	user.IsRegistered = true

	issueTokens(c, user)
}

// Login authenticates a verified user and issues a token pair.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !user.IsRegistered {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not verified. Please verify your email first."})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	issueTokens(c, user)
}

// ResendOTP rotates the verification code for an unverified account.
func ResendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}
	if user.IsRegistered {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already verified"})
		return
	}

	rotateAndSendOTP(c, user, "OTP resent successfully.")
}

// ForgotPassword emails a reset code to a known account.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	rotateAndSendOTP(c, user, "OTP sent to your email for password reset")
}

// ResetPassword verifies a reset code and stores the new password.
func ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	if user.OTP == nil || *user.OTP != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		return
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"otp":           nil,
			"otp_expiry":    nil,
			"updated_at":    time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// ChangePassword handles password change for the authenticated user.
func ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	auth, _ := middleware.CurrentAuth(c)

	var user models.User
	if err := config.DB.Where("id = ?", auth.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// RefreshToken exchanges a valid refresh token for a new access token.
func RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := jwt.ParseWithClaims(req.RefreshToken, &middleware.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	claims, ok := token.Claims.(*middleware.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	accessToken, err := generateToken(user, accessTokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

// GetProfile returns the current user record.
func GetProfile(c *gin.Context) {
	auth, _ := middleware.CurrentAuth(c)

	var user models.User
	if err := config.DB.Where("id = ?", auth.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func rotateAndSendOTP(c *gin.Context, user models.User, successMsg string) {
	otp := utils.GenerateOTP()
	expiry := utils.OTPExpiry()

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"otp":        otp,
			"otp_expiry": expiry,
			"updated_at": time.Now(),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}

	if err := services.SendOTPEmail(user.Email, otp); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"message":  "OTP generated successfully, but the email could not be sent. Please contact support.",
			"otp_sent": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": successMsg})
}

func issueTokens(c *gin.Context, user models.User) {
	infoSubmitted := profileSubmitted(user)

	accessToken, err := generateToken(user, accessTokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	refreshToken, err := generateToken(user, refreshTokenTTL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		TokenType:     "bearer",
		InfoSubmitted: infoSubmitted,
		User:          user,
	})
}

// profileSubmitted reports whether the role-specific onboarding profile
// exists; the frontend uses it to route first-time users to onboarding.
func profileSubmitted(user models.User) bool {
	switch user.Role {
	case models.RoleVocalist:
		var profile models.VocalistProfile
		return config.DB.Where("user_id = ?", user.ID).First(&profile).Error == nil
	case models.RoleBlogger:
		var profile models.BloggerProfile
		return config.DB.Where("user_id = ?", user.ID).First(&profile).Error == nil
	case models.RoleWriter:
		var count int64
		config.DB.Model(&models.Kalam{}).Where("writer_id = ?", user.ID).Count(&count)
		return count > 0
	}
	return true
}

func accessTokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func refreshTokenTTL() time.Duration {
	days, err := strconv.Atoi(os.Getenv("JWT_REFRESH_EXPIRE_DAYS"))
	if err != nil || days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// generateToken creates a signed JWT for the user.
func generateToken(user models.User, ttl time.Duration) (string, error) {
	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
