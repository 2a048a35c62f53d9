package controllers

import (
	"net/http"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email & password required"})
		return
	}

	user, tokens, err := h.Auth.Register(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "User registered successfully",
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email & password required"})
		return
	}

	user, tokens, err := h.Auth.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"role":           user.Role,
			"profilePicture": user.ProfilePicture,
			"age":            user.Age,
			"heightCm":       user.HeightCm,
			"weightKg":       user.WeightKg,
			"fitnessGoal":    user.FitnessGoal,
		},
	})
}

func (h *AuthController) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token required"})
		return
	}

	tokens, err := h.Auth.Refresh(input.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *AuthController) Me(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Credential and token fields carry json:"-" so the model is safe to
	// return as-is.
	c.JSON(http.StatusOK, user)
}

func (h *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.Users.UpdateProfile(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

func (h *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid email required"})
		return
	}

	if err := h.Auth.ForgotPassword(input.Email); err != nil {
		respondError(c, err)
		return
	}

	// Same body whether or not the account exists.
	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"})
}

func (h *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.Auth.ResetPassword(input.Token, input.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func (h *AuthController) UploadAvatar(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input struct {
		Avatar string `json:"avatar" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image uploaded"})
		return
	}

	user, err := h.Users.SetAvatar(userID, input.Avatar)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Profile picture updated",
		"profilePicture": user.ProfilePicture,
	})
}

// AdminController exposes the admin-only surface.
type AdminController struct {
	Users *services.UserService
}

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary(u))
	}
	c.JSON(http.StatusOK, out)
}

func userSummary(u models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
}
