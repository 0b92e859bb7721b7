package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slowday/models"
	"slowday/services/user"
)

func authErrorStatus(err error) int {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrSetupTokenInvalid),
		errors.Is(err, user.ErrSetupTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, user.ErrWeakPassword):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RegisterHandler creates a customer or provider account.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Users.Register(req)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates by email and password.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteProviderSetupHandler finishes onboarding for a converted
// lead: the setup token is exchanged for a password and a session.
func (hb *HandlerBundle) CompleteProviderSetupHandler(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Users.CompleteProviderSetup(req.Token, req.Password)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated account.
func (hb *HandlerBundle) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := hb.Users.GetUserByID(userID)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler updates the authenticated account's name and phone.
func (hb *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := hb.Users.UpdateProfile(c.GetString("userID"), req.Name, req.Phone)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteAccountHandler removes the authenticated account.
func (hb *HandlerBundle) DeleteAccountHandler(c *gin.Context) {
	if err := hb.Users.DeleteUser(c.GetString("userID")); err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// ToggleSavedServiceHandler adds or removes a deal from the customer's
// saved list.
func (hb *HandlerBundle) ToggleSavedServiceHandler(c *gin.Context) {
	serviceID := c.Param("serviceID")
	usr, err := hb.Users.ToggleSavedService(c.GetString("userID"), serviceID)
	if err != nil {
		c.JSON(authErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedServiceIds": usr.SavedServiceIDs})
}

// requireProvider aborts unless the authenticated account is a provider.
func requireProvider(c *gin.Context) bool {
	if c.GetString("accountType") != string(models.AccountProvider) {
		c.JSON(http.StatusForbidden, gin.H{"error": "provider account required"})
		return false
	}
	return true
}
