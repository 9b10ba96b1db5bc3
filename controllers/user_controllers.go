package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile returns the profile of the authenticated user.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not authenticated"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
			return
		}
		utils.ErrorLogger.Printf("profile: lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "profile retrieved", gin.H{
		"user": gin.H{
			"id":               user.ID,
			"name":             user.Name,
			"surname":          user.Surname,
			"email":            user.Email,
			"faculty":          user.Faculty,
			"phone":            user.Phone,
			"default_location": user.DefaultLocation,
		},
	})
}

// authenticatedUserID reads the identity set by the auth middleware.
func authenticatedUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
