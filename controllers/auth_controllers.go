package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register creates a new user account. Duplicate emails are rejected with
// 409 before attempting the insert.
func (ac *AuthController) Register(c *gin.Context) {
	type request struct {
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=6"`
		Name            string `json:"name" binding:"required"`
		Surname         string `json:"surname" binding:"required"`
		Faculty         string `json:"faculty"`
		Phone           string `json:"phone"`
		DefaultLocation uint   `json:"default_location"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid registration data"))
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("email is already registered"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorLogger.Printf("register: email lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("could not hash password"))
		return
	}

	if req.DefaultLocation == 0 {
		req.DefaultLocation = 1
	}

	user := models.User{
		Name:            req.Name,
		Surname:         req.Surname,
		Email:           req.Email,
		Password:        string(hashed),
		Faculty:         req.Faculty,
		Phone:           req.Phone,
		DefaultLocation: req.DefaultLocation,
		Active:          true,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utils.ErrorLogger.Printf("register: insert failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)

	utils.RespondJSON(c, http.StatusCreated, "user registered successfully", gin.H{
		"user_id": user.ID,
	})
}

// Login authenticates an active user and returns a bearer token together
// with the profile fields the frontend keeps in its session.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ? AND active = ?", input.Email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
			return
		}
		utils.ErrorLogger.Printf("login: user lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("database error"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.ErrorLogger.Printf("login: token generation failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("could not generate token"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":               user.ID,
			"name":             user.Name,
			"surname":          user.Surname,
			"email":            user.Email,
			"default_location": user.DefaultLocation,
		},
	})
}
