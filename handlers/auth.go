package handlers

import (
	"net/http"

	"skizen/services"
	"skizen/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	out, err := getServices().Auth.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if respondServiceError(c, err, "Login failed") {
		return
	}

	utils.SuccessWithMessage(c, "Logged in successfully", out)
}

func Logout(c *gin.Context) {
	token := c.GetString("token")
	err := getServices().Auth.Logout(c.Request.Context(), token)
	if respondServiceError(c, err, "") {
		return
	}
	utils.SuccessWithMessage(c, "Logged out", nil)
}

func GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	out, err := getServices().Auth.Profile(c.Request.Context(), userID)
	if respondServiceError(c, err, "") {
		return
	}
	utils.Success(c, out)
}
