package handlers

import (
	"net/http"

	"skizen/services"
	"skizen/utils"

	"github.com/gin-gonic/gin"
)

var appServices *services.Container

func SetServices(container *services.Container) {
	appServices = container
}

func getServices() *services.Container {
	if appServices == nil {
		panic("services container is not initialized")
	}
	return appServices
}

// respondServiceError writes the terminal error message for an admin
// action, prefixed with the action label shown in the UI ("Save failed").
func respondServiceError(c *gin.Context, err error, prefix string) bool {
	if err == nil {
		return false
	}
	message := "internal error"
	status := http.StatusInternalServerError
	if appErr, ok := err.(*services.AppError); ok {
		message = appErr.Message
		status = appErr.HTTPCode
	}
	if prefix != "" {
		message = prefix + ": " + message
	}
	utils.Error(c, status, message)
	return true
}
