package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/udacitrivia/internal/handler/dto"
	apperrors "github.com/yourusername/udacitrivia/internal/pkg/errors"
)

// Фиксированные сообщения об ошибках — часть контракта клиента,
// одинаковые для всех эндпоинтов
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Page Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusInternalServerError: "Internal Server Error",
}

// respondError отправляет единый конверт ошибки для заданного статуса
func respondError(c *gin.Context, status int) {
	c.JSON(status, dto.NewErrorResponse(status, statusMessages[status]))
}

// handleServiceError сопоставляет ошибку сервиса с HTTP статусом и отправляет конверт
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		respondError(c, http.StatusNotFound)
	} else if errors.Is(err, apperrors.ErrValidation) {
		respondError(c, http.StatusUnprocessableEntity)
	} else if errors.Is(err, apperrors.ErrBadRequest) {
		respondError(c, http.StatusBadRequest)
	} else if errors.Is(err, apperrors.ErrMethodNotAllowed) {
		respondError(c, http.StatusMethodNotAllowed)
	} else {
		log.Printf("ERROR: Internal server error: %v", err)
		respondError(c, http.StatusInternalServerError)
	}
}
