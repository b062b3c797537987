package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"registro-service/internal/domain"
	"registro-service/internal/service"
)

// serverErrorMessage is the deliberately generic body for store failures;
// it does not leak backend details.
const serverErrorMessage = "Error de servidor al procesar la solicitud"

// Handler wires HTTP routes to the registration and validation services.
type Handler struct {
	registration service.RegistrationService
	validation   service.ValidationService
	logger       *logrus.Logger
}

func NewHandler(registration service.RegistrationService, validation service.ValidationService, logger *logrus.Logger) *Handler {
	return &Handler{
		registration: registration,
		validation:   validation,
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(h.requestLogger())

	api := router.Group("/api")
	{
		api.POST("/registro", h.register)
		api.POST("/validacion", h.validate)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

type registerRequest struct {
	Email string `json:"email"`
}

type validateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request")
	}
}

// decodeBody reads and unmarshals the request body into dst. An absent,
// empty, or unparseable body is ErrEmptyBody.
func decodeBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return domain.ErrEmptyBody
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		return domain.ErrEmptyBody
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.ErrEmptyBody
	}
	return nil
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := decodeBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmailRequired.Error()})
		return
	}

	if err := h.registration.Register(c.Request.Context(), req.Email); err != nil {
		if domain.IsClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, domain.ErrDelivery) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrDelivery.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registro exitoso"})
}

func (h *Handler) validate(c *gin.Context) {
	var req validateRequest
	if err := decodeBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrCredentialsRequired.Error()})
		return
	}

	valid, err := h.validation.Validate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": serverErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
