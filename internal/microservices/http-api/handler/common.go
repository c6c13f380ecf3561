package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"gamerental/internal/microservices/http-api/dto"
	"gamerental/internal/microservices/http-api/validation"

	"github.com/gin-gonic/gin"
)

// NotFound is the shared fallthrough for unknown routes and missing rows.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": fmt.Sprintf("Requested resource %s does not exist", c.Request.URL.Path),
	})
}

// parseID reads the :id path parameter. A value that is not a positive
// integer cannot name a row, so it answers not-found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		NotFound(c)
		return 0, false
	}
	return uint(id), true
}

// pageParam returns ?page, or 1 when it is missing or not a number.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// bindPayload checks the JSON body against the schema declared on T, drops
// the keys T does not declare and decodes the rest. It answers 400 itself
// when the body does not fit.
func bindPayload[T any](c *gin.Context) (T, bool) {
	var zero T

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON object"})
		return zero, false
	}

	schema := validation.SchemaOf[T]()
	if err := validation.Check(payload, schema); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is not a valid " + resourceName(c) + " object", "details": problems(err)})
		return zero, false
	}

	in, err := validation.Decode[T](validation.Extract(payload, schema))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is not a valid " + resourceName(c) + " object", "details": problems(err)})
		return zero, false
	}
	return in, true
}

func problems(err error) []string {
	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Problems
	}
	return []string{err.Error()}
}

// resourceName is the singular name the route group was registered under.
func resourceName(c *gin.Context) string {
	if name, ok := c.Get(resourceKey); ok {
		return name.(string)
	}
	return "request"
}

const resourceKey = "resource"

// forResource labels the requests of a route group for error messages.
func forResource(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(resourceKey, name)
		c.Next()
	}
}

// serverError logs the cause and answers with a generic 500.
func serverError(c *gin.Context, err error, msg string) {
	slog.Error(msg,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func link(basePath string, id uint) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}

func respondPage[T any](c *gin.Context, items []T, p dto.Page, basePath string) {
	c.JSON(http.StatusOK, dto.NewPageResponse(items, p, basePath))
}
