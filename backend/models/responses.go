package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ellavondegurechaff/recipe-store/internal/domain/recipes"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code        int               `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// MessageResponse confirms an update or delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// RecipeListResponse keeps the capitalised key existing clients read.
type RecipeListResponse struct {
	Recipes []recipes.Recipe `json:"Recipes"`
}

// DeleteRequest is the body of DELETE /.
type DeleteRequest struct {
	ID *RecipeID `json:"id"`
}

// RecipeID accepts an id sent as a JSON integer, an integral float such as
// 5.0, or a numeric string such as "5".
type RecipeID int64

func (id *RecipeID) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		*id = RecipeID(n)
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("id must be an integer, got %s", data)
	}
	*id = RecipeID(f)
	return nil
}

// HealthCheck represents a health check response
type HealthCheck struct {
	Status     string                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Version    string                     `json:"version"`
	Commit     string                     `json:"commit"`
	Components map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthCheck creates a new health check response
func NewHealthCheck(version, commit string) *HealthCheck {
	return &HealthCheck{
		Status:     "healthy",
		Timestamp:  time.Now(),
		Version:    version,
		Commit:     commit,
		Components: make(map[string]ComponentHealth),
	}
}

// AddComponent adds a component health status
func (h *HealthCheck) AddComponent(name, status, message string) {
	h.Components[name] = ComponentHealth{
		Status:  status,
		Message: message,
	}

	// If any component is unhealthy, mark overall status as unhealthy
	if status != "healthy" && h.Status == "healthy" {
		h.Status = "unhealthy"
	}
}
