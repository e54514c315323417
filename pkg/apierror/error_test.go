package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	e := ValidationError("validation failed", FieldError{Field: "length", Message: "must be positive"})

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string       `json:"code"`
			Message string       `json:"message"`
			Details []FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(e.ToJSON(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "validation failed", body.Error.Message)
	assert.Equal(t, []FieldError{{Field: "length", Message: "must be positive"}}, body.Error.Details)
}

func TestToJSON_OmitsEmptyDetails(t *testing.T) {
	assert.NotContains(t, string(NotFound("").ToJSON()), "details")
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", InsufficientInventory(""))

	apiErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestFields_SortedByName(t *testing.T) {
	details := Fields(map[string]string{"wood_id": "is required", "core_id": "is required"})
	assert.Equal(t, []FieldError{
		{Field: "core_id", Message: "is required"},
		{Field: "wood_id", Message: "is required"},
	}, details)
}
