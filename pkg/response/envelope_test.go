package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	env := Success(http.StatusOK, "Success", map[string]string{"title": "A"})
	b, err := json.Marshal(env)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, float64(200), got["statusCode"])
	assert.Equal(t, "Success", got["message"])
	assert.Contains(t, got, "data")
	assert.NotContains(t, got, "error")
	assert.NotContains(t, got, "errors")
}

func TestSuccessEnvelope_NoData(t *testing.T) {
	b, err := json.Marshal(Success(http.StatusBadRequest, "Not found", nil))
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.NotContains(t, got, "data")
	assert.Equal(t, float64(400), got["statusCode"])
}

func TestErrorEnvelope_PlainError(t *testing.T) {
	env := Error(http.StatusInternalServerError, "boom", errors.New("boom"))
	assert.False(t, env.Success)
	assert.Equal(t, 500, env.StatusCode)
	assert.Equal(t, "boom", env.Message)
	assert.Equal(t, "boom", env.Error)
	assert.Empty(t, env.Errors)
}

func TestErrorEnvelope_ValidationError(t *testing.T) {
	verr := &validation.Error{Model: "blogs", Fields: []validation.FieldError{
		{Field: "title", Rule: "required", Message: "Path `title` is required."},
		{Field: "body", Rule: "required", Message: "Path `body` is required."},
	}}
	env := Error(http.StatusInternalServerError, verr.Error(), verr)
	assert.Equal(t, "Path `title` is required.", env.Message)
	require.Len(t, env.Errors, 2)
	assert.Equal(t, "body", env.Errors[1].Field)
}

func TestMessageCoercion(t *testing.T) {
	assert.Equal(t, "42", Success(200, 42, nil).Message)
	assert.Equal(t, "bad", Error(500, errors.New("bad"), nil).Message)
	assert.Equal(t, "", Success(200, nil, nil).Message)
}

func TestInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	InternalError(c, errors.New("store unavailable"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var got Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, 500, got.StatusCode)
	assert.Equal(t, "store unavailable", got.Message)
	assert.True(t, c.IsAborted())
}
