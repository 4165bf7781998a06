package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func TestInit_AliasesAndJSONNames(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(signupForm{Username: "x", Email: "nope", Password: "short"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be 2 to 16 characters", details["username"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be 8 to 64 characters", details["password"])

	err = v.Struct(signupForm{Username: "minsu", Email: "minsu@example.com", Password: "hunter22"})
	assert.NoError(t, err)
}

func TestToDetails_NonValidationErrors(t *testing.T) {
	Init()

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))

	err := binding.JSON.BindBody([]byte("{not json"), &signupForm{})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_Required(t *testing.T) {
	Init()
	v := binding.Validator.Engine().(*validator.Validate)

	err := v.Struct(signupForm{})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["username"])
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])
}
