package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username,omitempty" validate:"required"`
	Note     string
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(&sample{Email: "a@b.com", Username: "Ann"}))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(&sample{})
	assert.EqualError(t, err, "field 'email' failed 'required'; field 'username' failed 'required'")
}

func TestStruct_EmptyStringIsMissing(t *testing.T) {
	err := Struct(&sample{Email: "", Username: "Ann"})
	assert.EqualError(t, err, "field 'email' failed 'required'")
}
