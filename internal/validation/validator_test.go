package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileEdit struct {
	Avatar *string `validate:"omitempty,url"`
	Bio    *string `validate:"omitempty,max=200"`
	Name   string  `validate:"required,min=2,max=20"`
}

func TestValidateStruct_Valid(t *testing.T) {
	avatar := "https://img.example/a.jpg"
	err := ValidateStruct(&profileEdit{Name: "Ansel", Avatar: &avatar})
	assert.Nil(t, err)
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	badAvatar := "not a url"
	longBio := strings.Repeat("x", 201)

	err := ValidateStruct(&profileEdit{Name: "A", Avatar: &badAvatar, Bio: &longBio})
	require.NotNil(t, err)
	require.Len(t, err.Fields, 3)

	byField := map[string]string{}
	for _, fe := range err.Fields {
		byField[fe.Field] = fe.Issue
	}
	assert.Equal(t, "must be at least 2", byField["Name"])
	assert.Equal(t, "must be a valid URL", byField["Avatar"])
	assert.Equal(t, "must be at most 200", byField["Bio"])
}

func TestValidateStruct_OmittedOptionalFields(t *testing.T) {
	err := ValidateStruct(&profileEdit{Name: "Dorothea"})
	assert.Nil(t, err)
}
