package contact_test

import (
	"testing"

	"github.com/domenikresidence/website/pkg/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() contact.FormData {
	return contact.FormData{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+357 99 123456",
		InquiryType: contact.InquiryViewing,
		Message:     "I would like to arrange a viewing.",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	form := validForm()
	assert.NoError(t, form.Validate())
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		field string
		mod   func(*contact.FormData)
	}{
		{"name", func(f *contact.FormData) { f.Name = "" }},
		{"email", func(f *contact.FormData) { f.Email = "" }},
		{"phone", func(f *contact.FormData) { f.Phone = "" }},
		{"message", func(f *contact.FormData) { f.Message = "" }},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			form := validForm()
			test.mod(&form)

			err := form.Validate()

			require.Error(t, err)
			assert.Equal(t, "missing required field: "+test.field, err.Error())
		})
	}
}

func TestValidateDefaultsEmptyInquiryType(t *testing.T) {
	form := validForm()
	form.InquiryType = ""

	require.NoError(t, form.Validate())
	assert.Equal(t, contact.InquiryGeneral, form.InquiryType)
}

func TestClear(t *testing.T) {
	form := validForm()
	require.False(t, form.IsEmpty())

	form.Clear()
	assert.True(t, form.IsEmpty())
}
