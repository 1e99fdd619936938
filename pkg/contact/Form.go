package contact

import (
	"fmt"
)

/*
FormData carries one visitor inquiry. All fields except InquiryType are
required; InquiryType defaults to the general tag when left empty.
*/
type FormData struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	InquiryType InquiryType `json:"inquiryType"`
	Message     string      `json:"message"`
}

/*
Validate reports the first missing required field. A zero InquiryType is
filled in with the default rather than rejected.
*/
func (f *FormData) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"message", f.Message},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("missing required field: %s", field.name)
		}
	}

	if f.InquiryType == "" {
		f.InquiryType = InquiryGeneral
	}

	return nil
}

/*
Clear resets every field to its initial empty state, as happens after a
successful submission.
*/
func (f *FormData) Clear() {
	*f = FormData{}
}

func (f FormData) IsEmpty() bool {
	return f == FormData{}
}
