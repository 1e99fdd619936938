package models

/*
Enquiry is one received contact form submission, kept for operator
review. The website never exposes these back out.
*/
type Enquiry struct {
	BaseModel

	Name        string
	Email       string
	Phone       string
	InquiryType string `db:"inquiry_type"`
	Message     string
}
