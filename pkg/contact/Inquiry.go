package contact

/*
InquiryType is the closed category tag a visitor picks on the contact
form. The same enumeration drives the form's option list and the labels
rendered into notification emails, so both sides can never drift.
*/
type InquiryType string

const (
	InquiryGeneral    InquiryType = "general"
	InquiryViewing    InquiryType = "viewing"
	InquiryInvestment InquiryType = "investment"
	InquirySales      InquiryType = "sales"
	InquiryRelocation InquiryType = "relocation"
	InquiryOther      InquiryType = "other"
)

var inquiryLabels = map[InquiryType]string{
	InquiryGeneral:    "Penthouse Suite",
	InquiryViewing:    "Rooftop Suite",
	InquiryInvestment: "Investment Opportunity",
	InquirySales:      "Sales Question",
	InquiryRelocation: "Relocation to Cyprus",
	InquiryOther:      "Other",
}

/*
Label renders the human-readable label for an inquiry type. Unrecognized
tags fall back to the general label.
*/
func (t InquiryType) Label() string {
	if label, ok := inquiryLabels[t]; ok {
		return label
	}

	return inquiryLabels[InquiryGeneral]
}

type InquiryOption struct {
	Value InquiryType
	Label string
}

/*
InquiryOptions lists the selectable inquiry types in display order, for
rendering the form's option list.
*/
func InquiryOptions() []InquiryOption {
	return []InquiryOption{
		{Value: InquiryGeneral, Label: InquiryGeneral.Label()},
		{Value: InquiryViewing, Label: InquiryViewing.Label()},
		{Value: InquiryInvestment, Label: InquiryInvestment.Label()},
		{Value: InquirySales, Label: InquirySales.Label()},
		{Value: InquiryRelocation, Label: InquiryRelocation.Label()},
		{Value: InquiryOther, Label: InquiryOther.Label()},
	}
}
