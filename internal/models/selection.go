package models

// Sides is the number of printed sides per sheet.
type Sides string

const (
	SidesSingle Sides = "single"
	SidesDouble Sides = "double"
)

// CustomerSelection is what the customer picked in the product builder.
type CustomerSelection struct {
	SizeCode       string      `json:"sizeCode"`
	PaperCode      string      `json:"paperCode"`
	PaperWeight    int         `json:"paperWeight"`
	Sides          Sides       `json:"sides"`
	Pages          int         `json:"pages,omitempty"`
	BindingCode    string      `json:"bindingCode,omitempty"`
	FinishingCodes []string    `json:"finishingCodes,omitempty"`
	Quantity       int         `json:"quantity,omitempty"`
	Books          []BookInput `json:"books,omitempty"`
}

// BookInput is one independently specified book of an outsourced order.
type BookInput struct {
	Pages    int `json:"pages"`
	Quantity int `json:"quantity"`
}
