package receipt

// Receipt - model for JSON receipt body
//
// Price and Total stay strings on the wire: the contract fixes them to the
// textual pattern `\d+\.\d{2}`, and the scoring rules are evaluated on exact
// decimal values, never on floats.
type Receipt struct {
	Retailer     string        `json:"retailer"`
	PurchaseDate string        `json:"purchaseDate"`
	PurchaseTime string        `json:"purchaseTime"`
	Items        []ReceiptItem `json:"items"`
	Total        string        `json:"total"`
}

// ReceiptItem - model for Json receipt items
type ReceiptItem struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}
