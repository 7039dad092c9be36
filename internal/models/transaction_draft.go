package models

// ReceiptFile is an optional attachment submitted with a transaction draft
type ReceiptFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the attachment size in bytes
func (r *ReceiptFile) Size() int64 {
	if r == nil {
		return 0
	}
	return int64(len(r.Data))
}

// TransactionDraft is the unpersisted state of the transaction entry form.
// Amount keeps the raw user input; identifiers and date are kept as entered.
type TransactionDraft struct {
	Type        string       `json:"type"`
	Amount      string       `json:"amount"`
	Description string       `json:"description"`
	AccountID   string       `json:"account_id"`
	CategoryID  string       `json:"category_id"`
	Date        string       `json:"date"`
	Status      string       `json:"status"`
	Receipt     *ReceiptFile `json:"-"`
}
