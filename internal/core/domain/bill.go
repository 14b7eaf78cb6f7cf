package domain

// BillStatus is the settlement state of a bill.
type BillStatus string

const (
	BillDeposit   BillStatus = "deposit"
	BillDebt      BillStatus = "debt"
	BillCompleted BillStatus = "completed"
)

// Bill is what a customer owes. DepositAmount is money received in advance and
// is tracked apart from the debt.
type Bill struct {
	ID            ID         `json:"id"`
	Date          Date       `json:"date"`
	CustomerID    ID         `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	Product       string     `json:"product"`
	TotalMoney    Money      `json:"total_money"`
	PaidAmount    Money      `json:"paid_amount"`
	DebtAmount    Money      `json:"debt_amount"`
	DepositAmount Money      `json:"deposit_amount"`
	Status        BillStatus `json:"status"`
	Note          string     `json:"note"`
}

// Payment is one receipt against a bill.
type Payment struct {
	ID         ID     `json:"id"`
	BillID     ID     `json:"bill_id"`
	CustomerID ID     `json:"customer_id,omitempty"`
	Date       Date   `json:"date"`
	Amount     Money  `json:"amount"`
	Method     string `json:"method"`
	Note       string `json:"note"`
	IsDeposit  Flag   `json:"is_deposit"`
}
