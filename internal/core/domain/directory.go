package domain

// Customer buys slices of budgets through contracts.
type Customer struct {
	ID              ID          `json:"id"`
	Name            string      `json:"name"`
	Zalo            string      `json:"zalo"`
	Facebook        string      `json:"facebook"`
	PhoneNumber     string      `json:"phone_number"`
	Address         string      `json:"address"`
	ProductType     ProductType `json:"product_type"`
	AccountTypeID   ID          `json:"account_type_id"`
	AccountTypeName string      `json:"account_type_name"`
	Note            string      `json:"note"`
	Rate            Rate        `json:"rate"` // default customer markup
}

// Supplier sells advertising budgets.
type Supplier struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Zalo        string `json:"zalo"`
	Facebook    string `json:"facebook"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Note        string `json:"note"`
}

// AccountType is a categorical tag applied to budgets and customers.
type AccountType struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Note        string `json:"note"`
}
