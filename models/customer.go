package models

type Customer struct {
	Base
	CompanyName   string     `json:"companyName" db:"company_name"`
	ContactPerson string     `json:"contactPerson" db:"contact_person"`
	Email         string     `json:"email" db:"email"`
	Phone         string     `json:"phone" db:"phone"`
	Address       string     `json:"address" db:"address"`
	City          string     `json:"city" db:"city"`
	Country       string     `json:"country" db:"country"`
	PaymentTerms  string     `json:"paymentTerms" db:"payment_terms"`
	BankName      string     `json:"bankName" db:"bank_name"`
	BankAccount   string     `json:"bankAccount" db:"bank_account"`
	Licenses      StringList `json:"licenses,omitempty" db:"licenses"`
}
