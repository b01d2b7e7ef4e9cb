package models

// Supplier is the row shape of the suppliers table.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
