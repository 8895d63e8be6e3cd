package tenant

import "gorm.io/gorm"

// Scope restricts a query to rows owned by companyID. Every exit table
// carries company_id, so repositories apply it to each read and write.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
