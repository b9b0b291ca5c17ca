package repositories

import (
	"DentalDesk/domain"

	"gorm.io/gorm"
)

// rowsAffected turns a zero-affected-rows mutation into the typed NotFound
// failure; callers must never treat it as silent success.
func rowsAffected(result *gorm.DB) error {
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
