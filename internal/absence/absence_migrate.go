package absence

import "gorm.io/gorm"

// Migrate adds the exclusion constraint that backs the overlap invariant at
// the store level: no two rows for one employee with a blocking status may
// hold intersecting [start_date, end_date] ranges. A racing transaction that
// slips past the application-level check fails here with SQLSTATE 23P01,
// which the error mapper turns into the same conflict error.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&AbsenceRequest{}); err != nil {
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'excl_absence_requests_no_overlap'
			) THEN
				ALTER TABLE absence_requests
				ADD CONSTRAINT excl_absence_requests_no_overlap
				EXCLUDE USING gist (
					employee_id WITH =,
					daterange(start_date::date, end_date::date, '[]') WITH &&
				)
				WHERE (status IN ('PENDING', 'APPROVED'));
			END IF;
		END
		$$;
	`).Error
}
