package utils

import (
	"fmt"
	"log"
	"time"

	"explorecamp/src/db"
	"explorecamp/src/lib"
	"explorecamp/src/models"
	"explorecamp/src/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityCacheKey addresses the cached calendar for one product. Every
// ledger write for that product invalidates it.
func AvailabilityCacheKey(productId uint) string {
	return fmt.Sprintf("%d:availability", productId)
}

// QueryAvailabilityRange returns the slot rows covering [from, to). Days with
// no row simply do not appear; absence means "never opened for booking".
func QueryAvailabilityRange(tx *gorm.DB, productId uint, from, to time.Time) ([]models.Availability, error) {
	var slots []models.Availability
	err := tx.
		Model(&models.Availability{}).
		Where("product_id = ? AND date >= ? AND date < ?", productId, from, to).
		Order("date asc").
		Find(&slots).
		Error
	return slots, err
}

// LockAvailabilityRange reads the slot rows for [from, to) under a row-level
// write lock, pinning them until the surrounding transaction commits. Two
// overlapping reservations serialize here.
func LockAvailabilityRange(tx *gorm.DB, productId uint, from, to time.Time) ([]models.Availability, error) {
	var slots []models.Availability
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Model(&models.Availability{}).
		Where("product_id = ? AND date >= ? AND date < ?", productId, from, to).
		Order("date asc").
		Find(&slots).
		Error
	return slots, err
}

// AllFree reports whether every day in [from, to) has a slot row and none is
// booked. A missing day makes the whole range unavailable.
func AllFree(tx *gorm.DB, productId uint, from, to time.Time) (bool, error) {
	slots, err := QueryAvailabilityRange(tx, productId, from, to)
	if err != nil {
		return false, err
	}
	return rangeIsFree(slots, from, to), nil
}

func rangeIsFree(slots []models.Availability, from, to time.Time) bool {
	nights := len(DatesIn(from, to))
	if len(slots) != nights {
		return false
	}
	for _, slot := range slots {
		if slot.IsBooked {
			return false
		}
	}
	return true
}

// MarkAvailabilityRange flips the booked flag for every slot in [from, to)
// currently in the opposite state, and verifies the write covered the whole
// range. A shortfall means a concurrent writer got there first; the caller's
// transaction must roll back.
func MarkAvailabilityRange(tx *gorm.DB, productId uint, from, to time.Time, booked bool) error {
	nights := int64(len(DatesIn(from, to)))
	res := tx.
		Model(&models.Availability{}).
		Where("product_id = ? AND date >= ? AND date < ? AND is_booked = ?", productId, from, to, !booked).
		Update("is_booked", booked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != nights {
		log.Printf("Availability update for product [%d] covered %d of %d days\n", productId, res.RowsAffected, nights)
		return types.ErrDatesUnavailable
	}
	return nil
}

// ReleaseAvailabilityRange frees the slots of a cancelled booking. Unlike the
// booking path it tolerates rows already free; releasing is idempotent.
func ReleaseAvailabilityRange(tx *gorm.DB, productId uint, from, to time.Time) error {
	return tx.
		Model(&models.Availability{}).
		Where("product_id = ? AND date >= ? AND date < ?", productId, from, to).
		Update("is_booked", false).
		Error
}

// OpenProductDates bulk-inserts fresh, unbooked slots. A date that already has
// a slot fails the whole batch; opening never resets booked state.
func OpenProductDates(productId uint, dates []time.Time) (int, error) {
	d := db.GetDb()
	var created int
	err := d.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.
			Model(&models.Product{}).
			Select("id").
			Where(&models.Product{ID: productId}).
			First(&product).
			Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.ErrProductNotFound
			}
			return err
		}
		for _, date := range dates {
			slot := models.Availability{
				ProductID: productId,
				Date:      date,
				IsBooked:  false,
			}
			if err := tx.Create(&slot).Error; err != nil {
				log.Printf("Could not open date %s for product [%d]: %s\n", date.Format(types.DATE_FORMAT), productId, err.Error())
				return fmt.Errorf("date %s is already open for booking", date.Format(types.DATE_FORMAT))
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	go lib.InvalidateKeys(AvailabilityCacheKey(productId))
	return created, nil
}
