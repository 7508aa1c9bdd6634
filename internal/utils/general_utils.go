package utils

import (
	"math"

	"gorm.io/gorm"
)

// Paginate translates 1-based page/size into offset/limit.
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if size < 1 {
			size = 10
		}
		offset := (page - 1) * size
		return db.Offset(offset).Limit(size)
	}
}

// OffsetLimit applies skip/limit as given, for endpoints that paginate by
// raw offset instead of page number.
func OffsetLimit(skip, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skip < 0 {
			skip = 0
		}
		if limit < 1 {
			limit = 20
		}
		return db.Offset(skip).Limit(limit)
	}
}

// TotalPages is ceil(total/limit); zero when limit is not positive.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
