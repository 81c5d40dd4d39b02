package repositories

import (
	"time"

	"gorm.io/gorm"

	"storefront/pkg/metrics"
	"storefront/pkg/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// paginate runs query twice, once for the total count and once for the
// page, and returns the pagination metadata. query must already carry its
// model, conditions, ordering and preloads.
func paginate(query *gorm.DB, page, limit int, dest interface{}) (response.Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := query.Limit(limit).Offset(offset).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return response.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
