package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// sortableColumns whitelists columns that list queries may sort by. Anything
// else falls back to created_at.
var sortableColumns = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"status":       true,
	"order_number": true,
	"score":        true,
}

func applySort(query *gorm.DB, sortBy string, sortDesc bool) *gorm.DB {
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}

	direction := "ASC"
	if sortDesc {
		direction = "DESC"
	}

	return query.Order(fmt.Sprintf("%s %s", sortBy, direction))
}

func applyPaging(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}
