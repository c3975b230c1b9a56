package repositories

import (
	"fmt"

	"backoffice-api/models"
)

// sortColumns is the whitelist of orderable columns. Anything else falls
// back to created_at so list params can never inject SQL.
var sortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"name":       true,
	"starts_at":  true,
	"status":     true,
}

func orderClause(params models.ListParams, table string) string {
	col := params.SortBy
	if !sortColumns[col] {
		col = "created_at"
	}
	order := "desc"
	if params.SortOrder == "asc" {
		order = "asc"
	}
	return fmt.Sprintf("%s.%s %s", table, col, order)
}
