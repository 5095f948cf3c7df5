package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type Paging struct {
	Limit  int
	Offset int
}

// ResolvePaging membaca ?limit= & ?offset= dan normalisasi.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	limitStr := strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit)))
	offsetStr := strings.TrimSpace(c.Query("offset", "0"))

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset, _ := strconv.Atoi(offsetStr)
	if offset < 0 {
		offset = 0
	}

	return Paging{Limit: limit, Offset: offset}
}

func BuildPagination(total int64, p Paging) Pagination {
	return Pagination{
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: total > int64(p.Offset+p.Limit),
	}
}
