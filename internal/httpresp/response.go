package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// PagedResponse carries simple page/per_page metadata for catalog listings.
type PagedResponse[T any] struct {
	Count       int `json:"count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Results     []T `json:"results"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Paged[T any](c *gin.Context, total, page, perPage int, results []T) {
	totalPages := (total + perPage - 1) / perPage
	c.JSON(200, PagedResponse[T]{
		Count:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     perPage,
		Results:     results,
	})
}
