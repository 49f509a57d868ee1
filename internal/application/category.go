package application

import (
	"github.com/linskybing/records-go/internal/domain/category"
)

type CategoryService struct{}

func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

// List returns the id-keyed category master, frozen at startup.
func (s *CategoryService) List() map[int]category.Info {
	return category.Master()
}
