package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
	log        *logrus.Logger
}

func NewCategoryService(categories repository.CategoryRepository, log *logrus.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	if name == "" {
		return nil, &ValidationError{Message: "Name field is required"}
	}
	c := &models.Category{Name: name}
	if err := s.categories.Create(c); err != nil {
		s.log.WithError(err).Error("failed to create category")
		return nil, &StoreError{Op: "creating category", Err: err}
	}
	return c, nil
}

func (s *CategoryService) Get(id uuid.UUID) (*models.Category, error) {
	c, err := s.categories.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Category"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to get category")
		return nil, &StoreError{Op: "fetching category", Err: err}
	}
	return c, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.categories.List()
	if err != nil {
		s.log.WithError(err).Error("failed to list categories")
		return nil, &StoreError{Op: "fetching categories", Err: err}
	}
	return categories, nil
}

func (s *CategoryService) Update(id uuid.UUID, name string) (*models.Category, error) {
	if name == "" {
		return nil, &ValidationError{Message: "Name field is required"}
	}
	c := &models.Category{ID: id, Name: name}
	err := s.categories.Update(c)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "Category"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to update category")
		return nil, &StoreError{Op: "updating category", Err: err}
	}
	return c, nil
}

func (s *CategoryService) Delete(id uuid.UUID) error {
	if err := s.categories.Delete(id); err != nil {
		s.log.WithError(err).Error("failed to delete category")
		return &StoreError{Op: "deleting category", Err: err}
	}
	return nil
}
