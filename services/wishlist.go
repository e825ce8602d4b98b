package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/repository"
)

type WishlistService struct {
	items repository.WishlistRepository
	log   *logrus.Logger
}

func NewWishlistService(items repository.WishlistRepository, log *logrus.Logger) *WishlistService {
	return &WishlistService{items: items, log: log}
}

// Add saves a variant to the user's wishlist. A variant can appear only
// once per user; a duplicate add is refused.
func (s *WishlistService) Add(userID, variantID uuid.UUID) (*models.WishlistItem, error) {
	item := &models.WishlistItem{UserID: userID, ProductVariantID: variantID}
	err := s.items.Create(item)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, &ConflictError{Message: "Product variant is already in the wishlist"}
	}
	if err != nil {
		s.log.WithError(err).Error("failed to create wishlist item")
		return nil, &StoreError{Op: "creating wish item", Err: err}
	}
	return item, nil
}

func (s *WishlistService) All() ([]models.WishlistItem, error) {
	items, err := s.items.ListAll()
	if err != nil {
		s.log.WithError(err).Error("failed to list wishlist")
		return nil, &StoreError{Op: "fetching wishlist", Err: err}
	}
	return items, nil
}

func (s *WishlistService) ByUser(userID uuid.UUID) ([]models.WishlistItem, error) {
	items, err := s.items.ListByUser(userID)
	if err != nil {
		s.log.WithError(err).Error("failed to list wishlist for user")
		return nil, &StoreError{Op: "fetching wishlist", Err: err}
	}
	return items, nil
}

func (s *WishlistService) Item(userID, variantID uuid.UUID) ([]models.WishlistItem, error) {
	items, err := s.items.GetByUserAndVariant(userID, variantID)
	if err != nil {
		s.log.WithError(err).Error("failed to get wishlist item")
		return nil, &StoreError{Op: "getting wish item", Err: err}
	}
	return items, nil
}

func (s *WishlistService) Remove(userID, variantID uuid.UUID) error {
	if err := s.items.Delete(userID, variantID); err != nil {
		s.log.WithError(err).Error("failed to delete wishlist item")
		return &StoreError{Op: "deleting wish item", Err: err}
	}
	return nil
}

// Clear removes every wishlist item the user has.
func (s *WishlistService) Clear(userID uuid.UUID) error {
	if err := s.items.DeleteByUser(userID); err != nil {
		s.log.WithError(err).Error("failed to clear wishlist")
		return &StoreError{Op: "deleting wish item", Err: err}
	}
	return nil
}
