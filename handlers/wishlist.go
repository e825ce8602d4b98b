package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ameer12348/wacky-commerce-backend/services"
)

type WishlistHandler struct {
	wishlist *services.WishlistService
}

func NewWishlistHandler(wishlist *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

func (h *WishlistHandler) All(c *gin.Context) {
	items, err := h.wishlist.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	items, err := h.wishlist.ByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) Item(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	variantID, ok := pathID(c, "productVariantId")
	if !ok {
		return
	}
	items, err := h.wishlist.Item(userID, variantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var in struct {
		UserID           uuid.UUID `json:"userId"`
		ProductVariantID uuid.UUID `json:"productVariantId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := h.wishlist.Add(in.UserID, in.ProductVariantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	variantID, ok := pathID(c, "productVariantId")
	if !ok {
		return
	}
	if err := h.wishlist.Remove(userID, variantID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear empties the whole wishlist of one user.
func (h *WishlistHandler) Clear(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.wishlist.Clear(userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
