package repo

import (
	"context"

	"github.com/Skotchmaster/shop_api/internal/models"
	"gorm.io/gorm"
)

// AddCartItem fails with ErrNotFound when the product does not exist.
func (r *GormRepo) AddCartItem(ctx context.Context, item *models.CartItem) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Create(item).Error
	})
	return translate(err)
}

func (r *GormRepo) ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func ownedItem(tx *gorm.DB, userID, itemID uint) *gorm.DB {
	return tx.Where("id = ? AND user_id = ?", itemID, userID)
}

func (r *GormRepo) UpdateCartItem(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedItem(tx, userID, itemID).First(&item).Error; err != nil {
			return err
		}
		item.Quantity = quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, userID, itemID uint) error {
	res := ownedItem(r.DB.WithContext(ctx), userID, itemID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
