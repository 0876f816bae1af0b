package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/shop_api/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return translate(r.DB.WithContext(ctx).Create(prod).Error)
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := []models.Product{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, patch models.ProductPatch) (*models.Product, error) {
	var prod models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}
		patch.Apply(&prod)
		return tx.Save(&prod).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &prod, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchProducts matches q as a case-insensitive substring of the product name.
func (r *GormRepo) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"

	items := []models.Product{}
	if err := r.DB.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
