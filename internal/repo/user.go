package repo

import (
	"context"

	"github.com/Skotchmaster/shop_api/internal/models"
	"gorm.io/gorm"
)

func usernameTaken(tx *gorm.DB, username string, exceptID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.User{}).Where("username = ?", username)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := usernameTaken(tx, u.Username, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrConflict
		}
		return tx.Create(u).Error
	})
	return translate(err)
}

func (r *GormRepo) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if patch.Username != nil {
			taken, err := usernameTaken(tx, *patch.Username, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrConflict
			}
			user.Username = *patch.Username
		}
		if patch.Password != nil {
			user.Password = *patch.Password
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// DeleteUser removes the user together with their cart.
func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err)
}
