package repository

import (
	"context"
	"errors"

	"rategate-backend/internal/domain/users"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *users.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*users.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepo) FindByGoogleSub(ctx context.Context, sub string) (*users.User, error) {
	return r.findOne(ctx, "google_sub = ?", sub)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg interface{}) (*users.User, error) {
	var u users.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// ContactEmail serves the duplicate-registration guard, which only needs
// the owner's address to build the masked hint.
func (r *UserRepo) ContactEmail(ctx context.Context, id uint) (string, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil || u == nil {
		return "", err
	}
	return u.Email, nil
}

func (r *UserRepo) Save(ctx context.Context, u *users.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id uint, hashed string) error {
	return r.db.WithContext(ctx).Model(&users.User{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

func (r *UserRepo) MarkVerified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&users.User{}).
		Where("id = ?", id).
		Update("is_verified", true).Error
}

func (r *UserRepo) List(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

/* ---------------- verification / reset tokens ---------------- */

func (r *UserRepo) CreateToken(ctx context.Context, t *users.VerificationToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *UserRepo) FindToken(ctx context.Context, token, tokenType string) (*users.VerificationToken, error) {
	var t users.VerificationToken
	err := r.db.WithContext(ctx).Where("token = ? AND type = ?", token, tokenType).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *UserRepo) DeleteToken(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&users.VerificationToken{}, id).Error
}

func (r *UserRepo) DeleteTokensFor(ctx context.Context, userID uint, tokenType string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, tokenType).
		Delete(&users.VerificationToken{}).Error
}
