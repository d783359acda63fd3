package repositories

import (
	"context"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

type CreateAddressRequest struct {
	MemberUserID uint   `json:"member_user_id" binding:"required"`
	HouseNumber  string `json:"house_number" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Town         string `json:"town" binding:"required"`
}

type UpdateAddressRequest struct {
	HouseNumber string `json:"house_number" binding:"required"`
	Street      string `json:"street" binding:"required"`
	Town        string `json:"town" binding:"required"`
}

// AddressRow is an address joined with the member's user record.
type AddressRow struct {
	MemberUserID uint   `json:"member_user_id"`
	GivenName    string `json:"given_name"`
	Surname      string `json:"surname"`
	HouseNumber  string `json:"house_number"`
	Street       string `json:"street"`
	Town         string `json:"town"`
}

func (r *AddressRepository) Create(ctx context.Context, req *CreateAddressRequest) (*models.Address, error) {
	address := models.Address{
		MemberUserID: req.MemberUserID,
		HouseNumber:  req.HouseNumber,
		Street:       req.Street,
		Town:         req.Town,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireMember(tx, req.MemberUserID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Address{}).Where("member_user_id = ?", req.MemberUserID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateKey
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &address, nil
}

func (r *AddressRepository) Get(ctx context.Context, memberID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, "member_user_id = ?", memberID).Error; err != nil {
		return nil, Translate(err)
	}
	return &address, nil
}

func (r *AddressRepository) List(ctx context.Context) ([]AddressRow, error) {
	var rows []AddressRow
	err := r.db.WithContext(ctx).
		Table("addresses a").
		Select("a.member_user_id, u.given_name, u.surname, a.house_number, a.street, a.town").
		Joins("JOIN members m ON a.member_user_id = m.member_user_id").
		Joins("JOIN users u ON m.member_user_id = u.user_id").
		Order("a.member_user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

func (r *AddressRepository) Update(ctx context.Context, memberID uint, req *UpdateAddressRequest) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&address, "member_user_id = ?", memberID).Error; err != nil {
			return err
		}
		address.HouseNumber = req.HouseNumber
		address.Street = req.Street
		address.Town = req.Town
		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &address, nil
}

func (r *AddressRepository) Delete(ctx context.Context, memberID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.First(&address, "member_user_id = ?", memberID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Address{}, "member_user_id = ?", memberID).Error
	})
	return Translate(err)
}
