package repositories

import (
	"context"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type CreateMemberRequest struct {
	MemberUserID         uint   `json:"member_user_id" binding:"required"`
	HouseRules           string `json:"house_rules"`
	DependentDescription string `json:"dependent_description"`
}

type UpdateMemberRequest struct {
	HouseRules           string `json:"house_rules"`
	DependentDescription string `json:"dependent_description"`
}

// MemberRow is a member joined with its user record for listing.
type MemberRow struct {
	MemberUserID         uint   `json:"member_user_id"`
	GivenName            string `json:"given_name"`
	Surname              string `json:"surname"`
	Email                string `json:"email"`
	City                 string `json:"city"`
	PhoneNumber          string `json:"phone_number"`
	HouseRules           string `json:"house_rules"`
	DependentDescription string `json:"dependent_description"`
}

func (r *MemberRepository) Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error) {
	member := models.Member{
		MemberUserID:         req.MemberUserID,
		HouseRules:           req.HouseRules,
		DependentDescription: req.DependentDescription,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, req.MemberUserID); err != nil {
			return err
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &member, nil
}

func (r *MemberRepository) Get(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Preload("User").First(&member, "member_user_id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &member, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.WithContext(ctx).
		Table("members m").
		Select("m.member_user_id, u.given_name, u.surname, u.email, u.city, u.phone_number, m.house_rules, m.dependent_description").
		Joins("JOIN users u ON m.member_user_id = u.user_id").
		Order("m.member_user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

func (r *MemberRepository) Update(ctx context.Context, id uint, req *UpdateMemberRequest) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&member, "member_user_id = ?", id).Error; err != nil {
			return err
		}
		member.HouseRules = req.HouseRules
		member.DependentDescription = req.DependentDescription
		return tx.Save(&member).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &member, nil
}

// Delete removes a member together with its address, jobs, the applications
// on those jobs, and its appointments.
func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, "member_user_id = ?", id).Error; err != nil {
			return err
		}
		return deleteMemberCascade(tx, id)
	})
	return Translate(err)
}

// DeleteByStreet removes every member whose address is on the given street,
// cascading each one. Returns the ids that were removed.
func (r *MemberRepository) DeleteByStreet(ctx context.Context, street string) ([]uint, error) {
	var deleted []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Address{}).Where("street = ?", street).Pluck("member_user_id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := deleteMemberCascade(tx, id); err != nil {
				return err
			}
		}
		deleted = ids
		return nil
	})
	if err != nil {
		return nil, Translate(err)
	}
	return deleted, nil
}
