package repositories

import (
	"context"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

type CreateJobRequest struct {
	MemberUserID           uint   `json:"member_user_id" binding:"required"`
	RequiredCaregivingType string `json:"required_caregiving_type" binding:"required"`
	OtherRequirements      string `json:"other_requirements"`
	DatePosted             string `json:"date_posted"` // 2006-01-02
}

type UpdateJobRequest struct {
	RequiredCaregivingType string `json:"required_caregiving_type" binding:"required"`
	OtherRequirements      string `json:"other_requirements"`
	DatePosted             string `json:"date_posted"` // 2006-01-02
}

// JobRow is a job joined with the posting member's user record.
type JobRow struct {
	JobID                  uint      `json:"job_id"`
	MemberUserID           uint      `json:"member_user_id"`
	GivenName              string    `json:"given_name"`
	Surname                string    `json:"surname"`
	RequiredCaregivingType string    `json:"required_caregiving_type"`
	OtherRequirements      string    `json:"other_requirements"`
	DatePosted             time.Time `json:"date_posted"`
}

func (r *JobRepository) Create(ctx context.Context, req *CreateJobRequest) (*models.Job, error) {
	datePosted, err := parseDate(req.DatePosted, "date_posted")
	if err != nil {
		return nil, err
	}

	job := models.Job{
		MemberUserID:           req.MemberUserID,
		RequiredCaregivingType: req.RequiredCaregivingType,
		OtherRequirements:      req.OtherRequirements,
		DatePosted:             datePosted,
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireMember(tx, req.MemberUserID); err != nil {
			return err
		}
		return tx.Create(&job).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &job, nil
}

func (r *JobRepository) Get(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "job_id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context) ([]JobRow, error) {
	var rows []JobRow
	err := r.db.WithContext(ctx).
		Table("jobs j").
		Select("j.job_id, j.member_user_id, u.given_name, u.surname, j.required_caregiving_type, j.other_requirements, j.date_posted").
		Joins("JOIN members m ON j.member_user_id = m.member_user_id").
		Joins("JOIN users u ON m.member_user_id = u.user_id").
		Order("j.job_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

func (r *JobRepository) Update(ctx context.Context, id uint, req *UpdateJobRequest) (*models.Job, error) {
	datePosted, err := parseDate(req.DatePosted, "date_posted")
	if err != nil {
		return nil, err
	}

	var job models.Job
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "job_id = ?", id).Error; err != nil {
			return err
		}
		job.RequiredCaregivingType = req.RequiredCaregivingType
		job.OtherRequirements = req.OtherRequirements
		job.DatePosted = datePosted
		return tx.Save(&job).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &job, nil
}

// Delete removes a job and its applications.
func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, "job_id = ?", id).Error; err != nil {
			return err
		}
		return deleteJobCascade(tx, id)
	})
	return Translate(err)
}

// DeleteByPoster removes every job posted by the member with the given name,
// cascading applications. Returns the number of jobs removed.
func (r *JobRepository) DeleteByPoster(ctx context.Context, givenName, surname string) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobIDs []uint
		err := tx.Table("jobs j").
			Joins("JOIN members m ON j.member_user_id = m.member_user_id").
			Joins("JOIN users u ON m.member_user_id = u.user_id").
			Where("u.given_name = ? AND u.surname = ?", givenName, surname).
			Pluck("j.job_id", &jobIDs).Error
		if err != nil {
			return err
		}
		for _, id := range jobIDs {
			if err := deleteJobCascade(tx, id); err != nil {
				return err
			}
		}
		removed = int64(len(jobIDs))
		return nil
	})
	if err != nil {
		return 0, Translate(err)
	}
	return removed, nil
}
