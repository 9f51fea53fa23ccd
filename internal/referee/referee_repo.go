package referee

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrRefereeNotFound = errors.New("referee not found")

type RefereeRepository interface {
	CreateReferee(ctx context.Context, ref *Referee) error
	GetRefereeByID(ctx context.Context, id uint) (*Referee, error)
	GetAllReferees(ctx context.Context, page, pageSize int, search string) ([]Referee, int64, error)
	UpdateReferee(ctx context.Context, ref *Referee) error
	// DeleteReferee clears the referee from its matches; the matches stay.
	DeleteReferee(ctx context.Context, id uint) error
}

type refereeRepository struct {
	db *gorm.DB
}

func NewRefereeRepository(db *gorm.DB) RefereeRepository {
	return &refereeRepository{db: db}
}

func (r *refereeRepository) CreateReferee(ctx context.Context, ref *Referee) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *refereeRepository) GetRefereeByID(ctx context.Context, id uint) (*Referee, error) {
	var ref Referee
	if err := r.db.WithContext(ctx).First(&ref, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefereeNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *refereeRepository) GetAllReferees(ctx context.Context, page, pageSize int, search string) ([]Referee, int64, error) {
	var referees []Referee
	var total int64

	query := r.db.WithContext(ctx).Model(&Referee{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name asc, id asc").Offset(offset).Limit(pageSize).Find(&referees).Error; err != nil {
		return nil, 0, err
	}
	return referees, total, nil
}

func (r *refereeRepository) UpdateReferee(ctx context.Context, ref *Referee) error {
	result := r.db.WithContext(ctx).Model(ref).Select("name", "phone", "email").Updates(ref)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefereeNotFound
	}
	return nil
}

func (r *refereeRepository) DeleteReferee(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`UPDATE matches SET referee_id = NULL WHERE referee_id = ?`, id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Referee{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRefereeNotFound
		}
		return nil
	})
}
