package discipline

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDisciplineNotFound     = errors.New("discipline not found")
	ErrDisciplineNameConflict = errors.New("discipline name already exists")
)

type DisciplineRepository interface {
	CreateDiscipline(ctx context.Context, d *Discipline) error
	GetDisciplineByID(ctx context.Context, id uint) (*Discipline, error)
	FindDisciplineByName(ctx context.Context, name string) (*Discipline, error)
	GetAllDisciplines(ctx context.Context, page, pageSize int, searchTerm string) ([]Discipline, int64, error)
	UpdateDiscipline(ctx context.Context, d *Discipline) error
	// DeleteDiscipline removes the discipline together with its matches.
	DeleteDiscipline(ctx context.Context, id uint) error
}

type disciplineRepository struct {
	db *gorm.DB
}

// NewDisciplineRepository creates a new instance of DisciplineRepository.
func NewDisciplineRepository(db *gorm.DB) DisciplineRepository {
	return &disciplineRepository{db: db}
}

func (r *disciplineRepository) CreateDiscipline(ctx context.Context, d *Discipline) error {
	if err := r.checkName(ctx, d.Name, 0); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *disciplineRepository) GetDisciplineByID(ctx context.Context, id uint) (*Discipline, error) {
	var d Discipline
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisciplineNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindDisciplineByName returns (nil, nil) when no discipline has that name.
func (r *disciplineRepository) FindDisciplineByName(ctx context.Context, name string) (*Discipline, error) {
	var d Discipline
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *disciplineRepository) GetAllDisciplines(ctx context.Context, page, pageSize int, searchTerm string) ([]Discipline, int64, error) {
	var disciplines []Discipline
	var total int64

	query := r.db.WithContext(ctx).Model(&Discipline{})
	if searchTerm != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(searchTerm)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&disciplines).Error; err != nil {
		return nil, 0, err
	}
	return disciplines, total, nil
}

func (r *disciplineRepository) UpdateDiscipline(ctx context.Context, d *Discipline) error {
	if err := r.checkName(ctx, d.Name, d.ID); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(d).Select("name", "min_teams", "max_teams",
		"min_participants_per_team", "max_participants_per_team").Updates(d)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDisciplineNotFound
	}
	return nil
}

func (r *disciplineRepository) DeleteDiscipline(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Matches of this discipline go with it, associations first.
		if err := tx.Exec(`DELETE FROM match_teams WHERE match_id IN (SELECT id FROM matches WHERE discipline_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM matches WHERE discipline_id = ?`, id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Discipline{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDisciplineNotFound
		}
		return nil
	})
}

// checkName fails with ErrDisciplineNameConflict when another discipline
// already uses name. The unique index still guards concurrent writers.
func (r *disciplineRepository) checkName(ctx context.Context, name string, self uint) error {
	existing, err := r.FindDisciplineByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrDisciplineNameConflict
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDisciplineNameConflict
	}
	return err
}
