package team

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *Team) error
	GetTeamByID(ctx context.Context, id uint) (*Team, error)
	// GetTeamsByIDs returns the teams that exist among ids, keyed by ID.
	GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]Team, error)
	GetAllTeams(ctx context.Context, page, limit int, filter TeamFilter) ([]Team, int64, error)
	UpdateTeam(ctx context.Context, team *Team) error
	// DeleteTeam detaches the team's participants and drops its match
	// associations before removing it.
	DeleteTeam(ctx context.Context, id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetTeamByID(ctx context.Context, id uint) (*Team, error) {
	var team Team
	if err := r.db.WithContext(ctx).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]Team, error) {
	found := make(map[uint]Team, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var teams []Team
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		found[t.ID] = t
	}
	return found, nil
}

func (r *teamRepository) GetAllTeams(ctx context.Context, page, limit int, filter TeamFilter) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.WithContext(ctx).Model(&Team{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Olympic != nil {
		query = query.Where("olympic = ?", *filter.Olympic)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc, id asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(ctx context.Context, team *Team) error {
	result := r.db.WithContext(ctx).Model(team).Select("name", "olympic").Updates(team)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *teamRepository) DeleteTeam(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Participants stay, they just lose their team.
		if err := tx.Exec(`UPDATE participants SET team_id = NULL WHERE team_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM match_teams WHERE team_id = ?`, id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Team{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}
		return nil
	})
}
