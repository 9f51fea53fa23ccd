package match

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository defines methods to interact with match-related data
type MatchRepository interface {
	// CreateMatch inserts the match and its team associations.
	CreateMatch(ctx context.Context, match *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	GetMatches(ctx context.Context, filter MatchFilter, page, pageSize int) ([]Match, int64, error)
	UpdateMatch(ctx context.Context, match *Match) error
	DeleteMatch(ctx context.Context, id uint) error
	// ListMatchIDs returns every match ID in ascending order.
	ListMatchIDs(ctx context.Context) ([]uint, error)

	// Team association methods
	ReplaceTeams(ctx context.Context, matchID uint, teams []MatchTeam) error
	AddTeamToMatch(ctx context.Context, matchTeam *MatchTeam) error
	UpdateTeamRole(ctx context.Context, matchID, teamID uint, role Role) error
	RemoveTeamFromMatch(ctx context.Context, matchID, teamID uint) error

	// Transaction support
	WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
// Any error returned by txFunc rolls everything back.
func (r *GormMatchRepository) WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// CreateMatch creates a new match
func (r *GormMatchRepository) CreateMatch(ctx context.Context, match *Match) error {
	teams := match.Teams
	match.Teams = nil
	if err := r.db.WithContext(ctx).Omit("Discipline", "Venue", "Referee").Create(match).Error; err != nil {
		match.Teams = teams
		return err
	}
	for i := range teams {
		teams[i].MatchID = match.ID
	}
	match.Teams = teams
	if len(teams) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Team").Create(&match.Teams).Error
}

// GetMatchByID retrieves a match by ID with all related entities
func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var match Match
	result := r.db.WithContext(ctx).
		Preload("Discipline").
		Preload("Venue").
		Preload("Referee").
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("match_teams.id asc")
		}).
		Preload("Teams.Team").
		First(&match, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}
	return &match, nil
}

// GetMatches retrieves matches based on filters with pagination
func (r *GormMatchRepository) GetMatches(ctx context.Context, filter MatchFilter, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.WithContext(ctx).Model(&Match{})
	if filter.DisciplineID != nil {
		query = query.Where("discipline_id = ?", *filter.DisciplineID)
	}
	if filter.VenueID != nil {
		query = query.Where("venue_id = ?", *filter.VenueID)
	}
	if filter.TeamID != nil {
		query = query.Where("id IN (?)", r.db.Model(&MatchTeam{}).Select("match_id").Where("team_id = ?", *filter.TeamID))
	}

	// Count total before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := query.Preload("Discipline").
		Preload("Venue").
		Preload("Referee").
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("match_teams.id asc")
		}).
		Preload("Teams.Team").
		Order("starts_at asc, id asc").
		Offset(offset).Limit(pageSize).
		Find(&matches)

	if result.Error != nil {
		return nil, 0, result.Error
	}

	return matches, total, nil
}

// UpdateMatch writes the scheduling fields. Associations are handled by
// ReplaceTeams.
func (r *GormMatchRepository) UpdateMatch(ctx context.Context, match *Match) error {
	result := r.db.WithContext(ctx).
		Model(match).
		Select("discipline_id", "starts_at", "ends_at", "venue_id", "referee_id").
		Updates(match)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// DeleteMatch removes a match and its team associations
func (r *GormMatchRepository) DeleteMatch(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&MatchTeam{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Match{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMatchNotFound
		}
		return nil
	})
}

func (r *GormMatchRepository) ListMatchIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&Match{}).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

// ReplaceTeams swaps the whole association set of a match.
func (r *GormMatchRepository) ReplaceTeams(ctx context.Context, matchID uint, teams []MatchTeam) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("match_id = ?", matchID).Delete(&MatchTeam{}).Error; err != nil {
		return err
	}
	if len(teams) == 0 {
		return nil
	}
	for i := range teams {
		teams[i].ID = 0
		teams[i].MatchID = matchID
	}
	return db.Omit("Team").Create(&teams).Error
}

// AddTeamToMatch adds a single team association
func (r *GormMatchRepository) AddTeamToMatch(ctx context.Context, matchTeam *MatchTeam) error {
	return r.db.WithContext(ctx).Omit("Team").Create(matchTeam).Error
}

func (r *GormMatchRepository) UpdateTeamRole(ctx context.Context, matchID, teamID uint, role Role) error {
	result := r.db.WithContext(ctx).
		Model(&MatchTeam{}).
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotInMatch
	}
	return nil
}

func (r *GormMatchRepository) RemoveTeamFromMatch(ctx context.Context, matchID, teamID uint) error {
	result := r.db.WithContext(ctx).
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Delete(&MatchTeam{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotInMatch
	}
	return nil
}
