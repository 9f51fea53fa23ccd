package participant

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrParticipantNotFound = errors.New("participant not found")

type ParticipantRepository interface {
	CreateParticipant(ctx context.Context, p *Participant) error
	GetParticipantByID(ctx context.Context, id uint) (*Participant, error)
	GetAllParticipants(ctx context.Context, page, limit int, filter ParticipantFilter) ([]Participant, int64, error)
	UpdateParticipant(ctx context.Context, p *Participant) error
	DeleteParticipant(ctx context.Context, id uint) error
	// CountByTeam returns how many persisted participants reference teamID.
	CountByTeam(ctx context.Context, teamID uint) (int64, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) CreateParticipant(ctx context.Context, p *Participant) error {
	return r.db.WithContext(ctx).Omit("Team").Create(p).Error
}

func (r *participantRepository) GetParticipantByID(ctx context.Context, id uint) (*Participant, error) {
	var p Participant
	if err := r.db.WithContext(ctx).Preload("Team").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) GetAllParticipants(ctx context.Context, page, limit int, filter ParticipantFilter) ([]Participant, int64, error) {
	var participants []Participant
	var total int64

	query := r.db.WithContext(ctx).Model(&Participant{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Team").
		Offset(offset).
		Limit(limit).
		Order("name asc, id asc").
		Find(&participants).Error
	if err != nil {
		return nil, 0, err
	}
	return participants, total, nil
}

// UpdateParticipant writes every editable column. A nil TeamID detaches the
// participant from its team.
func (r *participantRepository) UpdateParticipant(ctx context.Context, p *Participant) error {
	result := r.db.WithContext(ctx).
		Model(p).
		Select("name", "birth_date", "grade", "phone", "email", "team_id").
		Updates(p)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (r *participantRepository) DeleteParticipant(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (r *participantRepository) CountByTeam(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Participant{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}
