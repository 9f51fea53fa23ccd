// venue/repository.go
package venue

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository interface defines all database operations for venue management
type VenueRepository interface {
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uint) (*Venue, error)
	GetAllVenues(ctx context.Context, page, limit int, filters map[string]interface{}) ([]Venue, int64, error)
	UpdateVenue(ctx context.Context, venue *Venue) error
	DeleteVenue(ctx context.Context, id uint) error
}

// venueRepository implements VenueRepository interface
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// CreateVenue adds a new venue to the database
func (r *venueRepository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

// GetVenueByID retrieves a venue by its ID
func (r *venueRepository) GetVenueByID(ctx context.Context, id uint) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// GetAllVenues retrieves all venues with pagination and filters
func (r *venueRepository) GetAllVenues(ctx context.Context, page, limit int, filters map[string]interface{}) ([]Venue, int64, error) {
	var venues []Venue
	var totalCount int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Model(&Venue{})

	for key, value := range filters {
		switch key {
		case "covered":
			query = query.Where("covered = ?", value)
		case "name":
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(value.(string))+"%")
		}
	}

	// Get total count for pagination
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("name asc, id asc").Offset(offset).Limit(limit).Find(&venues).Error; err != nil {
		return nil, 0, err
	}

	return venues, totalCount, nil
}

// UpdateVenue updates venue information
func (r *venueRepository) UpdateVenue(ctx context.Context, venue *Venue) error {
	result := r.db.WithContext(ctx).Model(venue).Select("name", "covered").Updates(venue)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// DeleteVenue removes a venue together with every match scheduled there
func (r *venueRepository) DeleteVenue(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Team associations of the venue's matches first
		if err := tx.Exec(`DELETE FROM match_teams WHERE match_id IN (SELECT id FROM matches WHERE venue_id = ?)`, id).Error; err != nil {
			return err
		}

		if err := tx.Exec(`DELETE FROM matches WHERE venue_id = ?`, id).Error; err != nil {
			return err
		}

		// Finally delete the venue
		result := tx.Delete(&Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
}
