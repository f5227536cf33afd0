package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/port"
)

// ProfileRepository implements port.ProfileStore over the office_profiles and
// stakeholder_profiles tables.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository.
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileStore {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// InsertOffice inserts an office profile row keyed by identity id.
func (r *ProfileRepository) InsertOffice(ctx context.Context, profile *domain.OfficeProfile) error {
	query := `
		INSERT INTO office_profiles (
			id, name, email, office_name, age, gender, contact, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Email,
		profile.OfficeName,
		profile.Age,
		profile.Gender,
		profile.Contact,
		now,
		now,
	)
	if err != nil {
		r.logger.Error("failed to insert office profile", "id", profile.ID, "error", err)
		return fmt.Errorf("failed to insert office profile: %w", err)
	}

	r.logger.Info("office profile inserted", "id", profile.ID, "office_name", profile.OfficeName)
	return nil
}

// InsertStakeholder inserts a stakeholder profile row keyed by identity id.
func (r *ProfileRepository) InsertStakeholder(ctx context.Context, profile *domain.StakeholderProfile) error {
	query := `
		INSERT INTO stakeholder_profiles (
			id, name, email, age, community, contact,
			permanent_address, current_address, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Email,
		profile.Age,
		profile.Community,
		profile.Contact,
		profile.PermanentAddress,
		profile.CurrentAddress,
		now,
		now,
	)
	if err != nil {
		r.logger.Error("failed to insert stakeholder profile", "id", profile.ID, "error", err)
		return fmt.Errorf("failed to insert stakeholder profile: %w", err)
	}

	r.logger.Info("stakeholder profile inserted", "id", profile.ID)
	return nil
}

// GetOffice fetches the full office profile row for an identity id.
func (r *ProfileRepository) GetOffice(ctx context.Context, id uuid.UUID) (*domain.OfficeProfile, error) {
	query := `
		SELECT id, name, email, office_name, age, gender, contact, created_at, updated_at
		FROM office_profiles
		WHERE id = $1`

	profile := &domain.OfficeProfile{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.OfficeName,
		&profile.Age,
		&profile.Gender,
		&profile.Contact,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get office profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get office profile: %w", err)
	}

	return profile, nil
}

// GetStakeholder fetches the full stakeholder profile row for an identity id.
func (r *ProfileRepository) GetStakeholder(ctx context.Context, id uuid.UUID) (*domain.StakeholderProfile, error) {
	query := `
		SELECT id, name, email, age, community, contact,
		       permanent_address, current_address, created_at, updated_at
		FROM stakeholder_profiles
		WHERE id = $1`

	profile := &domain.StakeholderProfile{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.Age,
		&profile.Community,
		&profile.Contact,
		&profile.PermanentAddress,
		&profile.CurrentAddress,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get stakeholder profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get stakeholder profile: %w", err)
	}

	return profile, nil
}

// ExistsOffice reports whether an office row exists for the id.
func (r *ProfileRepository) ExistsOffice(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM office_profiles WHERE id = $1)`, id)
}

// ExistsStakeholder reports whether a stakeholder row exists for the id.
func (r *ProfileRepository) ExistsStakeholder(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM stakeholder_profiles WHERE id = $1)`, id)
}

func (r *ProfileRepository) exists(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	var found bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&found); err != nil {
		r.logger.Error("profile existence probe failed", "id", id, "error", err)
		return false, fmt.Errorf("profile existence probe failed: %w", err)
	}
	return found, nil
}

// UpdateOffice applies caller-editable fields to an office row.
func (r *ProfileRepository) UpdateOffice(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.OfficeProfile, error) {
	query := `
		UPDATE office_profiles
		SET name = $2, age = $3, contact = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, update.Name, update.Age, update.Contact, time.Now().UTC())
	if err != nil {
		r.logger.Error("failed to update office profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update office profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.GetOffice(ctx, id)
}

// UpdateStakeholder applies caller-editable fields to a stakeholder row.
func (r *ProfileRepository) UpdateStakeholder(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.StakeholderProfile, error) {
	query := `
		UPDATE stakeholder_profiles
		SET name = $2, age = $3, contact = $4, community = $5,
		    permanent_address = $6, current_address = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id,
		update.Name,
		update.Age,
		update.Contact,
		update.Community,
		update.PermanentAddress,
		update.CurrentAddress,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to update stakeholder profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update stakeholder profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.GetStakeholder(ctx, id)
}

// DeleteOffice removes an office row. Deleting an absent row reports
// domain.ErrProfileNotFound so coordinators can distinguish the no-op case.
func (r *ProfileRepository) DeleteOffice(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, `DELETE FROM office_profiles WHERE id = $1`, id)
}

// DeleteStakeholder removes a stakeholder row.
func (r *ProfileRepository) DeleteStakeholder(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, `DELETE FROM stakeholder_profiles WHERE id = $1`, id)
}

func (r *ProfileRepository) delete(ctx context.Context, query string, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete profile", "id", id, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile deleted", "id", id)
	return nil
}

// ListOffices returns all office profiles, newest first.
func (r *ProfileRepository) ListOffices(ctx context.Context) ([]*domain.OfficeProfile, error) {
	query := `
		SELECT id, name, email, office_name, age, gender, contact, created_at, updated_at
		FROM office_profiles
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list office profiles", "error", err)
		return nil, fmt.Errorf("failed to list office profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.OfficeProfile, 0)
	for rows.Next() {
		profile := &domain.OfficeProfile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Email,
			&profile.OfficeName,
			&profile.Age,
			&profile.Gender,
			&profile.Contact,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan office profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read office profiles: %w", err)
	}

	return profiles, nil
}

// ListStakeholders returns all stakeholder profiles, newest first.
func (r *ProfileRepository) ListStakeholders(ctx context.Context) ([]*domain.StakeholderProfile, error) {
	query := `
		SELECT id, name, email, age, community, contact,
		       permanent_address, current_address, created_at, updated_at
		FROM stakeholder_profiles
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list stakeholder profiles", "error", err)
		return nil, fmt.Errorf("failed to list stakeholder profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.StakeholderProfile, 0)
	for rows.Next() {
		profile := &domain.StakeholderProfile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Email,
			&profile.Age,
			&profile.Community,
			&profile.Contact,
			&profile.PermanentAddress,
			&profile.CurrentAddress,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stakeholder profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stakeholder profiles: %w", err)
	}

	return profiles, nil
}
