package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/utils/logger"
)

func newRepoTest(t *testing.T) (pgxmock.PgxPoolIface, *ProfileRepository) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewProfileRepository(mock, logger.NewTestLogger()).(*ProfileRepository)
	return mock, repo
}

func TestInsertOffice(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	profile := &domain.OfficeProfile{
		ProfileCommon: domain.ProfileCommon{ID: id, Name: "CDRRMO", Email: "cdrrmo@dlsl.edu.ph"},
		OfficeName:    "City Disaster Risk Reduction Office",
	}

	mock.ExpectExec(`INSERT INTO office_profiles`).
		WithArgs(id, profile.Name, profile.Email, profile.OfficeName,
			profile.Age, profile.Gender, profile.Contact,
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.InsertOffice(context.Background(), profile)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertStakeholder(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	community := "Barangay Uno"
	profile := &domain.StakeholderProfile{
		ProfileCommon: domain.ProfileCommon{ID: id, Name: "Juan", Email: "juan@dlsl.edu.ph"},
		Community:     &community,
	}

	mock.ExpectExec(`INSERT INTO stakeholder_profiles`).
		WithArgs(id, profile.Name, profile.Email, profile.Age, profile.Community,
			profile.Contact, profile.PermanentAddress, profile.CurrentAddress,
			pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.InsertStakeholder(context.Background(), profile)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOffice(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "name", "email", "office_name", "age", "gender", "contact", "created_at", "updated_at",
	}).AddRow(id, "CDRRMO", "cdrrmo@dlsl.edu.ph", "City Disaster Risk Reduction Office",
		(*int)(nil), (*string)(nil), (*string)(nil), now, now)

	mock.ExpectQuery(`SELECT .+ FROM office_profiles`).
		WithArgs(id).
		WillReturnRows(rows)

	profile, err := repo.GetOffice(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, "City Disaster Risk Reduction Office", profile.OfficeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStakeholder_NotFound(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM stakeholder_profiles`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "age", "community", "contact",
			"permanent_address", "current_address", "created_at", "updated_at",
		}))

	_, err := repo.GetStakeholder(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsProbes(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM stakeholder_profiles`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM office_profiles`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := repo.ExistsStakeholder(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.ExistsOffice(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOffice_NotFound(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	update := domain.ProfileUpdate{Name: "Renamed"}

	mock.ExpectExec(`UPDATE office_profiles`).
		WithArgs(id, update.Name, update.Age, update.Contact, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := repo.UpdateOffice(context.Background(), id, update)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOffice(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM office_profiles`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.DeleteOffice(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStakeholder_NoRow(t *testing.T) {
	mock, repo := newRepoTest(t)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM stakeholder_profiles`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteStakeholder(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOffices(t *testing.T) {
	mock, repo := newRepoTest(t)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{
		"id", "name", "email", "office_name", "age", "gender", "contact", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), "CDRRMO", "cdrrmo@dlsl.edu.ph", "Disaster Office",
			(*int)(nil), (*string)(nil), (*string)(nil), now, now).
		AddRow(uuid.New(), "CHO", "cho@dlsl.edu.ph", "Health Office",
			(*int)(nil), (*string)(nil), (*string)(nil), now, now)

	mock.ExpectQuery(`SELECT .+ FROM office_profiles`).WillReturnRows(rows)

	offices, err := repo.ListOffices(context.Background())
	require.NoError(t, err)
	assert.Len(t, offices, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStakeholders_QueryError(t *testing.T) {
	mock, repo := newRepoTest(t)

	mock.ExpectQuery(`SELECT .+ FROM stakeholder_profiles`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListStakeholders(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
