package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"DentalDesk/domain"
	"DentalDesk/models"
	"DentalDesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitDBSeedsFreshStore(t *testing.T) {
	db, err := InitDB(context.Background(), "file::memory:?_pragma=foreign_keys(1)", utils.HashPassword)
	require.NoError(t, err)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(len(models.DefaultSeedUsers)), userCount)

	var treatmentCount int64
	require.NoError(t, db.Model(&models.Treatment{}).Count(&treatmentCount).Error)
	assert.Equal(t, int64(len(models.DefaultTreatments)), treatmentCount)

	var dentist models.User
	require.NoError(t, db.Where("username = ?", "dentist").First(&dentist).Error)
	assert.Equal(t, "dentist", dentist.Role)
	assert.True(t, dentist.IsActive)
	assert.True(t, utils.CheckPassword(dentist.PasswordHash, "dentist123"))
}

func TestInitDBIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.db")
	ctx := context.Background()

	db, err := InitDB(ctx, path, utils.HashPassword)
	require.NoError(t, err)

	patient := models.Patient{FirstName: "Jane", LastName: "Doe", IsActive: true}
	require.NoError(t, db.Create(&patient).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// A second initialisation against the same file must neither error nor
	// duplicate seeded rows, and existing data survives.
	db, err = InitDB(ctx, path, utils.HashPassword)
	require.NoError(t, err)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(len(models.DefaultSeedUsers)), userCount)

	var treatmentCount int64
	require.NoError(t, db.Model(&models.Treatment{}).Count(&treatmentCount).Error)
	assert.Equal(t, int64(len(models.DefaultTreatments)), treatmentCount)

	var survivor models.Patient
	require.NoError(t, db.First(&survivor, patient.ID).Error)
	assert.Equal(t, "Jane", survivor.FirstName)
	assert.Equal(t, "Doe", survivor.LastName)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, TranslateError(nil))
	assert.ErrorIs(t, TranslateError(gorm.ErrRecordNotFound), domain.ErrNotFound)

	var cv *domain.ConstraintViolationError

	err := TranslateError(errors.New("UNIQUE constraint failed: users.username"))
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, domain.ConstraintUnique, cv.Kind)
	assert.Equal(t, "users.username", cv.Column)
	assert.True(t, domain.IsDuplicate(err, "username"))

	err = TranslateError(errors.New("FOREIGN KEY constraint failed"))
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, domain.ConstraintForeignKey, cv.Kind)

	err = TranslateError(errors.New("CHECK constraint failed: chk_appointments_status"))
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, domain.ConstraintCheck, cv.Kind)

	assert.ErrorIs(t, TranslateError(errors.New("database is locked (5) (SQLITE_BUSY)")), domain.ErrStorageUnavailable)
	assert.ErrorIs(t, TranslateError(errors.New("unable to open database file")), domain.ErrStorageUnavailable)

	passthrough := errors.New("some other failure")
	assert.Equal(t, passthrough, TranslateError(passthrough))
}
