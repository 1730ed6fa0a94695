package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suteetoe/jobboard/internal/model"
	"github.com/suteetoe/jobboard/pkg/config"
	"github.com/suteetoe/jobboard/pkg/database"
	"github.com/suteetoe/jobboard/pkg/database/databasetest"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	d, err := database.Dialector(&config.DBConfig{Driver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = database.Dialector(&config.DBConfig{Driver: config.DriverMySQL})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = database.Dialector(&config.DBConfig{Driver: "mssql"})
	assert.Error(t, err)
}

func TestMigrateCreatesTables(t *testing.T) {
	db := databasetest.New(t)

	for _, table := range []string{"users", "profiles", "work_experience", "education", "job_postings", "applications", "feedback"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	require.NoError(t, database.Ping(context.Background(), db))
}

func TestUniqueIndexesTranslateToDuplicatedKey(t *testing.T) {
	db := databasetest.New(t)

	require.NoError(t, db.Create(&model.User{Name: "A", Email: "a@example.com", Password: "x", Role: model.RoleUser}).Error)
	err := db.Create(&model.User{Name: "B", Email: "a@example.com", Password: "y", Role: model.RoleUser}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	app := model.Application{JobID: 1, UserID: 1, Status: model.ApplicationStatusApplied, AppliedDate: time.Now()}
	require.NoError(t, db.Create(&app).Error)
	dup := model.Application{JobID: 1, UserID: 1, Status: model.ApplicationStatusApplied, AppliedDate: time.Now()}
	assert.ErrorIs(t, db.Create(&dup).Error, gorm.ErrDuplicatedKey)
}

func TestStringListRoundTrip(t *testing.T) {
	db := databasetest.New(t)

	job := model.JobPosting{
		Title: "Nurse", Company: "Metro", Location: "Chicago, IL", Department: "Nursing",
		Type: model.JobTypeFullTime, Description: "d", Posted: time.Now(), Status: model.JobStatusActive,
		Requirements: model.StringList{"A", "B"},
	}
	require.NoError(t, db.Create(&job).Error)

	var got model.JobPosting
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, model.StringList{"A", "B"}, got.Requirements)
	assert.Equal(t, model.StringList{}, got.Responsibilities)
}
