package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Rohit220707/FitTrack-pro/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDB opens an isolated in-memory database with the full schema. Each test
// gets its own named shared-cache DB so gorm's connection pool always sees
// the same data.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.StepsLog{},
		&models.WaterLog{},
		&models.WeightLog{},
		&models.NutritionLog{},
		&models.Workout{},
		&models.Exercise{},
	))

	return db
}
