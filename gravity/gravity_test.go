package gravity

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pihole2adguard/teleporter-importer/types"
)

func seedGravityDB(t *testing.T, adlists []adlistRow, domains []domainlistRow) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gravity.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.AutoMigrate(&adlistRow{}, &domainlistRow{}))

	for _, row := range adlists {
		require.NoError(t, db.Create(&row).Error)
	}
	for _, row := range domains {
		require.NoError(t, db.Create(&row).Error)
	}

	return dbPath
}

func strPtr(s string) *string { return &s }

func TestGravityClient_Read(t *testing.T) {
	dbPath := seedGravityDB(t,
		[]adlistRow{
			{ID: 1, Address: "https://lists.example.com/hosts.txt", Enabled: true, Comment: strPtr("main list")},
			{ID: 2, Address: "https://lists.example.com/extra.txt", Enabled: true, Comment: nil},
			{ID: 3, Address: "https://lists.example.com/off.txt", Enabled: false, Comment: strPtr("disabled")},
		},
		[]domainlistRow{
			{ID: 1, Type: types.DomainTypeRegexBlacklist, Domain: "ads.example.com", Enabled: true, Comment: strPtr("tracker")},
			{ID: 2, Type: types.DomainTypeRegexAllow, Domain: "good.example.com", Enabled: true},
			{ID: 3, Type: types.DomainTypeExactBlacklist, Domain: "off.example.com", Enabled: false},
		},
	)

	gravityClient := NewGravityClient(logrus.New())
	data, err := gravityClient.Read(dbPath)

	require.NoError(t, err)
	require.Len(t, data.Adlists, 2)
	assert.Equal(t, "https://lists.example.com/hosts.txt", data.Adlists[0].Address)
	assert.Equal(t, "main list", data.Adlists[0].Comment)
	assert.Equal(t, "No description", data.Adlists[1].Comment)

	require.Len(t, data.DomainRules, 2)
	assert.Equal(t, types.DomainTypeRegexBlacklist, data.DomainRules[0].TypeCode)
	assert.Equal(t, "ads.example.com", data.DomainRules[0].Domain)
	assert.Equal(t, "good.example.com", data.DomainRules[1].Domain)
}

func TestGravityClient_Read_EmptyTables(t *testing.T) {
	dbPath := seedGravityDB(t, nil, nil)

	gravityClient := NewGravityClient(logrus.New())
	data, err := gravityClient.Read(dbPath)

	require.NoError(t, err)
	assert.Empty(t, data.Adlists)
	assert.Empty(t, data.DomainRules)
}

func TestGravityClient_Read_MissingDatabase(t *testing.T) {
	gravityClient := NewGravityClient(logrus.New())
	data, err := gravityClient.Read(filepath.Join(t.TempDir(), "not-extracted", "gravity.db"))

	assert.Error(t, err)
	assert.Nil(t, data)
}
