package gravity

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pihole2adguard/teleporter-importer/types"
)

type IGravityClient interface {
	Read(dbPath string) (*GravityData, error)
}

type GravityClient struct {
	Logger *logrus.Logger
}

// GravityData holds everything the migrator needs out of a gravity.db.
type GravityData struct {
	Adlists     []types.Adlist
	DomainRules []types.DomainRule
}

func NewGravityClient(logger *logrus.Logger) *GravityClient {
	return &GravityClient{
		Logger: logger,
	}
}

type adlistRow struct {
	ID      int64   `gorm:"column:id"`
	Address string  `gorm:"column:address"`
	Enabled bool    `gorm:"column:enabled"`
	Comment *string `gorm:"column:comment"`
}

func (adlistRow) TableName() string { return "adlist" }

type domainlistRow struct {
	ID      int64   `gorm:"column:id"`
	Type    int     `gorm:"column:type"`
	Domain  string  `gorm:"column:domain"`
	Enabled bool    `gorm:"column:enabled"`
	Comment *string `gorm:"column:comment"`
}

func (domainlistRow) TableName() string { return "domainlist" }

const defaultAdlistComment = "No description"

func (gravityClient *GravityClient) Read(dbPath string) (*GravityData, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening gravity database %s", dbPath)
	}

	adlistRows := []adlistRow{}
	if err := db.Where("enabled = ?", true).Order("id").Find(&adlistRows).Error; err != nil {
		return nil, errors.Wrap(err, "reading adlist table")
	}

	domainRows := []domainlistRow{}
	if err := db.Where("enabled = ?", true).Order("id").Find(&domainRows).Error; err != nil {
		return nil, errors.Wrap(err, "reading domainlist table")
	}

	data := &GravityData{}
	for _, row := range adlistRows {
		comment := defaultAdlistComment
		if row.Comment != nil && *row.Comment != "" {
			comment = *row.Comment
		}
		data.Adlists = append(data.Adlists, types.Adlist{
			Address: row.Address,
			Comment: comment,
		})
	}

	for _, row := range domainRows {
		comment := ""
		if row.Comment != nil {
			comment = *row.Comment
		}
		data.DomainRules = append(data.DomainRules, types.DomainRule{
			TypeCode: row.Type,
			Domain:   row.Domain,
			Comment:  comment,
		})
	}

	gravityClient.Logger.Infof("Read %d adlists and %d domain rules from gravity database", len(data.Adlists), len(data.DomainRules))
	return data, nil
}
