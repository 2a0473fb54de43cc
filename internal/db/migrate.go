package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solvelysaid/orderdesk/internal/models"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Menu{},
		&models.Order{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// defaultCatalog is the starter menu seeded into an empty database. Prices
// are in THB. Images are uploaded separately through /menu/add.
var defaultCatalog = []models.Menu{
	{Name: "ต้มยำ", Price: 99, Description: "ต้มยำรสแซ่บ"},
	{Name: "ข้าวผัด", Price: 55, Description: "ข้าวผัดไข่หอมๆ"},
	{Name: "ผัดกะเพรา", Price: 60, Description: "กะเพราไก่ไข่ดาว"},
	{Name: "ผัดไทย", Price: 70, Description: "ผัดไทยเส้นนุ่ม"},
	{Name: "พิซซ่า", Price: 129, Description: "พิซซ่าชีสเยิ้ม"},
	{Name: "Pizza", Price: 129, Description: "Pizza cheese"},
	{Name: "Burger", Price: 89, Description: "เบอร์เกอร์เนื้อฉ่ำ"},
	{Name: "Steak", Price: 149, Description: "สเต๊กหมูซอสพริกไทยดำ"},
	{Name: "Fried Chicken", Price: 99, Description: "ไก่ทอดซอสเผ็ด"},
	{Name: "Spaghetti", Price: 79, Description: "สปาเกตตี้ซอสมะเขือเทศ"},
}

// SeedMenus upserts the starter catalog. Existing rows keep their images;
// only price and description are refreshed.
func SeedMenus(db *gorm.DB) error {
	for _, m := range defaultCatalog {
		menu := m
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "description"}),
		}).Create(&menu)
		if result.Error != nil {
			return fmt.Errorf("db: seed menu %q: %w", m.Name, result.Error)
		}
	}
	return nil
}
