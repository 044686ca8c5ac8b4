package db

import (
	"papershop/internal/domain/model"

	"gorm.io/gorm"
)

// SeedPapers はカタログが空のときだけ初期データを入れる。
func SeedPapers(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Paper{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	papers := []model.Paper{
		{Code: "0580", Subject: "Mathematics", Board: "Cambridge", Level: "IGCSE", Kind: "Past Paper", YearRange: "2019-2023", Component: "Paper 2 (Extended)", Price: 390, IsActive: true},
		{Code: "0580-MS", Subject: "Mathematics", Board: "Cambridge", Level: "IGCSE", Kind: "Mark Scheme", YearRange: "2019-2023", Component: "Paper 2 (Extended)", Price: 160, IsActive: true},
		{Code: "0625", Subject: "Physics", Board: "Cambridge", Level: "IGCSE", Kind: "Past Paper", YearRange: "2019-2023", Component: "Paper 4 (Theory)", Price: 390, IsActive: true},
		{Code: "0620", Subject: "Chemistry", Board: "Cambridge", Level: "IGCSE", Kind: "Past Paper", YearRange: "2019-2023", Component: "Paper 4 (Theory)", Price: 390, IsActive: true},
		{Code: "0610", Subject: "Biology", Board: "Cambridge", Level: "IGCSE", Kind: "Past Paper", YearRange: "2019-2023", Component: "Paper 4 (Theory)", Price: 390, IsActive: true},
		{Code: "9709", Subject: "Mathematics", Board: "Cambridge", Level: "A Level", Kind: "Past Paper", YearRange: "2020-2024", Component: "Paper 1 (Pure 1)", Price: 450, IsActive: true},
		{Code: "9702", Subject: "Physics", Board: "Cambridge", Level: "A Level", Kind: "Past Paper", YearRange: "2020-2024", Component: "Paper 2 (AS Structured)", Price: 450, IsActive: true},
		{Code: "WPH11", Subject: "Physics", Board: "Edexcel", Level: "IAL", Kind: "Past Paper", YearRange: "2019-2024", Component: "Unit 1", Price: 420, IsActive: true},
		{Code: "WMA11", Subject: "Mathematics", Board: "Edexcel", Level: "IAL", Kind: "Past Paper", YearRange: "2019-2024", Component: "Pure 1", Price: 420, IsActive: true},
	}

	return gormDB.Create(&papers).Error
}
