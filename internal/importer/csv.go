package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ImportSeedData loads the two reference tables from delimited text files
// in dir: ingredients.csv (name,measurement_unit) and tags.csv
// (name,color,slug). Rows are inserted as-is; reruns on seeded tables
// will fail on the tag slug unique index.
func ImportSeedData(database *gorm.DB, dir string) error {
	if err := importFile(database, filepath.Join(dir, "ingredients.csv"), importIngredientRow); err != nil {
		return err
	}

	return importFile(database, filepath.Join(dir, "tags.csv"), importTagRow)
}

func importFile(database *gorm.DB, path string, importRow func(*gorm.DB, []string) error) error {
	file, err := os.Open(path)

	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows := 0

	for {
		record, err := reader.Read()

		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if err := importRow(database, record); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		rows++
	}

	logrus.Infof("%s: imported %d rows", filepath.Base(path), rows)

	return nil
}

func importIngredientRow(database *gorm.DB, record []string) error {
	if len(record) < 2 {
		return fmt.Errorf("expected name,measurement_unit, got %d fields", len(record))
	}

	return database.Create(&models.Ingredient{
		Name:            record[0],
		MeasurementUnit: record[1],
	}).Error
}

func importTagRow(database *gorm.DB, record []string) error {
	if len(record) < 3 {
		return fmt.Errorf("expected name,color,slug, got %d fields", len(record))
	}

	return database.Create(&models.Tag{
		Name:  record[0],
		Color: record[1],
		Slug:  record[2],
	}).Error
}
