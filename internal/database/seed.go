package database

import (
	"encoding/json"
	"fmt"
	"os"

	"streaming-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedPlatform is one entry of the external platform seed file.
type SeedPlatform struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
	Color   *string `json:"color"`
}

// SeedStreamingPlatforms loads the platform seed list from path and inserts
// every platform that does not already exist by name. The seed list lives in
// configuration, not code; a missing file is not an error.
func SeedStreamingPlatforms(db *gorm.DB, path string, log *logrus.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Warn("Seed file not found, skipping platform seeding")
			return nil
		}
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seeds []SeedPlatform
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	var created int
	for _, seed := range seeds {
		if seed.Name == "" {
			continue
		}

		var count int64
		if err := db.Model(&models.StreamingPlatform{}).Where("name = ?", seed.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check platform %q: %w", seed.Name, err)
		}
		if count > 0 {
			continue
		}

		platform := models.StreamingPlatform{
			Name:    seed.Name,
			LogoURL: seed.LogoURL,
			Color:   seed.Color,
			Active:  true,
		}
		if err := db.Create(&platform).Error; err != nil {
			return fmt.Errorf("failed to seed platform %q: %w", seed.Name, err)
		}
		created++
	}

	log.WithFields(logrus.Fields{
		"seeded": created,
		"total":  len(seeds),
	}).Info("Streaming platform seeding completed")

	return nil
}
