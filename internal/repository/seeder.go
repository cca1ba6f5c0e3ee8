package repository

import (
	"errors"
	"log"
	"os"

	"github.com/plasmadinah/cms-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the admin account and the default hero/service rows when the
// tables are still empty. Safe to run on every boot.
func Seed(userRepo UserRepositoryInterface, heroRepo HeroRepositoryInterface, serviceRepo ServiceRepositoryInterface) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	if _, err := userRepo.FindByUsername(username); errors.Is(err, gorm.ErrRecordNotFound) {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "plasmadinah2025"
			log.Println("WARNING: ADMIN_PASSWORD not set, using default seed password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := userRepo.Create(&models.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         "admin",
		}); err != nil {
			return err
		}
		log.Printf("Seeded admin user %q", username)
	} else if err != nil {
		return err
	}

	if count, err := heroRepo.Count(); err != nil {
		return err
	} else if count == 0 {
		if err := heroRepo.CreateBatch([]models.Hero{
			{Title: "INDONESIAN\nWHOLESALE", Subtitle: "ESSENTIAL OILS MANUFACTURER", Image: "hero1.jpg", Order: 1},
			{Title: "PRIVATE\nLABELLING", Subtitle: "OEM & ODM", Image: "hero2.jpg", Order: 2},
			{Title: "BUSINESS\nWITH", Subtitle: "IMPACT", Image: "hero3.jpg", Order: 3},
		}); err != nil {
			return err
		}
		log.Println("Seeded default hero banners")
	}

	if count, err := serviceRepo.Count(); err != nil {
		return err
	} else if count == 0 {
		if err := serviceRepo.CreateBatch([]models.Service{
			{Title: "Aroma Ingredients", Description: "To create or amplify specific aromas, enhance taste and bring function.", Image: "srv1.jpg"},
			{Title: "Food, Beverages, Taste", Description: "Snack seasoning, powdered, liquid beverages, dessert premixes.", Image: "srv2.jpg"},
			{Title: "Cosmetics & Perfumes", Description: "For fragrance, body mist, extrait de parfum, eu de parfum, cologne.", Image: "srv3.jpg"},
			{Title: "Health and Nutrition", Description: "To reduce stress and anxiety, to increase energy, provide relaxing effect.", Image: "srv4.jpg"},
			{Title: "Pharmaceutical Industries", Description: "Used as anti-pain medication, infection and bacteria killer.", Image: "srv5.jpg"},
			{Title: "Tobacco and Vape", Description: "For kretek, white, klobot and vape cigarettes.", Image: "srv6.jpg"},
		}); err != nil {
			return err
		}
		log.Println("Seeded default service listings")
	}

	return nil
}
