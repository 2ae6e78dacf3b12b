package db

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/telconl/catalog-api/internal/auth"
	"github.com/telconl/catalog-api/internal/models"
)

// SeedDemoData loads the demo catalog: four customers, seven plans, their
// subscriptions and logins. It is idempotent and skips tables that already
// hold rows.
func SeedDemoData(db *gorm.DB) error {
	hasher := auth.NewPasswordHasher()

	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)

	customers := []models.Customer{
		{Name: "Manish Helderman", Address: "Nieuweweg 128, 3281 AM Numansdorp", PhoneNumber: "0646383282", BirthDate: date(1946, 2, 10)},
		{Name: "Aart Lens", Address: "Ambachtspad 109, 3945 BG Cohen", PhoneNumber: "0671220908", BirthDate: date(2005, 12, 13)},
		{Name: "Theun Mensen", Address: "Kasteeldrift 83, 3436 TN Nieuwegein", PhoneNumber: "0630718383", BirthDate: date(2006, 3, 28)},
		{Name: "Dakota Hussein", Address: "Deventerweg 197, 7213 EH Gorssel", PhoneNumber: "0626249375", BirthDate: date(1956, 3, 25)},
	}

	if customerCount == 0 {
		if err := db.Create(&customers).Error; err != nil {
			return err
		}
		log.Println("customers seeded")
	} else {
		log.Println("customers already seeded")
		if err := db.Order("id ASC").Find(&customers).Error; err != nil {
			return err
		}
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)

	products := []models.Product{
		{Name: "Bundel 15GB", Description: "Sim Only phone plan 15 GB", Category: "Mobile phone plan", Price: 21},
		{Name: "Bundel 8GB", Description: "Sim Only phone plan 8 GB", Category: "Mobile phone plan", Price: 18.50},
		{Name: "Bundel 0GB", Description: "Sim Only phone plan 0 GB", Category: "Mobile phone plan", Price: 15},
		{Name: "KPN TV+ Streaming", Description: "TV plan for online services", Category: "TV plan", Price: 3.50},
		{Name: "KPN TV+ TV", Description: "TV plan for TV broadcasts", Category: "TV plan", Price: 12.50},
		{Name: "Snel 100Mbit/s", Description: "Internet plan with 100 Mbit/s", Category: "Internet plan", Price: 42.50},
		{Name: "Superfiber 4", Description: "Internet plan with 4 Gbit/s", Category: "Internet plan", Price: 37.50},
	}

	if productCount == 0 {
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Println("products seeded")
	} else {
		log.Println("products already seeded")
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			return err
		}
	}

	var linkCount int64
	db.Model(&models.CustomerProduct{}).Count(&linkCount)

	if linkCount == 0 {
		links := []models.CustomerProduct{
			{CustomerID: customers[0].ID, ProductID: products[0].ID, Quantity: 2},
			{CustomerID: customers[0].ID, ProductID: products[3].ID, Quantity: 1},
			{CustomerID: customers[0].ID, ProductID: products[5].ID, Quantity: 1},
			{CustomerID: customers[1].ID, ProductID: products[0].ID, Quantity: 1},
			{CustomerID: customers[1].ID, ProductID: products[2].ID, Quantity: 1},
			{CustomerID: customers[1].ID, ProductID: products[4].ID, Quantity: 1},
			{CustomerID: customers[1].ID, ProductID: products[6].ID, Quantity: 1},
			{CustomerID: customers[2].ID, ProductID: products[1].ID, Quantity: 1},
			{CustomerID: customers[2].ID, ProductID: products[4].ID, Quantity: 1},
			{CustomerID: customers[2].ID, ProductID: products[5].ID, Quantity: 1},
			{CustomerID: customers[3].ID, ProductID: products[2].ID, Quantity: 1},
			{CustomerID: customers[3].ID, ProductID: products[6].ID, Quantity: 1},
		}
		if err := db.Create(&links).Error; err != nil {
			return err
		}
		log.Println("subscriptions seeded")
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount == 0 {
		users := []models.User{
			{Username: "0646383282", CustomerID: &customers[0].ID},
			{Username: "0671220908", CustomerID: &customers[1].ID},
			{Username: "0630718383", CustomerID: &customers[2].ID},
			{Username: "admin"},
		}
		passwords := []string{"password123", "123password", "qwerty123", "admin"}

		for i := range users {
			hashed, err := hasher.Hash(passwords[i])
			if err != nil {
				return err
			}
			users[i].HashedPassword = hashed
		}

		if err := db.Create(&users).Error; err != nil {
			return err
		}
		log.Println("users seeded")
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
