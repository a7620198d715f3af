package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ishaan-Rai09/coffee-shop/models"
)

// Seed inserts the demo catalog, users, and a starter blog post. It is
// idempotent: existing rows (matched by email/name/slug) are left alone.
func Seed(db *gorm.DB) {
	admin := seedUser(db, "Admin User", "admin@example.com", "password123", true)
	seedUser(db, "Test User", "user@example.com", "password123", false)

	products := []models.Product{
		{Name: "Classic Espresso", Price: 3.50, Category: "coffee", CountInStock: 100,
			Description: "Rich, aromatic espresso with a thick golden crema layer.",
			Image:       "/images/products/espresso.jpg"},
		{Name: "Vanilla Latte", Price: 4.75, Category: "coffee", CountInStock: 85,
			Description: "Smooth espresso with steamed milk and vanilla syrup.",
			Image:       "/images/products/vanilla-latte.jpg"},
		{Name: "Caramel Macchiato", Price: 5.25, Category: "coffee", CountInStock: 70,
			Description: "Sweet and creamy with vanilla syrup and caramel drizzle.",
			Image:       "/images/products/caramel-macchiato.jpg"},
		{Name: "Cold Brew", Price: 4.50, Category: "coffee", CountInStock: 60,
			Description: "Slow-steeped for 18 hours, served over ice.",
			Image:       "/images/products/cold-brew.jpg"},
		{Name: "Jasmine Green Tea", Price: 3.75, Category: "tea", CountInStock: 90,
			Description: "Delicate green tea scented with jasmine blossoms.",
			Image:       "/images/products/jasmine-green.jpg"},
		{Name: "Chai Tea Latte", Price: 4.50, Category: "tea", CountInStock: 75,
			Description: "Spiced black tea with steamed milk.",
			Image:       "/images/products/chai-latte.jpg"},
		{Name: "Earl Grey", Price: 3.50, Category: "tea", CountInStock: 95,
			Description: "Classic bergamot-infused black tea.",
			Image:       "/images/products/earl-grey.jpg"},
		{Name: "Matcha Latte", Price: 5.25, Category: "tea", CountInStock: 65,
			Description: "Stone-ground ceremonial matcha with steamed milk.",
			Image:       "/images/products/matcha-latte.jpg"},
		{Name: "Almond Croissant", Price: 4.25, Category: "pastries", CountInStock: 40,
			Description: "Buttery croissant filled with almond cream.",
			Image:       "/images/products/almond-croissant.jpg"},
		{Name: "Chocolate Chip Cookie", Price: 2.75, Category: "pastries", CountInStock: 50,
			Description: "Baked fresh daily with dark chocolate chunks.",
			Image:       "/images/products/choc-chip-cookie.jpg"},
		{Name: "Blueberry Muffin", Price: 3.50, Category: "pastries", CountInStock: 35,
			Description: "Bursting with wild blueberries.",
			Image:       "/images/products/blueberry-muffin.jpg"},
		{Name: "Cinnamon Roll", Price: 4.50, Category: "pastries", CountInStock: 30,
			Description: "Warm roll with cream cheese frosting.",
			Image:       "/images/products/cinnamon-roll.jpg"},
		{Name: "Avocado Toast", Price: 8.95, Category: "lunch", CountInStock: 25,
			Description: "Sourdough topped with smashed avocado and chili flakes.",
			Image:       "/images/products/avocado-toast.jpg"},
		{Name: "Chicken Pesto Sandwich", Price: 10.50, Category: "lunch", CountInStock: 20,
			Description: "Grilled chicken, basil pesto, and mozzarella on ciabatta.",
			Image:       "/images/products/chicken-pesto.jpg"},
		{Name: "Mediterranean Salad", Price: 9.75, Category: "lunch", CountInStock: 30,
			Description: "Mixed greens, feta, olives, and lemon vinaigrette.",
			Image:       "/images/products/med-salad.jpg"},
	}
	for _, p := range products {
		var existing models.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&p).Error; err != nil {
				log.Printf("❌ Failed to seed product %s: %v", p.Name, err)
			}
		}
	}

	if admin != nil {
		post := models.BlogPost{
			Title:      "The Art of the Perfect Pour Over",
			Slug:       models.Slugify("The Art of the Perfect Pour Over"),
			Excerpt:    "Why water temperature and bloom time matter more than you think.",
			Content:    "A slow, even pour is the difference between a bright cup and a bitter one...",
			AuthorID:   admin.ID,
			AuthorName: admin.Name,
			AuthorRole: "Head Barista",
			Date:       time.Now(),
			Image:      "/images/blog/pour-over.jpg",
			Category:   "brewing",
			Tags:       []string{"pour over", "brewing", "technique"},
			ReadTime:   4,
			Published:  true,
		}
		var existing models.BlogPost
		if err := db.Where("slug = ?", post.Slug).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&post).Error; err != nil {
				log.Printf("❌ Failed to seed blog post: %v", err)
			}
		}
	}

	log.Println("✅ Database seeded")
}

func seedUser(db *gorm.DB, name, email, password string, isAdmin bool) *models.User {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("❌ Failed to look up user %s: %v", email, err)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash password for %s: %v", email, err)
		return nil
	}
	user = models.User{Name: name, Email: email, Password: string(hashed), IsAdmin: isAdmin}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("❌ Failed to seed user %s: %v", email, err)
		return nil
	}
	return &user
}
