package main

import (
	"path/filepath"
	"strings"

	"greenroots_backend/internal/config"
	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/models"
	"greenroots_backend/internal/repositories"
	"greenroots_backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// seedImagesDir holds optional real photos shipped with the seed tool. When a
// photo named after an item's alt text exists there, it replaces the
// placeholder src.
const seedImagesDir = "./seed/images"

// galleryData is the initial gallery shown on the public site before real
// event photos are uploaded.
var galleryData = []models.GalleryItem{
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Award+Ceremony",
		Alt:     "Award ceremony",
		Caption: "Recognition ceremony for schools that have planted the most trees this year",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=School+Visit",
		Alt:     "School visit",
		Caption: "Our team visiting Eldoret National Polytechnic to discuss future collaborations",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Community+Engagement",
		Alt:     "Community engagement session",
		Caption: "Community engagement session on the importance of forest conservation",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Seedling+Distribution",
		Alt:     "Seedling distribution",
		Caption: "Distribution of tree seedlings to local schools for their planting programs",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Environmental+Workshop",
		Alt:     "Environmental workshop",
		Caption: "Environmental education workshop for teachers and community leaders",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Tree+Planting+Event+1",
		Alt:     "Large tree planting event",
		Caption: "Our annual tree planting event with over 500 participants from local schools",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Eco+Club+Meeting",
		Alt:     "Eco-club meeting at school",
		Caption: "An eco-club meeting at ACK Ziwa High School, discussing upcoming projects",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Students+Planting+2",
		Alt:     "Students planting trees in rural area",
		Caption: "Students from Kapkong High School participating in rural reforestation",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Tree+Nursery+1",
		Alt:     "Tree nursery managed by women",
		Caption: "Women tending to our tree nursery, growing seedlings for future planting events",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Environmental+Education+1",
		Alt:     "Environmental education session",
		Caption: "Our team conducting an environmental education session at Moi Girls High School",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Community+Project+1",
		Alt:     "Community members participating in tree planting",
		Caption: "Local community members joining our reforestation efforts",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Students+Planting+1",
		Alt:     "Students planting trees at local school",
		Caption: "Students from St. Joseph Girls planting trees during our annual event",
	},
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := db.AutoMigrate(&models.GalleryItem{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	galleryRepo := repositories.NewGalleryRepository()

	if err := galleryRepo.DeleteAll(db); err != nil {
		logger.Fatal("Failed to clear existing gallery items", "error", err)
	}
	logger.Info("Cleared existing gallery items")

	for i := range galleryData {
		item := &galleryData[i]

		fileName := seedFileName(item.Alt)
		candidate := filepath.Join(seedImagesDir, fileName)
		if src := utils.CopyImageToUploads(cfg.Storage.BasePath, candidate, fileName); src != candidate {
			item.Src = src
		}

		if err := galleryRepo.Create(db, item); err != nil {
			logger.Fatal("Failed to insert gallery item", "error", err, "alt", item.Alt)
		}
	}

	logger.Info("Gallery seeded", "count", len(galleryData))
}

func seedFileName(alt string) string {
	slug := strings.ToLower(alt)
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug + ".jpg"
}
