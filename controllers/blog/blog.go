package blogControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ishaan-Rai09/coffee-shop/models"
)

const pageSize = 6

type BlogPostInput struct {
	Title       string   `json:"title" binding:"required"`
	Excerpt     string   `json:"excerpt" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	AuthorRole  string   `json:"authorRole"`
	AuthorImage string   `json:"authorImage"`
	Image       string   `json:"image" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
	ReadTime    int      `json:"readTime"`
	Published   *bool    `json:"published"`
}

// GET /api/blog?pageNumber&category&keyword
func GetBlogPosts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.Query("pageNumber"))
		if err != nil || page < 1 {
			page = 1
		}

		query := db.Model(&models.BlogPost{}).Where("published = ?", true)
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if keyword := c.Query("keyword"); keyword != "" {
			likePattern := "%" + keyword + "%"
			query = query.Where(
				"title ILIKE ? OR excerpt ILIKE ? OR tags::text ILIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}

		var posts []models.BlogPost
		if err := query.
			Order("date DESC").
			Limit(pageSize).
			Offset(pageSize * (page - 1)).
			Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"posts": posts,
			"page":  page,
			"pages": int(math.Ceil(float64(count) / float64(pageSize))),
			"total": count,
		})
	}
}

// GET /api/blog/:slug
func GetBlogPostBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// GET /api/blog/categories
func GetBlogCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.BlogPost{}).
			Where("published = ?", true).
			Distinct().
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /api/blog (admin)
func CreateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input BlogPostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var author models.User
		if err := db.First(&author, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		slug := models.Slugify(input.Title)
		var existing models.BlogPost
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A post with this title already exists"})
			return
		}

		post := models.BlogPost{
			Title:       input.Title,
			Slug:        slug,
			Excerpt:     input.Excerpt,
			Content:     input.Content,
			AuthorID:    author.ID,
			AuthorName:  author.Name,
			AuthorRole:  input.AuthorRole,
			AuthorImage: input.AuthorImage,
			Image:       input.Image,
			Category:    input.Category,
			Tags:        input.Tags,
			ReadTime:    input.ReadTime,
			Published:   input.Published == nil || *input.Published,
		}
		if post.ReadTime == 0 {
			post.ReadTime = 5
		}

		if err := db.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// PUT /api/blog/:id (admin)
func UpdateBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.BlogPost
		if err := db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}

		var input BlogPostInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		// Title change re-derives the slug
		if input.Title != post.Title {
			post.Slug = models.Slugify(input.Title)
		}
		post.Title = input.Title
		post.Excerpt = input.Excerpt
		post.Content = input.Content
		post.Image = input.Image
		post.Category = input.Category
		post.Tags = input.Tags
		if input.AuthorRole != "" {
			post.AuthorRole = input.AuthorRole
		}
		if input.AuthorImage != "" {
			post.AuthorImage = input.AuthorImage
		}
		if input.ReadTime > 0 {
			post.ReadTime = input.ReadTime
		}
		if input.Published != nil {
			post.Published = *input.Published
		}

		if err := db.Save(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// DELETE /api/blog/:id (admin)
func DeleteBlogPost(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.BlogPost{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog post removed"})
	}
}
