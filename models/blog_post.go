package models

import (
	"regexp"
	"strings"
	"time"
)

type BlogPost struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Excerpt     string    `gorm:"not null" json:"excerpt"`
	Content     string    `gorm:"not null" json:"content"`
	AuthorID    uint      `gorm:"not null" json:"author"`
	AuthorName  string    `gorm:"not null" json:"authorName"`
	AuthorRole  string    `gorm:"default:'Writer'" json:"authorRole"`
	AuthorImage string    `gorm:"default:'/images/blog/authors/default.jpg'" json:"authorImage"`
	Date        time.Time `json:"date"`
	Image       string    `gorm:"not null" json:"image"`
	Category    string    `gorm:"index;not null" json:"category"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	ReadTime    int       `gorm:"default:5" json:"readTime"`
	Published   bool      `gorm:"default:true" json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var nonWord = regexp.MustCompile(`[^\w ]+`)

// Slugify derives a URL slug from a post title: lowercase, strip
// punctuation, spaces to dashes.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonWord.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), "-")
}
