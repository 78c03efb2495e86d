package database

import "time"

// User holds the admin credential. Created once by provisioning; never mutated
// through the API.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName keeps the original table name.
func (User) TableName() string { return "users" }

// About is a singleton-like record: reads take the latest row, writes upsert it.
type About struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Subtitle    string    `gorm:"size:255" json:"subtitle"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (About) TableName() string { return "about" }

// WorkExperience is one entry in the work history list. Skills is free text,
// comma separated. DisplayOrder allows manual reordering independent of
// creation time.
type WorkExperience struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Company      string    `gorm:"size:255;not null" json:"company"`
	Period       string    `gorm:"size:128" json:"period"`
	Description  string    `gorm:"not null" json:"description"`
	Skills       string    `json:"skills"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (WorkExperience) TableName() string { return "work_experience" }

// Publication is one published paper, chapter or article.
type Publication struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"size:512;not null" json:"title"`
	Publisher    string    `gorm:"size:255" json:"publisher"`
	Year         int       `json:"year"`
	Description  string    `json:"description"`
	URL          string    `gorm:"size:512" json:"url"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Publication) TableName() string { return "publications" }

// Contact is the singleton-like record of contact links.
type Contact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"size:255" json:"email"`
	GitHub    string    `gorm:"column:github;size:512" json:"github"`
	LinkedIn  string    `gorm:"column:linkedin;size:512" json:"linkedin"`
	Instagram string    `gorm:"size:512" json:"instagram"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contact) TableName() string { return "contact" }
