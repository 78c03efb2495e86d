package client

import "time"

// About mirrors the about section of the wire format.
type About struct {
	ID          uint      `json:"id,omitempty"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// WorkItem mirrors one work history entry.
type WorkItem struct {
	ID           uint      `json:"id,omitempty"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Skills       string    `json:"skills"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// Publication mirrors one publication entry.
type Publication struct {
	ID           uint      `json:"id,omitempty"`
	Title        string    `json:"title"`
	Publisher    string    `json:"publisher"`
	Year         int       `json:"year"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// Contact mirrors the contact section.
type Contact struct {
	ID        uint      `json:"id,omitempty"`
	Email     string    `json:"email"`
	GitHub    string    `json:"github"`
	LinkedIn  string    `json:"linkedin"`
	Instagram string    `json:"instagram"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// User identifies the authenticated admin.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Snapshot is the /portfolio/all response shape every client consumes.
type Snapshot struct {
	About        About         `json:"about"`
	Work         []WorkItem    `json:"work"`
	Publications []Publication `json:"publications"`
	Contact      Contact       `json:"contact"`
}
