package models

// User is a participant profile shown in the browse view.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" validate:"required,max=100"`
	Title      string   `json:"title" validate:"max=100"`
	Location   string   `json:"location" validate:"max=100"`
	Bio        string   `json:"bio" validate:"max=2000"`
	Avatar     string   `json:"avatar" validate:"omitempty,max=500"`
	Skills     []string `json:"skills" validate:"dive,required"`
	Hackathons []string `json:"hackathons" validate:"dive,required"`
}

// UserFilter narrows the user list. Zero-valued fields match everyone.
type UserFilter struct {
	Search     string   `json:"search"`
	Skills     []string `json:"skills"`
	Locations  []string `json:"locations"`
	Hackathons []string `json:"hackathons"`
}

// Catalog lists the tag vocabularies offered when filtering or editing a profile.
type Catalog struct {
	Skills     []string `json:"skills"`
	Locations  []string `json:"locations"`
	Hackathons []string `json:"hackathons"`
}
