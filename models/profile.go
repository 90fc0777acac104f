// File: helperhub/models/profile.go
package models

import "time"

type UserType string

const (
	UserTypeEmployer  UserType = "employer"
	UserTypeJobSeeker UserType = "jobSeeker"
)

func (t UserType) Valid() bool {
	return t == UserTypeEmployer || t == UserTypeJobSeeker
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}

// CategoryElectrician is the only live category.
const CategoryElectrician = "electrician"

// SubService is one individually priced offering inside a category.
type SubService struct {
	Name   string `bson:"name" json:"name"`
	Charge string `bson:"charge" json:"charge"` // decimal kept as entered, e.g. "350"
}

// UserProfile is the unified profile record of a job seeker or an employer.
type UserProfile struct {
	UserID              string          `bson:"id" json:"userId,omitempty"`
	UserType            UserType        `bson:"userType" json:"userType,omitempty"`
	FirstName           string          `bson:"firstName" json:"firstName,omitempty"`
	LastName            string          `bson:"lastName" json:"lastName,omitempty"`
	Email               string          `bson:"email" json:"email,omitempty"`
	Phone               string          `bson:"phone" json:"phone,omitempty"`
	Address             string          `bson:"address" json:"address,omitempty"`
	Area                string          `bson:"area,omitempty" json:"area,omitempty"` // secondary locality, present on older records
	City                string          `bson:"city" json:"city,omitempty"`
	State               string          `bson:"state" json:"state,omitempty"`
	Zip                 string          `bson:"zip" json:"zip,omitempty"`
	Bio                 string          `bson:"bio" json:"bio,omitempty"`
	ProfileImage        string          `bson:"profileImage" json:"profileImage,omitempty"` // URI in the asset store
	SelectedCategories  []string        `bson:"selectedCategories" json:"selectedCategories,omitempty"`
	SelectedSubServices []SubService    `bson:"selectedSubServices" json:"selectedSubServices,omitempty"`
	ExperienceLevel     ExperienceLevel `bson:"experienceLevel" json:"experienceLevel,omitempty"`
	UpdatedAt           *time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// FullName joins first and last name.
func (p UserProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// IsComplete reports whether the mandatory contact fields are present.
func (p UserProfile) IsComplete() bool {
	return p.FirstName != "" && p.LastName != "" && p.Phone != ""
}

// HasCategory reports whether category is among the selected categories.
func (p UserProfile) HasCategory(category string) bool {
	for _, c := range p.SelectedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ProfileUpdateRequest carries a partial profile update. Nil fields are left
// untouched in the stored record.
type ProfileUpdateRequest struct {
	UserType            *UserType        `json:"userType,omitempty"`
	FirstName           *string          `json:"firstName,omitempty"`
	LastName            *string          `json:"lastName,omitempty"`
	Phone               *string          `json:"phone,omitempty"`
	Address             *string          `json:"address,omitempty"`
	Area                *string          `json:"area,omitempty"`
	City                *string          `json:"city,omitempty"`
	State               *string          `json:"state,omitempty"`
	Zip                 *string          `json:"zip,omitempty"`
	Bio                 *string          `json:"bio,omitempty"`
	ProfileImage        *string          `json:"profileImage,omitempty"`
	SelectedCategories  *[]string        `json:"selectedCategories,omitempty"`
	SelectedSubServices *[]SubService    `json:"selectedSubServices,omitempty"`
	ExperienceLevel     *ExperienceLevel `json:"experienceLevel,omitempty"`
}

// ProfileCompleteness tells the client where browsing a service leads.
type ProfileCompleteness struct {
	Complete bool     `json:"complete"`
	Next     string   `json:"next"` // "providers" or "profile"
	Missing  []string `json:"missing,omitempty"`
}
