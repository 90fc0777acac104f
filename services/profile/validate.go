package profile

import (
	"strings"

	"helperhub/models"
	"helperhub/utils"
)

func missingContactFields(p models.UserProfile) []string {
	var missing []string
	if p.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if p.LastName == "" {
		missing = append(missing, "lastName")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// validateProfile checks the profile as it would look after the merge.
func validateProfile(p models.UserProfile) error {
	if p.UserType != "" && !p.UserType.Valid() {
		return utils.NewValidationError("User type must be employer or jobSeeker.")
	}
	if missing := missingContactFields(p); len(missing) > 0 {
		return utils.NewValidationError("Please fill in all required fields: " + strings.Join(missing, ", "))
	}
	if p.UserType == models.UserTypeJobSeeker && len(p.SelectedCategories) == 0 {
		return utils.NewValidationError("Please select at least one service category.")
	}
	if p.ExperienceLevel != "" && !p.ExperienceLevel.Valid() {
		return utils.NewValidationError("Experience level must be beginner, intermediate or expert.")
	}
	return nil
}
