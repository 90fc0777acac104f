package profile

import (
	"strings"

	"helperhub/models"
)

// updateFields lists the stored fields named by req, keyed by their
// document names. Strings are trimmed.
func updateFields(req models.ProfileUpdateRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	str := func(key string, v *string) {
		if v != nil {
			fields[key] = strings.TrimSpace(*v)
		}
	}
	if req.UserType != nil {
		fields["userType"] = *req.UserType
	}
	str("firstName", req.FirstName)
	str("lastName", req.LastName)
	str("phone", req.Phone)
	str("address", req.Address)
	str("area", req.Area)
	str("city", req.City)
	str("state", req.State)
	str("zip", req.Zip)
	str("bio", req.Bio)
	str("profileImage", req.ProfileImage)
	if req.SelectedCategories != nil {
		fields["selectedCategories"] = nonNil(*req.SelectedCategories)
	}
	if req.SelectedSubServices != nil {
		fields["selectedSubServices"] = dedupeSubServices(*req.SelectedSubServices)
	}
	if req.ExperienceLevel != nil {
		fields["experienceLevel"] = *req.ExperienceLevel
	}
	return fields
}

// applyUpdate returns p with the non-nil fields of req applied.
func applyUpdate(p models.UserProfile, req models.ProfileUpdateRequest) models.UserProfile {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	if req.UserType != nil {
		p.UserType = *req.UserType
	}
	set(&p.FirstName, req.FirstName)
	set(&p.LastName, req.LastName)
	set(&p.Phone, req.Phone)
	set(&p.Address, req.Address)
	set(&p.Area, req.Area)
	set(&p.City, req.City)
	set(&p.State, req.State)
	set(&p.Zip, req.Zip)
	set(&p.Bio, req.Bio)
	set(&p.ProfileImage, req.ProfileImage)
	if req.SelectedCategories != nil {
		p.SelectedCategories = nonNil(*req.SelectedCategories)
	}
	if req.SelectedSubServices != nil {
		p.SelectedSubServices = dedupeSubServices(*req.SelectedSubServices)
	}
	if req.ExperienceLevel != nil {
		p.ExperienceLevel = *req.ExperienceLevel
	}
	return p
}

// dedupeSubServices keeps the first entry of each name, preserving order.
func dedupeSubServices(in []models.SubService) []models.SubService {
	seen := make(map[string]bool, len(in))
	out := make([]models.SubService, 0, len(in))
	for _, s := range in {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" || seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
