package matching

import (
	"strings"

	"helperhub/models"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// currencySuffix decorates sub-service names in the picker, e.g. "Fan Install (₹)".
const currencySuffix = " (₹)"

// Query selects providers. Empty fields do not filter.
type Query struct {
	Category    string   `form:"category" json:"category"`
	SubServices []string `form:"subService" json:"subServices"`
	Location    string   `form:"location" json:"location"`
}

// NormalizeSubServiceName strips the currency decoration added for display.
func NormalizeSubServiceName(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), currencySuffix)
}

// Match returns the job seekers in profiles that satisfy q, in input order.
// A job seeker without categories is never eligible. Sub-services are a
// conjunction: every requested name must be offered.
func Match(profiles []models.UserProfile, q Query) []models.UserProfile {
	wanted := wantedSubServices(q.SubServices)
	location := strings.ToLower(strings.TrimSpace(q.Location))

	var out []models.UserProfile
	for _, p := range profiles {
		if p.UserType != models.UserTypeJobSeeker || len(p.SelectedCategories) == 0 {
			continue
		}
		if !matchesCategory(p, q.Category) {
			continue
		}
		if !offersAll(p, wanted) {
			continue
		}
		if location != "" && !matchesLocation(p, location) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func wantedSubServices(names []string) map[string]struct{} {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n = NormalizeSubServiceName(n); n != "" {
			wanted[n] = struct{}{}
		}
	}
	return wanted
}

func matchesCategory(p models.UserProfile, category string) bool {
	return category == "" || category == CategoryAll || p.HasCategory(category)
}

func offersAll(p models.UserProfile, wanted map[string]struct{}) bool {
	if len(wanted) == 0 {
		return true
	}
	offered := make(map[string]struct{}, len(p.SelectedSubServices))
	for _, s := range p.SelectedSubServices {
		offered[NormalizeSubServiceName(s.Name)] = struct{}{}
	}
	for name := range wanted {
		if _, ok := offered[name]; !ok {
			return false
		}
	}
	return true
}

// location is already lower-cased.
func matchesLocation(p models.UserProfile, location string) bool {
	return strings.Contains(strings.ToLower(p.Address), location) ||
		(p.Area != "" && strings.Contains(strings.ToLower(p.Area), location))
}
