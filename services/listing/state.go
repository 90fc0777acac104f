// Package listing holds the provider-listing view state of an employer.
// State is a value; every reducer returns a new State and never mutates its
// receiver.
package listing

import (
	"sort"
	"strings"

	"helperhub/models"
	"helperhub/services/matching"
)

// Sub-services offered under the electrician category.
var ElectricianSubServices = []string{
	"Fan Install",
	"Switch Board",
	"DB Install",
	"MCB Install",
	"TV Fitting",
	"Full House Wiring",
	"Diwali Lighting",
	"Ganesh Pandal Wiring",
}

type State struct {
	Category    string
	SubServices []string // normalized names, sorted
	Location    string
	Requested   map[string]bool // job seeker ids already requested
}

// New returns the initial state: every category, no filters.
func New() State {
	return State{Category: matching.CategoryAll}
}

func (s State) SelectCategory(category string) State {
	category = strings.TrimSpace(category)
	if category == "" {
		category = matching.CategoryAll
	}
	next := s.clone()
	next.Category = category
	return next
}

// ToggleSubService adds name when absent and removes it when present.
func (s State) ToggleSubService(name string) State {
	name = matching.NormalizeSubServiceName(name)
	if name == "" {
		return s
	}
	next := s.clone()
	for i, existing := range next.SubServices {
		if existing == name {
			next.SubServices = append(next.SubServices[:i], next.SubServices[i+1:]...)
			return next
		}
	}
	next.SubServices = append(next.SubServices, name)
	sort.Strings(next.SubServices)
	return next
}

func (s State) SetLocation(location string) State {
	next := s.clone()
	next.Location = strings.TrimSpace(location)
	return next
}

// MarkRequested records that a request to jobSeekerID was sent.
func (s State) MarkRequested(jobSeekerID string) State {
	if s.Requested[jobSeekerID] {
		return s
	}
	next := s.clone()
	next.Requested[jobSeekerID] = true
	return next
}

// Query derives the matching query.
func (s State) Query() matching.Query {
	return matching.Query{
		Category:    s.Category,
		SubServices: append([]string(nil), s.SubServices...),
		Location:    s.Location,
	}
}

func (s State) clone() State {
	next := State{
		Category:    s.Category,
		SubServices: append([]string(nil), s.SubServices...),
		Location:    s.Location,
		Requested:   make(map[string]bool, len(s.Requested)+1),
	}
	for k, v := range s.Requested {
		next.Requested[k] = v
	}
	return next
}

// ProviderCard is one row of the listing.
type ProviderCard struct {
	models.UserProfile
	RequestDisabled bool `json:"requestDisabled"`
}

// Cards annotates matches with whether the send action is still available.
func (s State) Cards(profiles []models.UserProfile) []ProviderCard {
	cards := make([]ProviderCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, ProviderCard{UserProfile: p, RequestDisabled: s.Requested[p.UserID]})
	}
	return cards
}
