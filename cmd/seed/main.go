// Command seed fills the configured store with demo job seekers so the
// provider listing has something to match against.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"helperhub/config"
	"helperhub/database"
	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/services/listing"
	"helperhub/utils"

	"go.uber.org/zap"
)

var areas = []string{
	"Koramangala, Bangalore",
	"Indiranagar, Bangalore",
	"Whitefield, Bangalore",
	"Jayanagar, Bangalore",
	"HSR Layout, Bangalore",
}

var levels = []models.ExperienceLevel{
	models.ExperienceBeginner,
	models.ExperienceIntermediate,
	models.ExperienceExpert,
}

func main() {
	count := flag.Int("n", 20, "number of job seekers to create")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := utils.FirebaseInit(ctx); err != nil {
		logger.Fatal("firebase init failed", zap.Error(err))
	}
	if err := database.InitDB(ctx, utils.FirebaseApp); err != nil {
		logger.Fatal("store init failed", zap.Error(err))
	}
	defer database.Close(ctx)

	repo := profileRepo.NewProfileRepo(config.UsesMongo())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= *count; i++ {
		uid := fmt.Sprintf("seed-jobseeker-%03d", i)
		phone := fmt.Sprintf("900000%04d", i)

		fields := map[string]interface{}{
			"userType":            models.UserTypeJobSeeker,
			"firstName":           "Helper",
			"lastName":            fmt.Sprintf("%03d", i),
			"email":               fmt.Sprintf("helper_%03d@example.com", i),
			"phone":               phone,
			"address":             areas[rng.Intn(len(areas))],
			"city":                "Bangalore",
			"state":               "Karnataka",
			"selectedCategories":  []string{models.CategoryElectrician},
			"selectedSubServices": randomSubServices(rng),
			"experienceLevel":     levels[rng.Intn(len(levels))],
			"updatedAt":           time.Now().UTC(),
		}
		if err := repo.MergeProfile(ctx, uid, fields); err != nil {
			logger.Fatal("profile seed failed", zap.String("userID", uid), zap.Error(err))
		}
		record := &models.SignupRecord{
			UserID:    uid,
			UserType:  models.UserTypeJobSeeker,
			FirstName: "Helper",
			LastName:  fmt.Sprintf("%03d", i),
			Phone:     phone,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.SaveSignupRecord(ctx, record); err != nil {
			logger.Fatal("signup seed failed", zap.String("userID", uid), zap.Error(err))
		}
	}
	logger.Info("seeded job seekers", zap.Int("count", *count))
}

// randomSubServices picks between one and four electrician sub-services.
func randomSubServices(rng *rand.Rand) []models.SubService {
	names := append([]string(nil), listing.ElectricianSubServices...)
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	n := 1 + rng.Intn(4)
	out := make([]models.SubService, 0, n)
	for _, name := range names[:n] {
		out = append(out, models.SubService{Name: name, Charge: fmt.Sprintf("%d", 200+50*rng.Intn(10))})
	}
	return out
}
