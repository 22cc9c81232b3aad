package entries

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
)

const day = 24 * time.Hour

// seedID derives a stable id so the seed keeps its ids across restarts until
// the first write.
func seedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("lostfound:seed:"+name)).String()
}

// Seed returns the starter collection shown when no snapshot exists.
func Seed(now time.Time) []models.Entry {
	now = now.UTC()
	return []models.Entry{
		{
			ID:          seedID("backpack"),
			Kind:        models.KindLost,
			Title:       "Black Lenovo backpack",
			Description: "Contains a silver laptop and a Python notes notebook. Lost near the library steps.",
			Category:    models.CategoryBags,
			Location:    models.LocationLibrary,
			OccurredAt:  now.Add(-2 * day),
			ContactName: "Aman",
			ContactInfo: "+91-98XXXXXX01",
			Image:       "https://images.unsplash.com/photo-1592503254549-562a2b0630f1?q=80&w=800&auto=format&fit=crop",
			Status:      models.StatusOpen,
		},
		{
			ID:          seedID("id-card"),
			Kind:        models.KindFound,
			Title:       "Student ID Card: Priya S.",
			Description: "Found near the cafeteria billing counter. Brown lanyard attached.",
			Category:    models.CategoryIDCards,
			Location:    models.LocationCafeteria,
			OccurredAt:  now.Add(-1 * day),
			ContactName: "Rohit",
			ContactInfo: "rohit@example.com",
			Image:       "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?q=80&w=800&auto=format&fit=crop",
			Status:      models.StatusOpen,
		},
		{
			ID:          seedID("airpods"),
			Kind:        models.KindLost,
			Title:       "AirPods (Gen 2) in white case",
			Description: "Missing after evening practice near Sports Complex. Case has a smiley sticker.",
			Category:    models.CategoryElectronics,
			Location:    models.LocationSportsComplex,
			OccurredAt:  now.Add(-5 * day),
			ContactName: "Meera",
			ContactInfo: "@meera_ig",
			Image:       "https://images.unsplash.com/photo-1546435770-a3e426bf472b?q=80&w=800&auto=format&fit=crop",
			Status:      models.StatusOpen,
		},
	}
}
