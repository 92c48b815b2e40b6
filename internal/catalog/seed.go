package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed returns the fixed medicine list every session starts from.
func Seed() []Medicine {
	return []Medicine{
		{
			ID:          "1",
			Name:        "Paracetamol 500mg",
			Category:    "Pain Relief",
			Symptoms:    []string{"fever", "headache", "body pain"},
			Price:       decimal.NewFromInt(25),
			Stock:       150,
			ExpiryDate:  seedDate("2025-12-31"),
			Description: "Effective pain reliever and fever reducer",
		},
		{
			ID:          "2",
			Name:        "Dolo 650",
			Category:    "Pain Relief",
			Symptoms:    []string{"fever", "headache", "body pain", "cold"},
			Price:       decimal.NewFromInt(30),
			Stock:       200,
			ExpiryDate:  seedDate("2025-11-30"),
			Description: "Paracetamol 650mg for fever and pain relief",
		},
		{
			ID:          "3",
			Name:        "Cetirizine 10mg",
			Category:    "Allergy",
			Symptoms:    []string{"allergy", "cold", "runny nose", "sneezing"},
			Price:       decimal.NewFromInt(40),
			Stock:       100,
			ExpiryDate:  seedDate("2026-03-15"),
			Description: "Antihistamine for allergic reactions",
		},
		{
			ID:          "4",
			Name:        "Azithromycin 500mg",
			Category:    "Antibiotic",
			Symptoms:    []string{"infection", "throat infection", "bacterial infection"},
			Price:       decimal.NewFromInt(120),
			Stock:       80,
			ExpiryDate:  seedDate("2025-09-20"),
			Description: "Broad-spectrum antibiotic",
		},
		{
			ID:          "5",
			Name:        "ORS Powder",
			Category:    "Rehydration",
			Symptoms:    []string{"dehydration", "diarrhea", "vomiting"},
			Price:       decimal.NewFromInt(15),
			Stock:       250,
			ExpiryDate:  seedDate("2026-06-30"),
			Description: "Oral rehydration solution",
		},
		{
			ID:          "6",
			Name:        "Calpol Syrup",
			Category:    "Pain Relief",
			Symptoms:    []string{"fever", "headache", "pain"},
			Price:       decimal.NewFromInt(85),
			Stock:       120,
			ExpiryDate:  seedDate("2025-10-15"),
			Description: "Paracetamol suspension for children",
		},
		{
			ID:          "7",
			Name:        "Allegra 120mg",
			Category:    "Allergy",
			Symptoms:    []string{"allergy", "cold", "sneezing", "itching"},
			Price:       decimal.NewFromInt(180),
			Stock:       90,
			ExpiryDate:  seedDate("2026-01-20"),
			Description: "Fexofenadine for allergies",
		},
		{
			ID:          "8",
			Name:        "Strepsils Lozenges",
			Category:    "Throat Care",
			Symptoms:    []string{"sore throat", "throat pain", "cough"},
			Price:       decimal.NewFromInt(55),
			Stock:       180,
			ExpiryDate:  seedDate("2026-04-10"),
			Description: "Throat lozenges for sore throat relief",
		},
		{
			ID:          "9",
			Name:        "Ibuprofen 400mg",
			Category:    "Pain Relief",
			Symptoms:    []string{"pain", "inflammation", "fever", "headache"},
			Price:       decimal.NewFromInt(45),
			Stock:       140,
			ExpiryDate:  seedDate("2025-12-25"),
			Description: "NSAID for pain and inflammation",
		},
		{
			ID:          "10",
			Name:        "Pantoprazole 40mg",
			Category:    "Gastric",
			Symptoms:    []string{"acidity", "heartburn", "stomach pain", "gastritis"},
			Price:       decimal.NewFromInt(95),
			Stock:       110,
			ExpiryDate:  seedDate("2026-02-28"),
			Description: "Proton pump inhibitor for acid reflux",
		},
		{
			ID:          "11",
			Name:        "Amoxicillin 500mg",
			Category:    "Antibiotic",
			Symptoms:    []string{"infection", "bacterial infection", "respiratory infection"},
			Price:       decimal.NewFromInt(110),
			Stock:       95,
			ExpiryDate:  seedDate("2025-08-30"),
			Description: "Penicillin antibiotic",
		},
		{
			ID:          "12",
			Name:        "Crocin Advance",
			Category:    "Pain Relief",
			Symptoms:    []string{"fever", "headache", "body pain"},
			Price:       decimal.NewFromInt(35),
			Stock:       160,
			ExpiryDate:  seedDate("2026-01-15"),
			Description: "Fast-acting paracetamol",
		},
		{
			ID:          "13",
			Name:        "Vicks Action 500",
			Category:    "Cold & Flu",
			Symptoms:    []string{"cold", "fever", "headache", "body pain"},
			Price:       decimal.NewFromInt(50),
			Stock:       130,
			ExpiryDate:  seedDate("2025-11-20"),
			Description: "Multi-symptom cold relief",
		},
		{
			ID:          "14",
			Name:        "Betadine Solution",
			Category:    "Antiseptic",
			Symptoms:    []string{"wound", "cut", "infection prevention"},
			Price:       decimal.NewFromInt(75),
			Stock:       85,
			ExpiryDate:  seedDate("2026-05-10"),
			Description: "Povidone-iodine antiseptic solution",
		},
		{
			ID:          "15",
			Name:        "Electral Powder",
			Category:    "Rehydration",
			Symptoms:    []string{"dehydration", "diarrhea", "vomiting", "electrolyte imbalance"},
			Price:       decimal.NewFromInt(20),
			Stock:       200,
			ExpiryDate:  seedDate("2026-07-15"),
			Description: "Electrolyte replacement solution",
		},
	}
}

func seedDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
