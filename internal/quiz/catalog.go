package quiz

func olderThan50(a Answers) bool { return a.AgeRange == "51-55" }

func active(a Answers) bool {
	return a.ActivityLevel == ActivityModerate || a.ActivityLevel == ActivityVery
}

func plantBased(a Answers) bool { return a.DietPattern == DietStrict }

// DefaultCatalog returns the recommendation buckets in display order.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Category:   "Daily Foundation",
			Evidence:   EvidenceA,
			Rationale:  "Vitamin D and magnesium shortfalls are common after 35 and underpin energy, mood and muscle function.",
			Dosage:     "Vitamin D3 1000-2000 IU and Magnesium glycinate 200mg daily.",
			Timing:     "Vitamin D3 with breakfast; magnesium with dinner.",
			Guardrails: "Check blood levels before going above 4000 IU of vitamin D long-term.",
			Tailor: func(a Answers) []string {
				var out []string
				if olderThan50(a) {
					out = append(out, "Absorption of several nutrients declines after 50, so a steady baseline matters more.")
				}
				if a.DietPattern == DietStandard {
					out = append(out, "A diet heavy in processed food tends to run low in magnesium.")
				}
				return out
			},
		},
		{
			Category:   "Energy Support",
			Goal:       GoalEnergy,
			Evidence:   EvidenceB,
			Rationale:  "Your age range and activity level indicate you could benefit from cellular energy support and mitochondrial function optimization.",
			Dosage:     "CoQ10 (100mg), B-Complex vitamins, and Magnesium.",
			Timing:     "Taken with breakfast for sustained energy throughout the day.",
			Guardrails: "Start with half dose for first week. Avoid taking after 3 PM to prevent sleep interference.",
			Tailor: func(a Answers) []string {
				if a.ActivityLevel == ActivitySedentary {
					return []string{"Pair it with short daily walks; low activity itself drains energy."}
				}
				return nil
			},
		},
		{
			Category:   "Cognitive Function",
			Goal:       GoalFocus,
			Evidence:   EvidenceB,
			Rationale:  "Focus and mental clarity naturally decline with age. Your lifestyle indicates stress that can impact cognitive performance.",
			Dosage:     "Omega-3 (EPA/DHA), Lion's Mane mushroom, and Rhodiola rosea.",
			Timing:     "Taken with your morning meal.",
			Guardrails: "Allow 2-4 weeks for noticeable effects. Rhodiola may cause jitteriness - reduce dose if needed.",
			Tailor: func(a Answers) []string {
				if plantBased(a) {
					return []string{"Choose an algae-based omega-3 if you avoid fish."}
				}
				return nil
			},
		},
		{
			Category:   "Recovery Support",
			Goal:       GoalRecovery,
			Evidence:   EvidenceB,
			Rationale:  "Age-related inflammation can slow healing processes.",
			Dosage:     "Curcumin with black pepper, Vitamin D3, and Zinc.",
			Timing:     "Taken with dinner for overnight recovery.",
			Guardrails: "Take with fat for better absorption. Monitor for stomach upset with curcumin - take with food if needed.",
			Tailor: func(a Answers) []string {
				if active(a) {
					return []string{"Your activity level requires enhanced recovery support."}
				}
				return nil
			},
		},
		{
			Category:   "Immune Support",
			Goal:       GoalImmune,
			Evidence:   EvidenceB,
			Rationale:  "Immune resilience tapers gradually from midlife; a few well-studied nutrients help keep it steady.",
			Dosage:     "Vitamin C (500mg), Zinc (15mg), and Vitamin D3.",
			Timing:     "With breakfast; split vitamin C across two meals if you prefer.",
			Guardrails: "Do not exceed 40mg of zinc daily. Long-term zinc use may need copper balance.",
		},
		{
			Category:   "Sleep Support",
			Goal:       GoalSleep,
			Evidence:   EvidenceB,
			Rationale:  "Deep sleep shortens with age and most repair happens overnight.",
			Dosage:     "Magnesium glycinate (200-400mg) and L-theanine (200mg).",
			Timing:     "30-60 minutes before bed.",
			Guardrails: "Start low; magnesium may cause loose stools in some. Avoid combining with sedatives without advice.",
		},
		{
			Category:   "Metabolic Support",
			Goal:       GoalWeight,
			Evidence:   EvidenceC,
			Rationale:  "Metabolic rate slows with age; fiber and protein support satiety and healthy weight.",
			Dosage:     "Psyllium husk (5g) and a protein serving of 20-30g.",
			Timing:     "Psyllium before your largest meal with a full glass of water.",
			Guardrails: "Separate fiber from medications by at least two hours.",
			Tailor: func(a Answers) []string {
				if a.DietPattern == DietStandard {
					return []string{"Swapping one processed meal a day for whole foods will do more than any supplement."}
				}
				return nil
			},
		},
	}
}
