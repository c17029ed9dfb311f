package quiz

// DefaultBank returns the HIS 220 knowledge-check quizzes.
func DefaultBank() *Service {
	return NewService(
		Quiz{
			ID:    "michigan_basics",
			Title: "Michigan History Fundamentals",
			Questions: []Question{
				{
					Text: "Who founded Detroit in 1701?",
					Options: []string{
						"Jacques Marquette",
						"Antoine de la Mothe Cadillac",
						"René-Robert Cavelier",
						"Jean Nicolet",
					},
					Correct:     1,
					Explanation: "Antoine de la Mothe Cadillac founded Detroit on July 24, 1701, establishing Fort Pontchartrain at the strategic location between Lakes Erie and Huron.",
				},
				{
					Text: "Which geographic feature most influenced Michigan's early development?",
					Options: []string{
						"The Appalachian Mountains",
						"The Great Plains",
						"The Great Lakes",
						"The Mississippi River",
					},
					Correct:     2,
					Explanation: "Michigan is surrounded by 4 of the 5 Great Lakes, giving it 3,000 miles of freshwater coastline and making water transportation central to its development.",
				},
				{
					Text: "What was the primary economic activity during French rule?",
					Options: []string{
						"Agriculture",
						"Manufacturing",
						"Fur trading",
						"Mining",
					},
					Correct:     2,
					Explanation: "The French economy in Michigan centered on fur trading, establishing trading posts and maintaining partnerships with Native American tribes.",
				},
				{
					Text: "Which Native American confederacy was important in early Michigan?",
					Options: []string{
						"Iroquois Confederacy",
						"Three Fires Confederacy",
						"Powhatan Confederacy",
						"Creek Confederacy",
					},
					Correct:     1,
					Explanation: "The Three Fires Confederacy included the Ojibwe (Chippewa), Ottawa, and Potawatomi tribes, who were the primary Native groups in the Michigan region.",
				},
			},
		},
		Quiz{
			ID:    "geography_influence",
			Title: "Geography and Development",
			Questions: []Question{
				{
					Text: "Why was Detroit's location strategically important?",
					Options: []string{
						"It was the highest point in Michigan",
						"It controlled the narrowest point between two Great Lakes",
						"It had the most fertile soil",
						"It was closest to major Eastern cities",
					},
					Correct:     1,
					Explanation: "Detroit sits at the narrowest point between Lakes Erie and Huron, making it a crucial control point for Great Lakes navigation and trade.",
				},
				{
					Text: "Which natural resource was NOT a major factor in early Michigan development?",
					Options: []string{
						"Timber",
						"Iron ore",
						"Oil deposits",
						"Fertile soil",
					},
					Correct:     2,
					Explanation: "While Michigan had timber, iron ore, and fertile soil that shaped its development, oil deposits were not a significant factor in its early history.",
				},
			},
		},
	)
}
