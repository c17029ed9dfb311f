package course

// DefaultCatalog returns the HIS 220 course content.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Slides: []Slide{
			{
				ID:    "welcome",
				Title: "Welcome to Michigan History",
				Content: `# History of Michigan (HIS 220)

## Wayne County Community College District
**3 Credit Hours | 45 Contact Hours**

> "From French exploration to modern innovation - discover the rich tapestry of Michigan's development and its unique role in American history."

### Course Focus:
* Historical development from French exploration to present
* Major political, social, and economic developments
* Special emphasis on southeastern Michigan and Detroit metro
* Michigan's unique geographical influence on development`,
				PresenterNotes: "Welcome students and introduce the comprehensive nature of this course.",
			},
			{
				ID:    "geography_influence",
				Title: "Geography's Role in Michigan Development",
				Content: `# Michigan's Unique Geographic Setting

## The Great Lakes Advantage
* **Surrounded by 4 of 5 Great Lakes** - Superior, Michigan, Huron, Erie
* **3,000 miles of freshwater coastline** - more than any other state
* **Strategic location** for transportation and trade

## Natural Resources Shaped Development
* **Timber** - Fueled early logging industry
* **Iron ore** - Upper Peninsula mining boom
* **Coal** - Energy for industrial growth
* **Fertile soil** - Agricultural development

## Geographic Challenges
* **Two peninsulas** connected by bridge (1957)
* **Harsh winters** influenced settlement patterns
* **Water transportation** crucial before railroads`,
				PresenterNotes:   "Emphasize how geography directly influenced every aspect of Michigan's development.",
				Interactive:      true,
				DiscussionPrompt: "How do you think Michigan's development would have been different if it weren't surrounded by the Great Lakes?",
			},
			{
				ID:    "french_exploration",
				Title: "French Exploration Era",
				Content: `# French Exploration and Settlement (1600s-1760s)

## Key Explorers and Missionaries
* **Étienne Brûlé** (1610s) - First European in Michigan
* **Jean Nicolet** (1634) - Explored Lake Michigan
* **Jacques Marquette** (1668) - Founded Sault Ste. Marie
* **René-Robert Cavelier, Sieur de La Salle** - Explored Great Lakes system

## French Influence
* **Fur trading** - Primary economic activity
* **Missionary work** - Converting Native Americans
* **Alliance with Native tribes** - Unlike other European powers
* **Place names** - Detroit, Sault Ste. Marie, Marquette

## Native American Relations
* **Ojibwe (Chippewa)** - Largest tribe in region
* **Ottawa** and **Potawatomi** - Part of Three Fires Confederacy
* **Trade partnerships** - Europeans dependent on Native knowledge`,
				PresenterNotes: "Emphasize the cooperative nature of early French-Native relations.",
			},
			{
				ID:    "detroit_founding",
				Title: "The Founding of Detroit",
				Content: `# Detroit: The Birth of a City (1701)

## Antoine de la Mothe Cadillac
* **Founded Detroit** on July 24, 1701
* **"Ville d'Étroit"** - City of the Strait
* **Strategic location** - Narrowest point between Lakes Erie and Huron

## Early Detroit Characteristics
* **Fort Pontchartrain** - Military and trading post
* **Ribbon farms** - Long, narrow plots along river
* **Multicultural population** - French, Native Americans, eventually British
* **Trading hub** - Controlled Great Lakes water route

## Geographic Advantages
* **Detroit River** - Natural highway for transportation
* **Fertile land** - Agricultural potential
* **Strategic military position** - Control of Great Lakes access`,
				PresenterNotes: "Connect Detroit's founding to its continued importance as a transportation hub.",
			},
			{
				ID:    "assessment",
				Title: "Course Assessment Methods",
				Content: `# How You'll Be Assessed

## Assessment Variety
* **Examinations** - Test comprehension and analysis
* **Quizzes** - Regular knowledge checks
* **Case Studies** - Analyze historical scenarios
* **Oral Conversations** - Discuss historical topics
* **Group Discussions** - Collaborative learning
* **Oral Presentations** - Share research findings

## Grading Scale
* **A: 90%-100%** - Exceptional work
* **B: 80%-89.9%** - Good work
* **C: 70%-79.9%** - Satisfactory work
* **D: 60%-69.9%** - Below expectations
* **E: <60%** - Unsatisfactory work

## Success Strategies
* **Regular attendance** and participation
* **Engage with AI specialist** for additional help
* **Connect historical patterns** to modern Michigan`,
				PresenterNotes: "Emphasize the variety of assessment methods available to accommodate different learning styles.",
			},
		},
		Resources: Resources{
			Videos: []Resource{
				{
					Title:       "Michigan's French Colonial Heritage",
					URL:         "https://www.youtube.com/watch?v=michigan-french",
					Description: "Explore the lasting influence of French exploration and settlement",
					Duration:    "12 minutes",
				},
				{
					Title:       "Great Lakes: Michigan's Natural Highways",
					URL:         "https://www.youtube.com/watch?v=great-lakes-michigan",
					Description: "How the Great Lakes shaped Michigan's transportation and economy",
					Duration:    "15 minutes",
				},
				{
					Title:       "Detroit: From Trading Post to Motor City",
					URL:         "https://www.youtube.com/watch?v=detroit-history",
					Description: "The transformation of Detroit from French fort to industrial center",
					Duration:    "18 minutes",
				},
			},
			Articles: []Resource{
				{
					Title:       "Michigan History Center - State Timeline",
					URL:         "https://www.michigan.gov/mhc/timeline",
					Description: "Comprehensive timeline of Michigan historical events",
				},
				{
					Title:       "Detroit Historical Society Resources",
					URL:         "https://detroithistorical.org/learn",
					Description: "Primary sources and Detroit-focused historical materials",
				},
				{
					Title:       "Michigan Native American History",
					URL:         "https://www.michigan.gov/native-history",
					Description: "Understanding the first peoples of Michigan",
				},
			},
			ResidentResources: []Resource{
				{
					Title:       "Michigan Government Services",
					URL:         "https://www.michigan.gov/som",
					Description: "Access state services, licensing, and information for residents",
				},
				{
					Title:       "Pure Michigan Tourism",
					URL:         "https://www.michigan.org",
					Description: "Discover Michigan attractions, events, and natural areas",
				},
				{
					Title:       "Michigan Economic Development",
					URL:         "https://www.michiganbusiness.org",
					Description: "Business resources, job opportunities, and economic data",
				},
			},
		},
	}
}
