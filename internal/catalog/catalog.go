// Package catalog provides the static career-field catalog: an immutable
// loaded table of field profiles plus a loader for caller-authored JSON
// catalogs. Profiles are authored data with no behavior.
package catalog

import "github.com/oguzhan/career-compass/internal/types"

// Default returns the built-in field catalog. The returned slice and its
// vectors are fresh copies; callers may not mutate the catalog through them.
func Default() []types.FieldProfile {
	profiles := make([]types.FieldProfile, len(defaultProfiles))
	for i, profile := range defaultProfiles {
		copied := profile
		copied.Ideal = profile.Ideal.Clone()
		copied.Skills = append([]string(nil), profile.Skills...)
		copied.Education = append([]string(nil), profile.Education...)
		profiles[i] = copied
	}
	return profiles
}

// ByID returns the profile with the given ID from the catalog, or nil.
func ByID(profiles []types.FieldProfile, id string) *types.FieldProfile {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}

var defaultProfiles = []types.FieldProfile{
	{
		ID:          "software-engineering",
		Name:        "Software Engineering",
		Description: "Designing, building and maintaining software systems.",
		DemandLevel: "very-high",
		SalaryBand:  &types.SalaryBand{Junior: "45k-65k", Mid: "65k-95k", Senior: "95k-140k"},
		Skills:      []string{"programming", "algorithms", "system design", "debugging", "version control"},
		Education:   []string{"Computer Science", "Software Engineering", "self-taught with portfolio"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          80,
			types.CategoryConscientiousness: 85,
			types.CategoryExtraversion:      45,
			types.CategoryAgreeableness:     55,
			types.CategoryNeuroticism:       35,
		},
	},
	{
		ID:          "data-science",
		Name:        "Data Science",
		Description: "Extracting insight from data with statistics and machine learning.",
		DemandLevel: "very-high",
		SalaryBand:  &types.SalaryBand{Junior: "50k-70k", Mid: "70k-100k", Senior: "100k-150k"},
		Skills:      []string{"statistics", "python", "machine learning", "data visualization", "sql"},
		Education:   []string{"Statistics", "Computer Science", "Mathematics"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          85,
			types.CategoryConscientiousness: 80,
			types.CategoryExtraversion:      40,
			types.CategoryAgreeableness:     50,
			types.CategoryNeuroticism:       35,
		},
	},
	{
		ID:          "cybersecurity",
		Name:        "Cybersecurity",
		Description: "Protecting systems and data from attack and misuse.",
		DemandLevel: "high",
		SalaryBand:  &types.SalaryBand{Junior: "45k-65k", Mid: "70k-100k", Senior: "100k-145k"},
		Skills:      []string{"network security", "threat analysis", "incident response", "scripting"},
		Education:   []string{"Computer Science", "Information Security", "industry certifications"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          70,
			types.CategoryConscientiousness: 90,
			types.CategoryExtraversion:      35,
			types.CategoryAgreeableness:     45,
			types.CategoryNeuroticism:       30,
		},
	},
	{
		ID:          "ux-design",
		Name:        "UX Design",
		Description: "Researching and designing how people experience products.",
		DemandLevel: "high",
		SalaryBand:  &types.SalaryBand{Junior: "35k-50k", Mid: "50k-75k", Senior: "75k-110k"},
		Skills:      []string{"user research", "prototyping", "visual design", "usability testing"},
		Education:   []string{"Design", "Human-Computer Interaction", "Psychology"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          90,
			types.CategoryConscientiousness: 65,
			types.CategoryExtraversion:      60,
			types.CategoryAgreeableness:     70,
			types.CategoryNeuroticism:       40,
		},
	},
	{
		ID:          "product-management",
		Name:        "Product Management",
		Description: "Steering what gets built and why, between users, business and engineering.",
		DemandLevel: "high",
		SalaryBand:  &types.SalaryBand{Junior: "50k-70k", Mid: "75k-110k", Senior: "110k-160k"},
		Skills:      []string{"prioritization", "communication", "market analysis", "roadmapping"},
		Education:   []string{"Business", "Engineering", "any degree with product experience"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          75,
			types.CategoryConscientiousness: 80,
			types.CategoryExtraversion:      75,
			types.CategoryAgreeableness:     65,
			types.CategoryNeuroticism:       30,
		},
	},
	{
		ID:          "digital-marketing",
		Name:        "Digital Marketing",
		Description: "Growing audiences and demand across digital channels.",
		DemandLevel: "medium",
		SalaryBand:  &types.SalaryBand{Junior: "30k-45k", Mid: "45k-70k", Senior: "70k-100k"},
		Skills:      []string{"content strategy", "analytics", "seo", "campaign management"},
		Education:   []string{"Marketing", "Communications", "Business"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          80,
			types.CategoryConscientiousness: 60,
			types.CategoryExtraversion:      80,
			types.CategoryAgreeableness:     65,
			types.CategoryNeuroticism:       45,
		},
	},
	{
		ID:          "psychology-counseling",
		Name:        "Psychology & Counseling",
		Description: "Supporting people's mental health and personal development.",
		DemandLevel: "medium",
		SalaryBand:  &types.SalaryBand{Junior: "30k-45k", Mid: "45k-65k", Senior: "65k-95k"},
		Skills:      []string{"active listening", "assessment", "empathy", "case management"},
		Education:   []string{"Psychology", "Counseling", "clinical licensure"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          70,
			types.CategoryConscientiousness: 70,
			types.CategoryExtraversion:      60,
			types.CategoryAgreeableness:     90,
			types.CategoryNeuroticism:       35,
		},
	},
	{
		ID:          "mechanical-engineering",
		Name:        "Mechanical Engineering",
		Description: "Designing and analyzing physical machines and systems.",
		DemandLevel: "medium",
		SalaryBand:  &types.SalaryBand{Junior: "40k-55k", Mid: "55k-80k", Senior: "80k-115k"},
		Skills:      []string{"cad", "thermodynamics", "materials", "manufacturing processes"},
		Education:   []string{"Mechanical Engineering"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          65,
			types.CategoryConscientiousness: 85,
			types.CategoryExtraversion:      45,
			types.CategoryAgreeableness:     55,
			types.CategoryNeuroticism:       35,
		},
	},
	{
		ID:          "teaching",
		Name:        "Teaching",
		Description: "Educating and mentoring learners across age groups.",
		DemandLevel: "medium",
		SalaryBand:  &types.SalaryBand{Junior: "28k-38k", Mid: "38k-55k", Senior: "55k-75k"},
		Skills:      []string{"lesson planning", "classroom management", "communication", "assessment"},
		Education:   []string{"Education", "subject degree with teaching credential"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          70,
			types.CategoryConscientiousness: 75,
			types.CategoryExtraversion:      75,
			types.CategoryAgreeableness:     85,
			types.CategoryNeuroticism:       35,
		},
	},
	{
		ID:          "finance-accounting",
		Name:        "Finance & Accounting",
		Description: "Managing, auditing and planning the flow of money.",
		DemandLevel: "high",
		SalaryBand:  &types.SalaryBand{Junior: "35k-50k", Mid: "50k-80k", Senior: "80k-120k"},
		Skills:      []string{"financial analysis", "accounting standards", "excel", "reporting"},
		Education:   []string{"Finance", "Accounting", "Economics"},
		Ideal: types.TraitVector{
			types.CategoryOpenness:          55,
			types.CategoryConscientiousness: 95,
			types.CategoryExtraversion:      50,
			types.CategoryAgreeableness:     55,
			types.CategoryNeuroticism:       25,
		},
	},
}
