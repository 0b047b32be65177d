package catalog

import (
	"fmt"

	"consultly/models"
)

// InMemoryExpertRepo serves the seeded expert profile. Persistence is out of
// scope; a database-backed implementation would satisfy the same interface.
type InMemoryExpertRepo struct {
	experts map[string]models.Expert
}

// NewInMemoryExpertRepo returns a repo seeded with the demo expert.
func NewInMemoryExpertRepo() *InMemoryExpertRepo {
	repo := &InMemoryExpertRepo{experts: make(map[string]models.Expert)}
	repo.experts[seedExpert.ID] = seedExpert
	return repo
}

// GetExpert returns the expert with the given ID.
func (r *InMemoryExpertRepo) GetExpert(id string) (*models.Expert, error) {
	expert, ok := r.experts[id]
	if !ok {
		return nil, fmt.Errorf("expert %q: %w", id, ErrNotFound)
	}
	return &expert, nil
}

var seedExpert = models.Expert{
	ID:          "exp-1",
	Name:        "Dr. Sarah Johnson",
	Title:       "Business Strategy Consultant",
	AvatarURL:   "https://images.pexels.com/photos/5792641/pexels-photo-5792641.jpeg?auto=compress&cs=tinysrgb&w=500",
	Rating:      4.9,
	ReviewCount: 127,
	HourlyRate:  150,
	ShortBio:    "MBA from Harvard Business School with 12+ years of experience helping startups and SMEs optimize their growth strategies.",
	FullBio: "Dr. Sarah Johnson is a seasoned business strategist with over 12 years of experience in helping startups " +
		"and established businesses optimize their growth strategies. With an MBA from Harvard Business School and a " +
		"Ph.D. in Business Economics, Sarah brings a unique blend of academic rigor and practical business acumen to " +
		"her consultations. Sarah has worked with over 200 businesses across various industries, from tech startups " +
		"to retail chains, helping them identify growth opportunities, streamline operations, and increase " +
		"profitability. Her specialties include market expansion strategies, competitive analysis, and operational " +
		"efficiency.",
	Specialties: []string{
		"Business Growth Strategy",
		"Market Expansion",
		"Competitive Analysis",
		"Operational Efficiency",
		"Strategic Planning",
	},
	Credentials: []models.Credential{
		{ID: "cred-1", Title: "Ph.D. in Business Economics", Institution: "Stanford University", Year: 2011},
		{ID: "cred-2", Title: "MBA", Institution: "Harvard Business School", Year: 2008},
		{ID: "cred-3", Title: "Certified Management Consultant (CMC)", Institution: "Institute of Management Consultants", Year: 2012},
	},
	Reviews: []models.Review{
		{
			ID:          "rev-1",
			Author:      "Michael T.",
			Rating:      5,
			Date:        "2023-12-15",
			Comment:     "Dr. Johnson provided invaluable insights for our startup. Her strategy recommendations helped us secure an additional round of funding.",
			ServiceType: "Growth Strategy Package",
		},
		{
			ID:          "rev-2",
			Author:      "Jennifer L.",
			Rating:      5,
			Date:        "2023-11-30",
			Comment:     "Incredibly insightful consultation. Sarah asked the right questions and helped us identify blind spots in our business model.",
			ServiceType: "60-Minute Strategy Session",
		},
		{
			ID:          "rev-3",
			Author:      "Robert K.",
			Rating:      4,
			Date:        "2023-11-18",
			Comment:     "Great session with practical advice we could implement immediately. Would definitely book again.",
			ServiceType: "30-Minute Quick Consultation",
		},
		{
			ID:          "rev-4",
			Author:      "Lisa M.",
			Rating:      5,
			Date:        "2023-10-25",
			Comment:     "Sarah's comprehensive analysis of our market position was eye-opening. Her recommendations have already increased our sales by 22%.",
			ServiceType: "Market Analysis Package",
		},
	},
	Languages:         []string{"English", "Spanish"},
	YearsOfExperience: 12,
}
