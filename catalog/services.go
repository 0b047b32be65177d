package catalog

import (
	"fmt"

	"consultly/models"
)

// InMemoryServiceRepo serves the seeded service catalog and FAQ entries.
type InMemoryServiceRepo struct {
	services []models.Service
	faq      []models.FAQItem
}

// NewInMemoryServiceRepo returns a repo seeded with the demo catalog.
func NewInMemoryServiceRepo() *InMemoryServiceRepo {
	return &InMemoryServiceRepo{services: seedServices, faq: seedFAQ}
}

// ListServices returns the full catalog in display order.
func (r *InMemoryServiceRepo) ListServices() ([]models.Service, error) {
	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

// GetServiceByID returns the catalog entry with the given ID.
func (r *InMemoryServiceRepo) GetServiceByID(id string) (*models.Service, error) {
	for _, svc := range r.services {
		if svc.ID == id {
			s := svc
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %q: %w", id, ErrNotFound)
}

// ListFAQ returns FAQ entries applicable to the given service type, or all
// entries when serviceType is empty.
func (r *InMemoryServiceRepo) ListFAQ(serviceType string) ([]models.FAQItem, error) {
	if serviceType == "" {
		out := make([]models.FAQItem, len(r.faq))
		copy(out, r.faq)
		return out, nil
	}
	var out []models.FAQItem
	for _, item := range r.faq {
		if item.AppliesTo(serviceType) {
			out = append(out, item)
		}
	}
	return out, nil
}

var seedServices = []models.Service{
	{
		ID:          "service-1",
		Name:        "15-Minute Quick Consultation",
		Description: "A focused session to address one specific business question or challenge.",
		Duration:    15,
		Price:       40,
		Features: []string{
			"One specific business question",
			"Actionable next steps",
			"Email summary",
		},
		Type: models.ServiceTypeQuick,
	},
	{
		ID:          "service-2",
		Name:        "30-Minute Strategy Session",
		Description: "Dive deeper into a specific area of your business with personalized advice.",
		Duration:    30,
		Price:       75,
		Features: []string{
			"In-depth discussion on one business area",
			"Personalized recommendations",
			"Follow-up email with resources",
			"One week of email support",
		},
		Type: models.ServiceTypeQuick,
	},
	{
		ID:          "service-3",
		Name:        "60-Minute Comprehensive Consultation",
		Description: "A thorough examination of your business strategy with detailed recommendations.",
		Duration:    60,
		Price:       140,
		Features: []string{
			"Comprehensive business discussion",
			"SWOT analysis",
			"Detailed action plan",
			"Two weeks of email support",
			"One follow-up call (15 min)",
		},
		Popular: true,
		Type:    models.ServiceTypeQuick,
	},
	{
		ID:          "service-4",
		Name:        "Growth Strategy Package",
		Description: "A complete business growth strategy developed over multiple sessions.",
		Duration:    180, // 3 hours total across multiple sessions
		Price:       450,
		Features: []string{
			"Three 60-minute sessions",
			"Comprehensive market analysis",
			"Competitive positioning",
			"Detailed growth roadmap",
			"Implementation plan",
			"One month of email support",
			"Two follow-up calls (30 min each)",
		},
		Type: models.ServiceTypePackage,
	},
	{
		ID:          "service-5",
		Name:        "Market Entry Package",
		Description: "Strategic guidance for entering new markets or launching new products.",
		Duration:    240, // 4 hours total across multiple sessions
		Price:       600,
		Features: []string{
			"Four 60-minute sessions",
			"Market opportunity assessment",
			"Target customer analysis",
			"Go-to-market strategy",
			"Risk assessment",
			"Launch timeline",
			"Two months of email support",
			"Monthly follow-up calls for 3 months",
		},
		Type: models.ServiceTypePackage,
	},
}

var seedFAQ = []models.FAQItem{
	{
		ID:           "faq-1",
		Question:     "How do I prepare for my consultation?",
		Answer:       "To make the most of your session, have a clear goal in mind and prepare any relevant business documents or metrics. For quick sessions, focus on one specific question. For longer consultations, consider sending background information ahead of time.",
		ServiceTypes: []string{"quick", "package"},
	},
	{
		ID:           "faq-2",
		Question:     "What happens if I need to reschedule?",
		Answer:       "You can reschedule your appointment up to 24 hours before the scheduled time at no cost. Cancellations or rescheduling with less than 24 hours notice may incur a fee of 50% of the session cost.",
		ServiceTypes: []string{"quick", "package"},
	},
	{
		ID:           "faq-3",
		Question:     "How is the 15-minute session different from longer consultations?",
		Answer:       "The 15-minute quick consultation is designed to address one very specific business question with actionable advice. It's ideal for focused guidance on a single issue rather than comprehensive business strategy.",
		ServiceTypes: []string{"quick"},
	},
	{
		ID:           "faq-4",
		Question:     "What's included in the follow-up after my session?",
		Answer:       "After your consultation, you'll receive an email summary of key discussion points, recommendations, and agreed-upon next steps. For package consultations, you'll also receive detailed documentation and resources relevant to your business needs.",
		ServiceTypes: []string{"quick", "package"},
	},
	{
		ID:           "faq-5",
		Question:     "How are the package sessions structured?",
		Answer:       "Package consultations are typically spread over 2-4 weeks, allowing time for implementation and assessment between sessions. We'll establish goals and timelines during the first session and adjust as needed throughout the engagement.",
		ServiceTypes: []string{"package"},
	},
	{
		ID:           "faq-6",
		Question:     "What types of businesses do you typically work with?",
		Answer:       "Our experts work with businesses of all sizes, from startups to established enterprises. They have experience across various industries including technology, retail, healthcare, financial services, and manufacturing.",
		ServiceTypes: []string{"quick", "package"},
	},
	{
		ID:           "faq-7",
		Question:     "Do you offer refunds if I'm not satisfied?",
		Answer:       "We stand behind our consultations. If you're not satisfied with your session, please contact us within 3 days, and we'll arrange a complementary follow-up to address your concerns or provide a partial refund.",
		ServiceTypes: []string{"quick", "package"},
	},
	{
		ID:           "faq-8",
		Question:     "How do the multiple sessions work in the packages?",
		Answer:       "For multi-session packages, we'll work with you to schedule sessions at intervals that make sense for your business needs, typically 1-2 weeks apart. This allows time to implement recommendations and gather feedback between sessions.",
		ServiceTypes: []string{"package"},
	},
}
