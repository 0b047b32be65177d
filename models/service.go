package models

// ServiceType distinguishes single-meeting services from multi-session packages.
type ServiceType string

const (
	ServiceTypeQuick   ServiceType = "quick"
	ServiceTypePackage ServiceType = "package"
)

// Service is an immutable catalog entry.
//
// SessionCount and WindowDays are the structured form of what the feature
// strings describe; when zero the values are inferred from the features
// (see services/booking plan derivation).
type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    int         `json:"duration"` // total minutes
	Price       float64     `json:"price"`
	Features    []string    `json:"features"`
	Popular     bool        `json:"popular,omitempty"`
	Type        ServiceType `json:"type"`

	SessionCount int `json:"sessionCount,omitempty"`
	WindowDays   int `json:"windowDays,omitempty"`
}

// IsPackage reports whether the service requires multiple sessions.
func (s *Service) IsPackage() bool {
	return s.Type == ServiceTypePackage
}

// FAQItem is a frequently asked question, filterable by service type.
type FAQItem struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	ServiceTypes []string `json:"serviceTypes"`
}

// AppliesTo reports whether the FAQ entry is relevant for the given service type.
func (f *FAQItem) AppliesTo(serviceType string) bool {
	for _, t := range f.ServiceTypes {
		if t == serviceType {
			return true
		}
	}
	return false
}
