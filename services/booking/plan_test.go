package booking

import (
	"testing"

	"consultly/models"

	"github.com/stretchr/testify/assert"
)

func TestPlanForServiceInfersSessionCount(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		duration int
		want     int
	}{
		{
			name:     "worded minute-session phrase",
			features: []string{"Three 60-minute sessions", "Detailed growth roadmap"},
			duration: 180,
			want:     3,
		},
		{
			name:     "numeric session phrase",
			features: []string{"4 sessions over video"},
			duration: 240,
			want:     4,
		},
		{
			name:     "worded calls phrase",
			features: []string{"Two calls with the expert"},
			duration: 60,
			want:     2,
		},
		{
			name:     "only first session feature is considered",
			features: []string{"Flexible session scheduling", "Three 60-minute sessions"},
			duration: 120,
			want:     2, // falls back to duration/60
		},
		{
			name:     "no session phrase falls back to duration",
			features: []string{"Comprehensive market analysis"},
			duration: 180,
			want:     3,
		},
		{
			name:     "duration fallback is at least one",
			features: nil,
			duration: 30,
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := models.Service{
				Type:     models.ServiceTypePackage,
				Duration: tt.duration,
				Features: tt.features,
			}
			assert.Equal(t, tt.want, PlanForService(svc).RequiredSessions)
		})
	}
}

func TestPlanForServiceInfersWindowDays(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		want     int
	}{
		{"days phrase", []string{"Valid for 21 days"}, 21},
		{"weeks phrase", []string{"Complete within 4 weeks"}, 28},
		{"months phrase", []string{"2 months of email support"}, 60},
		{"no temporal phrase defaults", []string{"Implementation plan"}, 30},
		{"unparsable temporal phrase defaults", []string{"One month of email support"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := models.Service{Type: models.ServiceTypePackage, Features: tt.features}
			assert.Equal(t, tt.want, PlanForService(svc).WindowDays)
		})
	}
}

func TestPlanForServiceStructuredFieldsWin(t *testing.T) {
	svc := models.Service{
		Type:         models.ServiceTypePackage,
		Duration:     180,
		Features:     []string{"Three 60-minute sessions", "Valid for 21 days"},
		SessionCount: 5,
		WindowDays:   45,
	}

	plan := PlanForService(svc)
	assert.Equal(t, 5, plan.RequiredSessions)
	assert.Equal(t, 45, plan.WindowDays)
}
