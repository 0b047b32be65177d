package booking

// FlowOptions captures what a layout variant changes about the wizard. The
// original page compositions were eight near-duplicate layouts of the same
// linear flow; the only behavioural difference is whether package services go
// through the multi-slot calendar instead of the single-slot schedule step.
type FlowOptions struct {
	Name             string `json:"name"`
	PackageMultiSlot bool   `json:"packageMultiSlot"`
}

// DefaultVariant mirrors the page the original application actually mounts.
const DefaultVariant = "package-calendar"

var flowVariants = map[string]FlowOptions{
	// Single linear calendar for every service type.
	"standard": {Name: "standard", PackageMultiSlot: false},
	// Packages require N slot selections via the multi-slot calendar.
	"package-calendar": {Name: "package-calendar", PackageMultiSlot: true},
}

// VariantOptions resolves a variant name, falling back to the default for
// unknown or empty names.
func VariantOptions(name string) FlowOptions {
	if opts, ok := flowVariants[name]; ok {
		return opts
	}
	return flowVariants[DefaultVariant]
}
