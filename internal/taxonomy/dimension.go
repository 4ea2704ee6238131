package taxonomy

// Dimension names one axis of the taxonomy. The set is closed.
type Dimension string

func (d Dimension) String() string { return string(d) }

const (
	DimDataLink                 Dimension = "dataLink"
	DimFunctionalRole           Dimension = "functionalRole"
	DimSynchronizationFrequency Dimension = "synchronizationFrequency"
	DimIntelligenceLevel        Dimension = "intelligenceLevel"
	DimModelGranularity         Dimension = "modelGranularity"
	DimDataArchitecture         Dimension = "dataArchitecture"
	DimInterfaceTypes           Dimension = "interfaceTypes"
	DimLifecyclePositioning     Dimension = "lifecyclePositioning"
	DimApplicationDomain        Dimension = "applicationDomain"
	DimSecurityIntegration      Dimension = "cyberPhysicalSecurityIntegration"
)

type dimensionInfo struct {
	label    string
	multiple bool
	options  []Option
}

var dimensionOrder = []Dimension{
	DimDataLink,
	DimFunctionalRole,
	DimSynchronizationFrequency,
	DimIntelligenceLevel,
	DimModelGranularity,
	DimDataArchitecture,
	DimInterfaceTypes,
	DimLifecyclePositioning,
	DimApplicationDomain,
	DimSecurityIntegration,
}

var dimensionTable = map[Dimension]dimensionInfo{
	DimDataLink:                 {label: "Data Link", options: dataLinks.options()},
	DimFunctionalRole:           {label: "Functional Role", multiple: true, options: functionalRoles.options()},
	DimSynchronizationFrequency: {label: "Synchronization Frequency", options: synchronizationFrequencies.options()},
	DimIntelligenceLevel:        {label: "Intelligence Level", options: intelligenceLevels.options()},
	DimModelGranularity:         {label: "Model Granularity", options: modelGranularities.options()},
	DimDataArchitecture:         {label: "Data Architecture", options: dataArchitectures.options()},
	DimInterfaceTypes:           {label: "Interface Types", multiple: true, options: interfaceTypes.options()},
	DimLifecyclePositioning:     {label: "Lifecycle Positioning", options: lifecyclePositionings.options()},
	DimApplicationDomain:        {label: "Application Domain", multiple: true, options: applicationDomains.options()},
	DimSecurityIntegration:      {label: "Cyber-Physical Security Integration", multiple: true, options: securityIntegrations.options()},
}

// Dimensions returns the ten dimensions in their fixed order. The returned
// slice is a copy.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensionOrder))
	copy(out, dimensionOrder)
	return out
}

// ParseDimension resolves a dimension key. ok is false for names outside the
// vocabulary.
func ParseDimension(s string) (Dimension, bool) {
	d := Dimension(s)
	_, ok := dimensionTable[d]
	return d, ok
}

// Known reports whether d belongs to the vocabulary.
func (d Dimension) Known() bool {
	_, ok := dimensionTable[d]
	return ok
}

// Label returns the display name, or the raw key for unknown dimensions.
func (d Dimension) Label() string {
	if info, ok := dimensionTable[d]; ok {
		return info.label
	}
	return string(d)
}

// Multiple reports whether the dimension allows several values at once.
func (d Dimension) Multiple() bool {
	return dimensionTable[d].multiple
}

// Options lists the allowed values in their fixed order.
func (d Dimension) Options() []Option {
	info := dimensionTable[d]
	out := make([]Option, len(info.options))
	copy(out, info.options)
	return out
}
