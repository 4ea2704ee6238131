package taxonomy

import (
	"errors"
	"fmt"
	"slices"
)

// Taxonomy holds the selections of one digital twin configuration. The zero
// value has every dimension unset.
//
// Treat a Taxonomy as a value: With and Toggle return a new Taxonomy with one
// field replaced and never share slices with the receiver.
type Taxonomy struct {
	DataLink                 DataLink                 `json:"dataLink,omitempty" yaml:"dataLink,omitempty"`
	FunctionalRole           []FunctionalRole         `json:"functionalRole" yaml:"functionalRole,omitempty"`
	SynchronizationFrequency SynchronizationFrequency `json:"synchronizationFrequency,omitempty" yaml:"synchronizationFrequency,omitempty"`
	IntelligenceLevel        IntelligenceLevel        `json:"intelligenceLevel,omitempty" yaml:"intelligenceLevel,omitempty"`
	ModelGranularity         ModelGranularity         `json:"modelGranularity,omitempty" yaml:"modelGranularity,omitempty"`
	DataArchitecture         DataArchitecture         `json:"dataArchitecture,omitempty" yaml:"dataArchitecture,omitempty"`
	InterfaceTypes           []InterfaceType          `json:"interfaceTypes" yaml:"interfaceTypes,omitempty"`
	LifecyclePositioning     LifecyclePositioning     `json:"lifecyclePositioning,omitempty" yaml:"lifecyclePositioning,omitempty"`
	ApplicationDomain        []ApplicationDomain      `json:"applicationDomain" yaml:"applicationDomain,omitempty"`
	SecurityIntegration      []SecurityIntegration    `json:"cyberPhysicalSecurityIntegration" yaml:"cyberPhysicalSecurityIntegration,omitempty"`
}

// Clone returns a deep copy.
func (t Taxonomy) Clone() Taxonomy {
	t.FunctionalRole = slices.Clone(t.FunctionalRole)
	t.InterfaceTypes = slices.Clone(t.InterfaceTypes)
	t.ApplicationDomain = slices.Clone(t.ApplicationDomain)
	t.SecurityIntegration = slices.Clone(t.SecurityIntegration)
	return t
}

// With returns a copy of t where dimension d holds exactly the given values
// (keys or labels). Passing no value unsets a single-select dimension or
// empties a multi-select one. Duplicates are dropped.
func (t Taxonomy) With(d Dimension, values ...string) (Taxonomy, error) {
	next := t.Clone()
	var err error
	switch d {
	case DimDataLink:
		next.DataLink, err = dataLinks.parseOne(values)
	case DimFunctionalRole:
		next.FunctionalRole, err = functionalRoles.parseSet(values)
	case DimSynchronizationFrequency:
		next.SynchronizationFrequency, err = synchronizationFrequencies.parseOne(values)
	case DimIntelligenceLevel:
		next.IntelligenceLevel, err = intelligenceLevels.parseOne(values)
	case DimModelGranularity:
		next.ModelGranularity, err = modelGranularities.parseOne(values)
	case DimDataArchitecture:
		next.DataArchitecture, err = dataArchitectures.parseOne(values)
	case DimInterfaceTypes:
		next.InterfaceTypes, err = interfaceTypes.parseSet(values)
	case DimLifecyclePositioning:
		next.LifecyclePositioning, err = lifecyclePositionings.parseOne(values)
	case DimApplicationDomain:
		next.ApplicationDomain, err = applicationDomains.parseSet(values)
	case DimSecurityIntegration:
		next.SecurityIntegration, err = securityIntegrations.parseSet(values)
	default:
		return t, fmt.Errorf("unknown dimension %q", d)
	}
	if err != nil {
		return t, err
	}
	return next, nil
}

// Toggle flips one value of a multi-select dimension. For a single-select
// dimension it sets the value, or unsets it when it is already selected.
func (t Taxonomy) Toggle(d Dimension, value string) (Taxonomy, error) {
	next := t.Clone()
	switch d {
	case DimDataLink:
		return toggleOne(t, d, value, next.DataLink.String())
	case DimSynchronizationFrequency:
		return toggleOne(t, d, value, next.SynchronizationFrequency.String())
	case DimIntelligenceLevel:
		return toggleOne(t, d, value, next.IntelligenceLevel.String())
	case DimModelGranularity:
		return toggleOne(t, d, value, next.ModelGranularity.String())
	case DimDataArchitecture:
		return toggleOne(t, d, value, next.DataArchitecture.String())
	case DimLifecyclePositioning:
		return toggleOne(t, d, value, next.LifecyclePositioning.String())
	case DimFunctionalRole:
		x, err := functionalRoles.parse(value)
		if err != nil {
			return t, err
		}
		next.FunctionalRole = toggle(next.FunctionalRole, x)
	case DimInterfaceTypes:
		x, err := interfaceTypes.parse(value)
		if err != nil {
			return t, err
		}
		next.InterfaceTypes = toggle(next.InterfaceTypes, x)
	case DimApplicationDomain:
		x, err := applicationDomains.parse(value)
		if err != nil {
			return t, err
		}
		next.ApplicationDomain = toggle(next.ApplicationDomain, x)
	case DimSecurityIntegration:
		x, err := securityIntegrations.parse(value)
		if err != nil {
			return t, err
		}
		next.SecurityIntegration = toggle(next.SecurityIntegration, x)
	default:
		return t, fmt.Errorf("unknown dimension %q", d)
	}
	return next, nil
}

func toggleOne(t Taxonomy, d Dimension, value, current string) (Taxonomy, error) {
	next, err := t.With(d, value)
	if err != nil {
		return t, err
	}
	// selecting the current value again clears it
	if sel := next.Selected(d); current != "" && len(sel) == 1 && sel[0] == current {
		return t.With(d)
	}
	return next, nil
}

// Selected returns the keys currently chosen for d, in selection order.
func (t Taxonomy) Selected(d Dimension) []string {
	one := func(s string) []string {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	switch d {
	case DimDataLink:
		return one(t.DataLink.String())
	case DimFunctionalRole:
		return keysOf(functionalRoles, t.FunctionalRole)
	case DimSynchronizationFrequency:
		return one(t.SynchronizationFrequency.String())
	case DimIntelligenceLevel:
		return one(t.IntelligenceLevel.String())
	case DimModelGranularity:
		return one(t.ModelGranularity.String())
	case DimDataArchitecture:
		return one(t.DataArchitecture.String())
	case DimInterfaceTypes:
		return keysOf(interfaceTypes, t.InterfaceTypes)
	case DimLifecyclePositioning:
		return one(t.LifecyclePositioning.String())
	case DimApplicationDomain:
		return keysOf(applicationDomains, t.ApplicationDomain)
	case DimSecurityIntegration:
		return keysOf(securityIntegrations, t.SecurityIntegration)
	}
	return nil
}

// IsEmpty reports whether nothing has been selected on any dimension.
func (t Taxonomy) IsEmpty() bool {
	for _, d := range dimensionOrder {
		if len(t.Selected(d)) > 0 {
			return false
		}
	}
	return true
}

// Normalize returns a copy with duplicate multi-select values removed.
func (t Taxonomy) Normalize() Taxonomy {
	t.FunctionalRole = dedup(t.FunctionalRole)
	t.InterfaceTypes = dedup(t.InterfaceTypes)
	t.ApplicationDomain = dedup(t.ApplicationDomain)
	t.SecurityIntegration = dedup(t.SecurityIntegration)
	return t
}

// Validate reports out-of-range values and duplicate selections.
func (t Taxonomy) Validate() error {
	return errors.Join(
		dataLinks.checkOne(t.DataLink),
		functionalRoles.checkSet(t.FunctionalRole),
		synchronizationFrequencies.checkOne(t.SynchronizationFrequency),
		intelligenceLevels.checkOne(t.IntelligenceLevel),
		modelGranularities.checkOne(t.ModelGranularity),
		dataArchitectures.checkOne(t.DataArchitecture),
		interfaceTypes.checkSet(t.InterfaceTypes),
		lifecyclePositionings.checkOne(t.LifecyclePositioning),
		applicationDomains.checkSet(t.ApplicationDomain),
		securityIntegrations.checkSet(t.SecurityIntegration),
	)
}
