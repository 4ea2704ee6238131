package taxonomy

// Values of each dimension. The zero value of every type means "unset".

type DataLink int

const (
	OneDirectional DataLink = iota + 1
	BiDirectional
	ClosedLoopActuation
)

var dataLinks = vocabulary[DataLink]{
	name: "dataLink",
	keys: []string{"OneDirectional", "BiDirectional", "ClosedLoopActuation"},
	labels: []string{
		"One-directional",
		"Bi-directional",
		"Closed-loop actuation",
	},
}

func (d DataLink) String() string { return dataLinks.key(d) }
func (d DataLink) Label() string { return dataLinks.label(d) }
func (d DataLink) MarshalText() ([]byte, error) { return dataLinks.marshal(d) }
func (d *DataLink) UnmarshalText(b []byte) error { return dataLinks.unmarshal(d, b) }

type FunctionalRole int

const (
	MonitoringAndVisualization FunctionalRole = iota + 1
	PredictiveAnalysisAndForecasting
	OperationalControl
	StrategicDecisionSupport
	CybersecurityAndThreatDetection
)

var functionalRoles = vocabulary[FunctionalRole]{
	name: "functionalRole",
	keys: []string{"MonitoringAndVisualization", "PredictiveAnalysisAndForecasting", "OperationalControl", "StrategicDecisionSupport", "CybersecurityAndThreatDetection"},
	labels: []string{
		"Monitoring and Visualization",
		"Predictive Analysis and Forecasting",
		"Operational Control",
		"Strategic Decision Support",
		"Cybersecurity and Threat Detection",
	},
}

func (f FunctionalRole) String() string { return functionalRoles.key(f) }
func (f FunctionalRole) Label() string { return functionalRoles.label(f) }
func (f FunctionalRole) MarshalText() ([]byte, error) { return functionalRoles.marshal(f) }
func (f *FunctionalRole) UnmarshalText(b []byte) error { return functionalRoles.unmarshal(f, b) }

type SynchronizationFrequency int

const (
	RealTime SynchronizationFrequency = iota + 1
	NearRealTime
	BatchUpdates
	Asynchronous
)

var synchronizationFrequencies = vocabulary[SynchronizationFrequency]{
	name: "synchronizationFrequency",
	keys: []string{"RealTime", "NearRealTime", "BatchUpdates", "Asynchronous"},
	labels: []string{
		"Real-time",
		"Near real-time",
		"Batch updates",
		"Asynchronous",
	},
}

func (s SynchronizationFrequency) String() string { return synchronizationFrequencies.key(s) }
func (s SynchronizationFrequency) Label() string { return synchronizationFrequencies.label(s) }
func (s SynchronizationFrequency) MarshalText() ([]byte, error) { return synchronizationFrequencies.marshal(s) }
func (s *SynchronizationFrequency) UnmarshalText(b []byte) error { return synchronizationFrequencies.unmarshal(s, b) }

type IntelligenceLevel int

const (
	StaticModel IntelligenceLevel = iota + 1
	DataDrivenAdaptiveModel
	SelfLearningDT
	CognitiveDT
)

var intelligenceLevels = vocabulary[IntelligenceLevel]{
	name: "intelligenceLevel",
	keys: []string{"StaticModel", "DataDrivenAdaptiveModel", "SelfLearningDT", "CognitiveDT"},
	labels: []string{
		"Static Model",
		"Data-driven adaptive model",
		"Self-learning DT",
		"Cognitive DT",
	},
}

func (i IntelligenceLevel) String() string { return intelligenceLevels.key(i) }
func (i IntelligenceLevel) Label() string { return intelligenceLevels.label(i) }
func (i IntelligenceLevel) MarshalText() ([]byte, error) { return intelligenceLevels.marshal(i) }
func (i *IntelligenceLevel) UnmarshalText(b []byte) error { return intelligenceLevels.unmarshal(i, b) }

type ModelGranularity int

const (
	ComponentLevel ModelGranularity = iota + 1
	SystemLevel
	EnterpriseLevel
	MultiLayered
)

var modelGranularities = vocabulary[ModelGranularity]{
	name: "modelGranularity",
	keys: []string{"ComponentLevel", "SystemLevel", "EnterpriseLevel", "MultiLayered"},
	labels: []string{
		"Component-level",
		"System-level",
		"Enterprise-level",
		"Multi-layered",
	},
}

func (m ModelGranularity) String() string { return modelGranularities.key(m) }
func (m ModelGranularity) Label() string { return modelGranularities.label(m) }
func (m ModelGranularity) MarshalText() ([]byte, error) { return modelGranularities.marshal(m) }
func (m *ModelGranularity) UnmarshalText(b []byte) error { return modelGranularities.unmarshal(m, b) }

type DataArchitecture int

const (
	EdgeBasedProcessing DataArchitecture = iota + 1
	CloudIntegratedDT
	FederatedDTArchitecture
	BlockchainEnabledDataGovernance
)

var dataArchitectures = vocabulary[DataArchitecture]{
	name: "dataArchitecture",
	keys: []string{"EdgeBasedProcessing", "CloudIntegratedDT", "FederatedDTArchitecture", "BlockchainEnabledDataGovernance"},
	labels: []string{
		"Edge-based processing",
		"Cloud-integrated DT",
		"Federated DT architecture",
		"Blockchain-enabled data governance",
	},
}

func (d DataArchitecture) String() string { return dataArchitectures.key(d) }
func (d DataArchitecture) Label() string { return dataArchitectures.label(d) }
func (d DataArchitecture) MarshalText() ([]byte, error) { return dataArchitectures.marshal(d) }
func (d *DataArchitecture) UnmarshalText(b []byte) error { return dataArchitectures.unmarshal(d, b) }

type InterfaceType int

const (
	HumanMachine InterfaceType = iota + 1
	MachineMachine
	MultiAgentInteraction
)

var interfaceTypes = vocabulary[InterfaceType]{
	name: "interfaceTypes",
	keys: []string{"HumanMachine", "MachineMachine", "MultiAgentInteraction"},
	labels: []string{
		"Human-machine",
		"Machine-machine",
		"Multi-agent interaction",
	},
}

func (i InterfaceType) String() string { return interfaceTypes.key(i) }
func (i InterfaceType) Label() string { return interfaceTypes.label(i) }
func (i InterfaceType) MarshalText() ([]byte, error) { return interfaceTypes.marshal(i) }
func (i *InterfaceType) UnmarshalText(b []byte) error { return interfaceTypes.unmarshal(i, b) }

type LifecyclePositioning int

const (
	DTBeforePhysical LifecyclePositioning = iota + 1
	SimultaneousDevelopment
	DTAfterPhysical
	LifecycleIntegratedDT
)

var lifecyclePositionings = vocabulary[LifecyclePositioning]{
	name: "lifecyclePositioning",
	keys: []string{"DTBeforePhysical", "SimultaneousDevelopment", "DTAfterPhysical", "LifecycleIntegratedDT"},
	labels: []string{
		"DT-before physical",
		"Simultaneous development",
		"DT-after physical",
		"Lifecycle-integrated DT",
	},
}

func (l LifecyclePositioning) String() string { return lifecyclePositionings.key(l) }
func (l LifecyclePositioning) Label() string { return lifecyclePositionings.label(l) }
func (l LifecyclePositioning) MarshalText() ([]byte, error) { return lifecyclePositionings.marshal(l) }
func (l *LifecyclePositioning) UnmarshalText(b []byte) error { return lifecyclePositionings.unmarshal(l, b) }

type ApplicationDomain int

const (
	Generation ApplicationDomain = iota + 1
	Transmission
	Distribution
	MicrogridDERIntegration
	DemandResponse
	EnergyMarketModeling
)

var applicationDomains = vocabulary[ApplicationDomain]{
	name: "applicationDomain",
	keys: []string{"Generation", "Transmission", "Distribution", "MicrogridDERIntegration", "DemandResponse", "EnergyMarketModeling"},
	labels: []string{
		"Generation",
		"Transmission",
		"Distribution",
		"Microgrid/DER integration",
		"Demand response",
		"Energy market modeling",
	},
}

func (a ApplicationDomain) String() string { return applicationDomains.key(a) }
func (a ApplicationDomain) Label() string { return applicationDomains.label(a) }
func (a ApplicationDomain) MarshalText() ([]byte, error) { return applicationDomains.marshal(a) }
func (a *ApplicationDomain) UnmarshalText(b []byte) error { return applicationDomains.unmarshal(a, b) }

type SecurityIntegration int

const (
	PassiveMonitoring SecurityIntegration = iota + 1
	ActiveDefence
	ResilienceTestingAndRecoveryPlanning
)

var securityIntegrations = vocabulary[SecurityIntegration]{
	name: "cyberPhysicalSecurityIntegration",
	keys: []string{"PassiveMonitoring", "ActiveDefence", "ResilienceTestingAndRecoveryPlanning"},
	labels: []string{
		"Passive monitoring",
		"Active defence",
		"Resilience testing & recovery planning",
	},
}

func (s SecurityIntegration) String() string { return securityIntegrations.key(s) }
func (s SecurityIntegration) Label() string { return securityIntegrations.label(s) }
func (s SecurityIntegration) MarshalText() ([]byte, error) { return securityIntegrations.marshal(s) }
func (s *SecurityIntegration) UnmarshalText(b []byte) error { return securityIntegrations.unmarshal(s, b) }
