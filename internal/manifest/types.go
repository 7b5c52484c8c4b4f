package manifest

// ProviderManifest represents a provider.yaml manifest file
type ProviderManifest struct {
	APIVersion  string `yaml:"apiVersion" json:"apiVersion"`
	Kind        string `yaml:"kind" json:"kind"`
	Name        string `yaml:"name" json:"name"`
	DisplayName string `yaml:"display-name,omitempty" json:"displayName,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Integrations    []Integration    `yaml:"integrations" json:"integrations"`
	Operators       []Binding        `yaml:"operators,omitempty" json:"operators,omitempty"`
	Hooks           []Binding        `yaml:"hooks,omitempty" json:"hooks,omitempty"`
	Sensors         []Binding        `yaml:"sensors,omitempty" json:"sensors,omitempty"`
	Transfers       []Transfer       `yaml:"transfers,omitempty" json:"transfers,omitempty"`
	ConnectionTypes []ConnectionType `yaml:"connection-types,omitempty" json:"connectionTypes,omitempty"`
	SecretsBackends []Binding        `yaml:"secrets-backends,omitempty" json:"secretsBackends,omitempty"`
	Logging         []Binding        `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// Integration describes a single external system exposed by the provider
type Integration struct {
	Name           string   `yaml:"integration-name" json:"integrationName"`
	DisplayName    string   `yaml:"display-name,omitempty" json:"displayName,omitempty"`
	ExternalDocURL string   `yaml:"external-doc-url,omitempty" json:"externalDocURL,omitempty"`
	Logo           string   `yaml:"logo,omitempty" json:"logo,omitempty"`
	HowToGuides    []string `yaml:"how-to-guide,omitempty" json:"howToGuides,omitempty"`
	Tags           []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Binding associates an integration with the modules implementing one
// capability kind. A deprecated module name is kept as an alias of its
// replacement rather than as an independent entry.
type Binding struct {
	Integration string   `yaml:"integration-name" json:"integrationName"`
	Modules     []string `yaml:"modules" json:"modules"`
	Deprecated  []Alias  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Alias maps a deprecated module reference to its current replacement
type Alias struct {
	Module       string `yaml:"module" json:"module"`
	SupersededBy string `yaml:"superseded-by" json:"supersededBy"`
}

// Transfer is a directed capability between two integrations
type Transfer struct {
	Source string `yaml:"source-integration-name" json:"sourceIntegrationName"`
	Target string `yaml:"target-integration-name" json:"targetIntegrationName"`
	Module string `yaml:"module" json:"module"`
}

// ConnectionType maps a credential/connection tag to the hook handling it
type ConnectionType struct {
	ConnectionType string `yaml:"connection-type" json:"connectionType"`
	Hook           string `yaml:"hook" json:"hook"`
}
