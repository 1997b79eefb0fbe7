package domain

// Configuration is the on-disk scenario file.
type Configuration struct {
	Scenario ScenarioConfig `yaml:"scenario" json:"scenario"`
	Output   OutputConfig   `yaml:"output,omitempty" json:"output,omitempty"`
}

// ScenarioConfig holds the raw, human-entered simulation parameters. Amounts and
// rates stay strings until parsed so that no binary floating point is involved.
type ScenarioConfig struct {
	Principal          string `yaml:"principal" json:"principal"`                     // e.g. "$10,000.00"
	AnnualContribution string `yaml:"annual_contribution" json:"annual_contribution"` // e.g. "500"
	GrowthRatePercent  string `yaml:"growth_rate_percent" json:"growth_rate_percent"` // e.g. "7.5"
	TaxRatePercent     string `yaml:"tax_rate_percent" json:"tax_rate_percent"`       // e.g. "24"
	Years              int    `yaml:"years" json:"years"`
}

// OutputConfig controls where and how reports are written.
type OutputConfig struct {
	CSVPath string   `yaml:"csv_path,omitempty" json:"csv_path,omitempty"`
	Formats []string `yaml:"formats,omitempty" json:"formats,omitempty"`
}
