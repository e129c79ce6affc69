package config

// Commonsfile represents the structure of the commons.yaml configuration file.
type Commonsfile struct {
	Version string    `yaml:"version"`
	Code    CodeDTO   `yaml:"code"`
	Number  NumberDTO `yaml:"number"`
	Text    TextDTO   `yaml:"text"`
}

// CodeDTO configures random code generation.
type CodeDTO struct {
	Length   int    `yaml:"length"`
	Alphabet string `yaml:"alphabet"`
}

// NumberDTO configures number formatting.
type NumberDTO struct {
	Pattern           string `yaml:"pattern"`
	DecimalSeparator  string `yaml:"decimalSeparator"`
	GroupingSeparator string `yaml:"groupingSeparator"`
}

// TextDTO configures text transformations.
type TextDTO struct {
	Delimiters string `yaml:"delimiters"`
}
