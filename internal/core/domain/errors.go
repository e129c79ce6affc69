package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned for configuration versions this build does not know.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoInputs is returned when a conversion is requested without input files.
	ErrNoInputs = zerr.New("no input files specified")

	// ErrInputNotFound is returned when an input path or pattern matches no document.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInvalidInputPattern is returned when an input glob pattern is malformed.
	ErrInvalidInputPattern = zerr.New("invalid input pattern")

	// ErrSameInputOutput is returned when a conversion would overwrite its own input.
	ErrSameInputOutput = zerr.New("input and output are the same file")

	// ErrConversionFailed is returned when at least one input could not be converted.
	ErrConversionFailed = zerr.New("conversion failed")

	// ErrDocumentReadFailed is returned when an input document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrDocumentWriteFailed is returned when an output document cannot be written.
	ErrDocumentWriteFailed = zerr.New("failed to write document")

	// ErrStoreReadFailed is returned when the conversion state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read conversion state")

	// ErrStoreWriteFailed is returned when the conversion state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write conversion state")

	// ErrInvalidNumber is returned when a value is not a decimal number.
	ErrInvalidNumber = zerr.New("invalid number")

	// ErrOutputCollision is returned when two inputs would be converted to the same output file.
	ErrOutputCollision = zerr.New("inputs map to the same output file")

	// ErrInvalidArgument is returned when a command line argument cannot be parsed.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrInvalidPage is returned when a page number or page size is below one.
	ErrInvalidPage = zerr.New("page and size must be positive")
)
