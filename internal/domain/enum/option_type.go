package enum

// OptionType classifies a product option
type OptionType string

const (
	OptionTypeSize        OptionType = "size"
	OptionTypeTemperature OptionType = "temperature"
)

// IsValid reports whether the option type is a known value
func (t OptionType) IsValid() bool {
	return t == OptionTypeSize || t == OptionTypeTemperature
}
