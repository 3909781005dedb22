package spec

type (
	// Config is the top level shape of a declaration file. Hostname and
	// Port, when present, override the environment defaults.
	Config struct {
		Hostname  string     `json:"hostname" yaml:"hostname"`
		Port      int        `json:"port" yaml:"port"`
		Responses []Response `json:"responses" yaml:"responses"`
	}

	// Response declares one canned answer. Headers is an ordered list of
	// single-key maps so the declared emission order survives decoding.
	// Delay is in seconds and may be fractional. A Body starting with
	// "@file://" names a file to serve instead of inline text.
	Response struct {
		Method       string              `json:"method" yaml:"method"`
		Path         string              `json:"path" yaml:"path"`
		ResponseCode int                 `json:"responseCode" yaml:"responseCode"`
		Headers      []map[string]string `json:"headers" yaml:"headers"`
		Body         string              `json:"body" yaml:"body"`
		Delay        float64             `json:"delay" yaml:"delay"`
	}
)
