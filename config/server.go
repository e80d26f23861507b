package config

type Envelope struct {
	Server   Server   `yaml:"server"`
	Detector Detector `yaml:"detector"`
	Limits   Limits   `yaml:"limits"`
}

type Server struct {
	Address string   `yaml:"address"`
	Tokens  []string `yaml:"tokens"`
}

type Limits struct {
	// BodyBytes truncates request bodies
	BodyBytes int64 `yaml:"body_bytes"`
	// LogEvery logs throughput after this many processed objects
	LogEvery int `yaml:"log_every"`
}
