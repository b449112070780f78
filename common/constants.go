package common

const (
	ProgramFileExtension = ".clite.yaml"
	ConfigFileName       = "clite.toml"
	CliteVersion         = "0.1.0"
)
