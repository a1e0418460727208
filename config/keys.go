package config

const (
	delimiter = "."

	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"

	KeyMetricsPrefix    = "metrics"
	KeyMetricsEnabled   = KeyMetricsPrefix + delimiter + "enabled"
	KeyMetricsNamespace = KeyMetricsPrefix + delimiter + "namespace"
)
