// Package constants holds configuration values shared across layers.
package constants

// Deployment environments (config env.env).
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers (config pubsub.provider).
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail transports (config mail.transport).
const (
	MailTransportNoop  = "noop"
	MailTransportSMTP  = "smtp"
	MailTransportQueue = "queue"
)
