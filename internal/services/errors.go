package services

// Custom errors. Message is safe to show to the client; Cause stays in logs.

type InvalidInputError struct{ Message string }

func (e *InvalidInputError) Error() string { return e.Message }

type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

type ConfigError struct {
	Message string
	Missing string
}

func (e *ConfigError) Error() string { return e.Message }

type DeliveryError struct {
	Message string
	Cause   error
}

func (e *DeliveryError) Error() string { return e.Message }

func (e *DeliveryError) Unwrap() error { return e.Cause }
