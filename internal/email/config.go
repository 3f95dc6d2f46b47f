package email

// Config holds the operator identity used by the fixed notification flows.
// OperatorEmail receives the internal copy of portfolio contacts and appears
// as the reachable address inside the acknowledgement template.
type Config struct {
	OperatorEmail string `env:"SYSTEM_EMAIL,required"`
	OperatorPhone string `env:"SYSTEM_PHONE_NUMBER" envDefault:"+84 939.260.508"`
}
