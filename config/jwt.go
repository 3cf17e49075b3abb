package config

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpiresIn   int    `json:"expires_in" yaml:"expires_in"`     // seconds
	RefreshIn   int    `json:"refresh_in" yaml:"refresh_in"`     // seconds
	BufferTime  int    `json:"buffer_time" yaml:"buffer_time"`   // seconds before expiry to rotate
}
