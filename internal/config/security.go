package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SecurityPolicy holds the password policy and token lifetime.
type SecurityPolicy struct {
	MinPasswordLength int
	WeakPasswords     []string
	TokenTTL          time.Duration
}

// securityFile is the on-disk YAML shape of the security policy.
type securityFile struct {
	Security struct {
		Auth struct {
			Basic struct {
				MinPasswordLength int      `yaml:"min_password_length"`
				WeakPasswords     []string `yaml:"weak_passwords"`
			} `yaml:"basic"`
		} `yaml:"auth"`
		JWT struct {
			ExpiryHours int `yaml:"expiry_hours"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// DefaultSecurityPolicy returns the policy used when no config file is present.
func DefaultSecurityPolicy() SecurityPolicy {
	return SecurityPolicy{
		MinPasswordLength: 8,
		WeakPasswords:     []string{"password", "12345678", "qwerty123"},
		TokenTTL:          time.Hour,
	}
}

// LoadSecurityPolicy loads the security policy from a YAML file.
// A missing file is not an error; the defaults apply.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadSecurityPolicy(path string) (SecurityPolicy, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSecurityPolicy(), nil
		}
		return SecurityPolicy{}, fmt.Errorf("failed to read security config: %w", err)
	}

	var file securityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return SecurityPolicy{}, fmt.Errorf("failed to parse security config: %w", err)
	}

	policy := DefaultSecurityPolicy()
	if file.Security.Auth.Basic.MinPasswordLength > 0 {
		policy.MinPasswordLength = file.Security.Auth.Basic.MinPasswordLength
	}
	if file.Security.Auth.Basic.WeakPasswords != nil {
		policy.WeakPasswords = file.Security.Auth.Basic.WeakPasswords
	}
	if file.Security.JWT.ExpiryHours > 0 {
		policy.TokenTTL = time.Duration(file.Security.JWT.ExpiryHours) * time.Hour
	}

	if err := validateSecurityPolicy(policy); err != nil {
		return SecurityPolicy{}, fmt.Errorf("security config validation failed: %w", err)
	}

	return policy, nil
}

func validateSecurityPolicy(policy SecurityPolicy) error {
	if policy.MinPasswordLength < 8 {
		return fmt.Errorf("min_password_length must be at least 8")
	}
	if policy.TokenTTL <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}
	return nil
}
