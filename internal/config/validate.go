package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus anything the settings
// form should surface.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.API.BaseURL = strings.TrimRight(strings.TrimSpace(out.API.BaseURL), "/")

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.API.BaseURL == "" {
		res.addErr("api.base_url is required")
	} else if !strings.HasPrefix(out.API.BaseURL, "http://") && !strings.HasPrefix(out.API.BaseURL, "https://") {
		res.addErr("api.base_url must start with http:// or https://")
	}

	if out.API.TimeoutSeconds <= 0 {
		res.addErr("api.timeout_seconds must be > 0")
	} else if out.API.TimeoutSeconds > 120 {
		res.addWarn("api.timeout_seconds is very high (%d); lookups will feel stuck.", out.API.TimeoutSeconds)
	}

	if out.API.RequestsPerSecond <= 0 {
		res.addErr("api.requests_per_second must be > 0")
	} else if out.API.RequestsPerSecond > 10 {
		res.addWarn("api.requests_per_second above 10 is likely to hit the upstream rate limit.")
	}

	if out.API.Burst <= 0 {
		res.addErr("api.burst must be > 0")
	}

	return out, res
}
