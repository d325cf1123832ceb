// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the `env` and `envPrefix` tags, e.g. App.SessionSignKey is read from
// APP_SESSION_SIGN_KEY. Unset variables leave the zero value so that later
// sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	parsed, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	*cfg = parsed
	return nil
}
