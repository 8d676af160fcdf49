// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Structural rules live on the
// derived [ClientConfig] view; nothing to check at this level yet.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
