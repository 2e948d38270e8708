package request

import (
	"time"

	"bankagent/internal/config"
)

func ledgerConfig() config.LedgerConfig {
	return config.LedgerConfig{HTTPTimeout: 5 * time.Second}
}
