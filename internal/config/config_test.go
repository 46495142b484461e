package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		validate func(t *testing.T, cfg Config)
	}{
		{
			name: "valores zerados recebem os padrões",
			cfg:  Config{},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, MinSyncWorkers, cfg.AnalyticsSync.Workers)
				assert.Equal(t, MinSyncWorkers, cfg.WarehouseSync.Workers)
				assert.Equal(t, MinSyncQueueSize, cfg.AnalyticsSync.QueueSize)
				assert.Equal(t, MinSyncQueueSize, cfg.WarehouseSync.QueueSize)
				assert.Equal(t, 14, cfg.AnalyticsSync.LookbackDays)
				assert.Equal(t, 6*time.Hour, cfg.ManualSync.MinInterval)
				assert.Equal(t, 10, cfg.Reporting.MaxPeriods)
				assert.Equal(t, 7, cfg.Reporting.MaxPeriodDays)
			},
		},
		{
			name: "workers acima do limite são reduzidos",
			cfg: Config{
				AnalyticsSync: AnalyticsSync{Workers: 50, QueueSize: 500},
				WarehouseSync: WarehouseSync{Workers: 4, QueueSize: 10},
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, MaxSyncWorkers, cfg.AnalyticsSync.Workers)
				assert.Equal(t, 4, cfg.WarehouseSync.Workers)
				assert.Equal(t, 500, cfg.AnalyticsSync.QueueSize)
				assert.Equal(t, MinSyncQueueSize, cfg.WarehouseSync.QueueSize)
			},
		},
		{
			name: "intervalo manual fracionado sobe para a hora seguinte",
			cfg:  Config{ManualSync: ManualSync{MinInterval: 90 * time.Minute}},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 2*time.Hour, cfg.ManualSync.MinInterval)
			},
		},
		{
			name: "intervalo manual em horas inteiras é mantido",
			cfg:  Config{ManualSync: ManualSync{MinInterval: 4 * time.Hour}},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 4*time.Hour, cfg.ManualSync.MinInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Normalize()
			tt.validate(t, cfg)
		})
	}
}
