package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SlotsConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*SlotsConfig) {}},
		{name: "close before open", mutate: func(c *SlotsConfig) { c.CloseTime = "08:00" }, wantErr: true},
		{name: "bad open", mutate: func(c *SlotsConfig) { c.OpenTime = "9am" }, wantErr: true},
		{name: "zero duration", mutate: func(c *SlotsConfig) { c.SlotDurationMinutes = 0 }, wantErr: true},
		{name: "negative step", mutate: func(c *SlotsConfig) { c.StepMinutes = -5 }, wantErr: true},
		{name: "negative notice", mutate: func(c *SlotsConfig) { c.MinBookingNoticeMinutes = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSlotsConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlotsConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFreeSlot_IsFree(t *testing.T) {
	slot := FreeSlot{Range: mustRange(t, "09:00", "10:00")}
	assert.True(t, slot.IsFree())

	slot.BlockedBy = &Appointment{ClientName: "Ann"}
	assert.False(t, slot.IsFree())
}
