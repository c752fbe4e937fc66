package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"flexzone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// 2024-01-01 was a Monday
var monday = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.Local)

func TestParseAvailability(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		kind     models.AvailabilityKind
		schedule map[string]bool
	}{
		{
			name:     "object",
			payload:  `{"monday": true, "tuesday": false}`,
			kind:     models.AvailabilityParsed,
			schedule: map[string]bool{"monday": true, "tuesday": false},
		},
		{
			name:     "serialized string",
			payload:  `"{\"monday\": true, \"friday\": true}"`,
			kind:     models.AvailabilityRaw,
			schedule: map[string]bool{"monday": true, "friday": true},
		},
		{
			name:     "null",
			payload:  `null`,
			kind:     models.AvailabilityMissing,
			schedule: map[string]bool{},
		},
		{
			name:     "empty string",
			payload:  `""`,
			kind:     models.AvailabilityMissing,
			schedule: map[string]bool{},
		},
		{
			name:     "string that is not json",
			payload:  `"mon-fri 9 to 5"`,
			kind:     models.AvailabilityInvalid,
			schedule: map[string]bool{},
		},
		{
			name:     "non boolean values",
			payload:  `{"monday": "yes"}`,
			kind:     models.AvailabilityInvalid,
			schedule: map[string]bool{},
		},
		{
			name:     "array",
			payload:  `["monday"]`,
			kind:     models.AvailabilityInvalid,
			schedule: map[string]bool{},
		},
		{
			name:     "number",
			payload:  `42`,
			kind:     models.AvailabilityInvalid,
			schedule: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			availability := models.ParseAvailability([]byte(tt.payload))
			assert.Equal(t, tt.kind, availability.Kind())
			assert.Equal(t, tt.schedule, availability.Schedule())
			if tt.kind == models.AvailabilityInvalid {
				assert.Error(t, availability.Err())
			} else {
				assert.NoError(t, availability.Err())
			}
		})
	}
}

func TestTrainer_UnmarshalAvailability(t *testing.T) {
	t.Run("field absent", func(t *testing.T) {
		var trainer models.Trainer
		require.NoError(t, json.Unmarshal([]byte(`{"trainer_name": "Asha"}`), &trainer))
		assert.Equal(t, models.AvailabilityMissing, trainer.Availability.Kind())
		assert.False(t, trainer.Availability.AvailableToday(monday))
	})

	t.Run("string field", func(t *testing.T) {
		var trainer models.Trainer
		payload := `{"trainer_name": "Asha", "availability": "{\"monday\":true}", "passport_photo": null}`
		require.NoError(t, json.Unmarshal([]byte(payload), &trainer))
		assert.Equal(t, models.AvailabilityRaw, trainer.Availability.Kind())
		assert.True(t, trainer.Availability.AvailableToday(monday))
		assert.Nil(t, trainer.PassportPhoto)
	})

	t.Run("malformed field does not fail the trainer", func(t *testing.T) {
		var trainer models.Trainer
		payload := `{"trainer_name": "Asha", "availability": "{monday"}`
		require.NoError(t, json.Unmarshal([]byte(payload), &trainer))
		assert.Equal(t, "Asha", trainer.TrainerName)
		assert.Equal(t, models.AvailabilityInvalid, trainer.Availability.Kind())
	})
}

func TestAvailability_AvailableOn(t *testing.T) {
	availability := models.NewAvailability(map[string]bool{
		"monday":    true,
		"wednesday": false,
		"Friday":    true,
	})

	assert.True(t, availability.AvailableOn(time.Monday))
	assert.False(t, availability.AvailableOn(time.Wednesday))
	assert.False(t, availability.AvailableOn(time.Tuesday), "absent key is false")
	assert.False(t, availability.AvailableOn(time.Friday), "keys match exactly")

	assert.True(t, availability.AvailableToday(monday))
	assert.False(t, availability.AvailableToday(monday.AddDate(0, 0, 1)))
}

func TestAvailability_AvailableTodayEveryWeekday(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		name := strings.ToLower(day.Weekday().String())

		availability := models.NewAvailability(map[string]bool{name: true})
		assert.True(t, availability.AvailableToday(day), name)
		assert.False(t, availability.AvailableToday(day.AddDate(0, 0, 1)), name)
	}
}

func TestAvailability_MalformedPayloadsNeverPanic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOf(rapid.Byte()).Draw(t, "payload")
		weekday := time.Weekday(rapid.IntRange(0, 6).Draw(t, "weekday"))

		availability := models.ParseAvailability(payload)
		if availability.Kind() == models.AvailabilityMissing || availability.Kind() == models.AvailabilityInvalid {
			if len(availability.Schedule()) != 0 {
				t.Fatalf("expected empty schedule for %q, got %v", payload, availability.Schedule())
			}
			if availability.AvailableOn(weekday) {
				t.Fatalf("expected unavailable for %q", payload)
			}
		}
	})
}

func TestAvailability_MalformedStringsAreEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.StringMatching(`[a-z ,:]{0,40}`).Draw(t, "raw")

		availability := models.ParseAvailabilityString(raw)
		if len(availability.Schedule()) != 0 {
			t.Fatalf("expected empty schedule for %q", raw)
		}
		if availability.AvailableToday(time.Now()) {
			t.Fatalf("expected unavailable today for %q", raw)
		}
	})
}

func TestAvailability_MarshalRoundTrip(t *testing.T) {
	availability := models.ParseAvailability([]byte(`"{\"sunday\":true}"`))

	data, err := json.Marshal(availability)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sunday": true}`, string(data))

	missing, err := json.Marshal(models.Availability{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(missing))
}
