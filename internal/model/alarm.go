package model

import (
	"errors"
	"fmt"
	"time"
)

type AlarmKind string

const (
	AlarmKindTime     AlarmKind = "time"
	AlarmKindLocation AlarmKind = "location"
)

func (k AlarmKind) IsValid() bool {
	switch k {
	case AlarmKindTime, AlarmKindLocation:
		return true
	default:
		return false
	}
}

type Proximity string

const (
	ProximityEnter Proximity = "enter"
	ProximityLeave Proximity = "leave"
	ProximityNone  Proximity = "none"
)

func (p Proximity) IsValid() bool {
	switch p {
	case ProximityEnter, ProximityLeave, ProximityNone:
		return true
	default:
		return false
	}
}

// Alarm is a tagged union over the two alarm kinds the store supports.
// Time alarms use TriggerAt only; location alarms use the geofence fields.
type Alarm struct {
	Kind AlarmKind

	// Time alarm.
	TriggerAt time.Time

	// Location alarm.
	Title        string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Proximity    Proximity
}

// TimeAlarm builds an absolute-time alarm.
func TimeAlarm(at time.Time) Alarm {
	return Alarm{Kind: AlarmKindTime, TriggerAt: at}
}

// LocationAlarm builds a geofence alarm.
func LocationAlarm(title string, lat, lon, radius float64, proximity Proximity) Alarm {
	return Alarm{
		Kind:         AlarmKindLocation,
		Title:        title,
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
		Proximity:    proximity,
	}
}

// HasLocation reports whether the alarm carries a location component.
func (a Alarm) HasLocation() bool {
	return a.Kind == AlarmKindLocation
}

func (a Alarm) Validate() error {
	switch a.Kind {
	case AlarmKindTime:
		if a.TriggerAt.IsZero() {
			return errors.New("model: time alarm trigger is required")
		}
	case AlarmKindLocation:
		if a.RadiusMeters <= 0 {
			return errors.New("model: location alarm radius must be positive")
		}
		if !a.Proximity.IsValid() || a.Proximity == ProximityNone {
			return fmt.Errorf("%w: proximity %q", ErrInvalidEnum, a.Proximity)
		}
	default:
		return fmt.Errorf("%w: alarm kind %q", ErrInvalidEnum, a.Kind)
	}
	return nil
}
