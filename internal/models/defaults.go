package models

import "time"

// DefaultScheduleID is the id of the schedule seeded at startup.
const DefaultScheduleID = "df67888a21123f123123ee123"

func defaultLights() []Light {
	return []Light{{
		Identifier: "string",
		State:      LightOn,
		Color:      Color{R: 255, G: 255, B: 255},
		Brightness: 1,
	}}
}

func defaultHeaters() []Heater {
	return []Heater{
		{Name: "A", Level: 0},
		{Name: "B", Level: 0},
		{Name: "C", Level: 0},
	}
}

// DefaultProgram is the preset embedded in the seeded status and schedule.
func DefaultProgram() Program {
	return Program{
		Name:              "string",
		TargetTemperature: 50,
		TimerDuration:     30,
		Lights:            defaultLights(),
		Heaters:           defaultHeaters(),
	}
}

// DefaultStatus is the status a sauna starts with. SaunaID and
// FirmwareVersion are filled in by the owner.
func DefaultStatus() Status {
	p := DefaultProgram()
	return Status{
		State:              StateStandby,
		TargetTemperature:  30,
		CurrentTemperature: 0,
		Timer:              60,
		Lights:             defaultLights(),
		Heaters:            defaultHeaters(),
		Program:            &p,
	}
}

// DefaultSchedule is the schedule seeded at startup.
func DefaultSchedule() Schedule {
	return Schedule{
		ID:            DefaultScheduleID,
		User:          "kemalenver@gmail.com",
		Sauna:         "aUniqueIdForTheSauna",
		FirstFireTime: time.Date(2021, 6, 27, 5, 3, 15, 0, time.FixedZone("", 11*60*60)),
		Frequency:     FrequencyOnce,
		Program:       DefaultProgram(),
	}
}
