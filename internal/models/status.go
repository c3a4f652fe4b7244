package models

// StatusState is the operating state reported by the sauna.
type StatusState string

const (
	StateStandby StatusState = "standby"
	StateRunning StatusState = "running"
	StateOff     StatusState = "off"
	StateError   StatusState = "error"
)

// LightState is on or off.
type LightState string

const (
	LightOn  LightState = "on"
	LightOff LightState = "off"
)

// Color is an RGB triple, each channel 0-255.
type Color struct {
	R int `json:"r" binding:"min=0,max=255" example:"255"`
	G int `json:"g" binding:"min=0,max=255" example:"255"`
	B int `json:"b" binding:"min=0,max=255" example:"255"`
}

type Light struct {
	Identifier string     `json:"identifier" binding:"required" example:"ceiling"`
	State      LightState `json:"state" binding:"required,oneof=on off" example:"on"`
	Color      Color      `json:"color"`
	Brightness float64    `json:"brightness" binding:"min=0,max=1" example:"1"` // 0..1
}

type Heater struct {
	Name  string `json:"name" binding:"required" example:"A"`
	Level int    `json:"level" binding:"min=0" example:"0"`
}

// Program is a reusable session preset.
type Program struct {
	Name              string   `json:"name" example:"evening"`
	TargetTemperature float64  `json:"target_temperature" example:"50"`
	TimerDuration     int      `json:"timer_duration" binding:"min=0" example:"30"`
	Lights            []Light  `json:"lights" binding:"dive"`
	Heaters           []Heater `json:"heaters" binding:"dive"`
}

// Clone returns a deep copy of p.
func (p Program) Clone() Program {
	p.Lights = cloneLights(p.Lights)
	p.Heaters = cloneHeaters(p.Heaters)
	return p
}

// Status is the live operational snapshot of a sauna.
type Status struct {
	State              StatusState `json:"state" example:"standby"` // standby | running | off | error
	SaunaID            string      `json:"sauna_id"`
	FirmwareVersion    int         `json:"firmware_version" example:"1"`
	TargetTemperature  float64     `json:"target_temperature" example:"30"`  // °C
	CurrentTemperature float64     `json:"current_temperature" example:"0"`  // °C
	Timer              int         `json:"timer" example:"60"`               // seconds
	Lights             []Light     `json:"lights"`
	Heaters            []Heater    `json:"heaters"`
	Program            *Program    `json:"program,omitempty"` // currently executing
}

// Clone returns a deep copy of s.
func (s Status) Clone() Status {
	s.Lights = cloneLights(s.Lights)
	s.Heaters = cloneHeaters(s.Heaters)
	if s.Program != nil {
		p := s.Program.Clone()
		s.Program = &p
	}
	return s
}

// StatusUpdate carries the status fields a client wants to change.
// Nil fields are left untouched; a non-nil list replaces the whole list.
type StatusUpdate struct {
	State              *StatusState `json:"state,omitempty" binding:"omitempty,oneof=standby running off error"`
	TargetTemperature  *float64     `json:"target_temperature,omitempty"`
	CurrentTemperature *float64     `json:"current_temperature,omitempty"`
	Timer              *int         `json:"timer,omitempty" binding:"omitempty,min=0"`
	Lights             []Light      `json:"lights,omitempty" binding:"omitempty,dive"`
	Heaters            []Heater     `json:"heaters,omitempty" binding:"omitempty,dive"`
	Program            *Program     `json:"program,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u StatusUpdate) IsEmpty() bool {
	return u.State == nil &&
		u.TargetTemperature == nil &&
		u.CurrentTemperature == nil &&
		u.Timer == nil &&
		u.Lights == nil &&
		u.Heaters == nil &&
		u.Program == nil
}

func cloneLights(in []Light) []Light {
	if in == nil {
		return nil
	}
	out := make([]Light, len(in))
	copy(out, in)
	return out
}

func cloneHeaters(in []Heater) []Heater {
	if in == nil {
		return nil
	}
	out := make([]Heater, len(in))
	copy(out, in)
	return out
}
