package lookup

import "weather-lookup/internal/models"

type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is exactly one of Idle, Loading, Success(reading) or Failed(message).
// Its fields are unexported so a reading and an error can never coexist.
type Status struct {
	state   State
	reading models.WeatherReading
	message string
}

func IdleStatus() Status {
	return Status{state: Idle}
}

func LoadingStatus() Status {
	return Status{state: Loading}
}

func SuccessStatus(reading models.WeatherReading) Status {
	return Status{state: Success, reading: reading}
}

func FailedStatus(message string) Status {
	return Status{state: Failed, message: message}
}

func (s Status) State() State {
	return s.state
}

// Reading reports the reading when the status is Success.
func (s Status) Reading() (models.WeatherReading, bool) {
	if s.state != Success {
		return models.WeatherReading{}, false
	}
	return s.reading, true
}

// Message reports the user-visible error when the status is Failed.
func (s Status) Message() (string, bool) {
	if s.state != Failed {
		return "", false
	}
	return s.message, true
}
