package platformservice

import "time"

// TimeInfo describes the machine's clock and configured time zone.
type TimeInfo struct {
	CurrentTime   string `json:"current_time" yaml:"current_time"`
	Timezone      string `json:"timezone" yaml:"timezone"`
	TimezoneLong  string `json:"timezone_long" yaml:"timezone_long"`
	OffsetSeconds int    `json:"offset_seconds" yaml:"offset_seconds"`
}

func getTimeInfo(now time.Time) TimeInfo {
	zoneName, offsetSecs := now.Zone()

	// IANA zone name when the OS provides one, "Local" otherwise
	locationName := ""
	if loc := now.Location(); loc != nil {
		locationName = loc.String()
	}

	return TimeInfo{
		CurrentTime:   now.Format(time.RFC3339),
		Timezone:      zoneName,
		TimezoneLong:  locationName,
		OffsetSeconds: offsetSecs,
	}
}

// CurrentTimeInfo describes the clock right now.
func CurrentTimeInfo() TimeInfo {
	return getTimeInfo(time.Now())
}
