package relativity

import "fmt"

const (
	secondsPerMinute = 60.0
	secondsPerHour   = 3600.0
	secondsPerDay    = 86400.0
	secondsPerYear   = 31536000.0

	kmPerAU        = 149597870.7
	kmPerLightYear = 9.461e12
)

// FormatTime renders a duration in seconds with a unit matched to its scale.
func FormatTime(seconds float64) string {
	switch {
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.2f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.2f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.2f days", seconds/secondsPerDay)
	default:
		return fmt.Sprintf("%.2f years", seconds/secondsPerYear)
	}
}

// FormatDistance renders a distance in km with a unit matched to its scale,
// stepping from meters up to astronomical units and light-years.
func FormatDistance(km float64) string {
	switch {
	case km < 1:
		return fmt.Sprintf("%.2f m", km*1000)
	case km < 1000:
		return fmt.Sprintf("%.2f km", km)
	case km < kmPerAU:
		return fmt.Sprintf("%.2f thousand km", km/1000)
	default:
		au := km / kmPerAU
		if au < 1000 {
			return fmt.Sprintf("%.2f AU", au)
		}
		return fmt.Sprintf("%.2f light-years", km/kmPerLightYear)
	}
}
