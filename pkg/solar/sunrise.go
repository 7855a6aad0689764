// Package solar computes sunrise and sunset for solar farm sites, used to
// enrich farm popups on the map.
package solar

import (
	"math"
	"time"
)

func degToRad(d float64) float64 { return d * math.Pi / 180 }

// equationOfTime returns the difference between apparent and mean solar
// time in minutes, using the sinusoidal approximation for day-of-year n.
func equationOfTime(n int) float64 {
	b := degToRad(360.0 / 364.0 * float64(n-81))
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// declination returns the solar declination in radians for day-of-year n.
func declination(n int) float64 {
	inner := degToRad(356.6 + 0.9856*float64(n))
	outer := degToRad(278.97 + 0.9856*float64(n) + 1.9165*math.Sin(inner))
	return math.Asin(0.39785 * math.Sin(outer))
}

// Times returns sunrise and sunset in UTC for the given calendar date at
// the specified coordinates. ok is false during polar day or polar night,
// when the sun never crosses the horizon; that never happens at solar
// farm latitudes but the case is handled rather than returning garbage.
func Times(date time.Time, latitude, longitude float64) (sunrise, sunset time.Time, ok bool) {
	n := date.YearDay()

	// Hour angle at the horizon: cos(H) = -tan(lat) * tan(declination)
	cosH := -math.Tan(degToRad(latitude)) * math.Tan(declination(n))
	if cosH < -1 || cosH > 1 {
		return time.Time{}, time.Time{}, false
	}
	hourAngleMin := math.Acos(cosH) * (180 / math.Pi) / 15.0 * 60

	// Solar noon in minutes from midnight UTC: 4 minutes per degree of
	// longitude, corrected by the equation of time.
	noonMin := 720.0 - longitude*4.0 - equationOfTime(n)

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	sunrise = midnight.Add(time.Duration(math.Round(noonMin-hourAngleMin)) * time.Minute)
	sunset = midnight.Add(time.Duration(math.Round(noonMin+hourAngleMin)) * time.Minute)
	return sunrise, sunset, true
}
