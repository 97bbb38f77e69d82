package entities

// GeoPoint is a WGS84 latitude/longitude pair.
// A point is either fully specified or absent; partial coordinates are invalid.
type GeoPoint struct {
	Lat float64
	Lng float64
}

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

func (p GeoPoint) InRange() bool {
	return p.Lat >= MinLatitude && p.Lat <= MaxLatitude &&
		p.Lng >= MinLongitude && p.Lng <= MaxLongitude
}
