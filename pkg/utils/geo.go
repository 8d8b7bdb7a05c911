package utils

// Unit conversions used by the geo queries and the routing client. The
// spatial index works in meters, the product talks in miles.
const (
	MetersPerMile = 1609.34
	MilesPerMeter = 1.0 / MetersPerMile
)
