package dsl

import (
	"fmt"
	"strconv"
	"strings"
)

// GeoPoint is a geographic position described by a latitude and a longitude.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoPointFromLatLon initializes a new GeoPoint from the given coordinates.
func GeoPointFromLatLon(lat, lon float64) *GeoPoint {
	return &GeoPoint{Lat: lat, Lon: lon}
}

// GeoPointFromString initializes a new GeoPoint from a "lat,lon" string.
func GeoPointFromString(latLon string) (*GeoPoint, error) {
	latlon := strings.SplitN(latLon, ",", 2)
	if len(latlon) != 2 {
		return nil, fmt.Errorf("dsl: %q is not a valid geo point string", latLon)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latlon[0]), 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(latlon[1]), 64)
	if err != nil {
		return nil, err
	}
	return &GeoPoint{Lat: lat, Lon: lon}, nil
}

// Source returns the JSON-serializable body of the point.
func (p *GeoPoint) Source() map[string]float64 {
	return map[string]float64{"lat": p.Lat, "lon": p.Lon}
}
