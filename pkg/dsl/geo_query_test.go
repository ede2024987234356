package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPolygonQuery(t *testing.T) {
	q := NewGeoPolygonQuery("person.location").
		AddLatLon(40, -70).
		AddLatLon(30, -80).
		AddLatLon(20, -90)
	assert.JSONEq(t, `{
		"geo_polygon":{
			"person.location":{"points":[
				{"lat":40,"lon":-70},
				{"lat":30,"lon":-80},
				{"lat":20,"lon":-90}
			]}
		}
	}`, marshalSource(t, q))
}

func TestGeoPolygonQueryValidationMethod(t *testing.T) {
	q := NewGeoPolygonQuery("location").
		AddLatLon(40, -70).
		ValidationMethod("ignore_malformed")
	assert.JSONEq(t, `{
		"geo_polygon":{
			"location":{"points":[{"lat":40,"lon":-70}]},
			"validation_method":"IGNORE_MALFORMED"
		}
	}`, marshalSource(t, q))

	_, err := NewGeoPolygonQuery("location").
		AddLatLon(40, -70).
		ValidationMethod("bogus").
		Source()
	assert.Error(t, err)
}

func TestGeoDistanceQuery(t *testing.T) {
	q := NewGeoDistanceQuery("pin.location", GeoPointFromLatLon(40, -70), "200km").
		DistanceType("plane")
	assert.JSONEq(t, `{
		"geo_distance":{
			"distance":"200km",
			"distance_type":"plane",
			"pin.location":{"lat":40,"lon":-70}
		}
	}`, marshalSource(t, q))
}

func TestGeoBoundingBoxQuery(t *testing.T) {
	q := NewGeoBoundingBoxQuery("pin.location").
		TopLeft(GeoPointFromLatLon(40.73, -74.1)).
		BottomRight(GeoPointFromLatLon(40.01, -71.12))
	assert.JSONEq(t, `{
		"geo_bounding_box":{
			"pin.location":{
				"top_left":{"lat":40.73,"lon":-74.1},
				"bottom_right":{"lat":40.01,"lon":-71.12}
			}
		}
	}`, marshalSource(t, q))
}

func TestGeoBoundingBoxQueryMissingCorner(t *testing.T) {
	_, err := NewGeoBoundingBoxQuery("pin.location").
		TopLeft(GeoPointFromLatLon(40.73, -74.1)).
		Source()
	assert.Error(t, err)
}

func TestGeoPointFromString(t *testing.T) {
	p, err := GeoPointFromString("40.73, -74.1")
	assert.NoError(t, err)
	assert.Equal(t, 40.73, p.Lat)
	assert.Equal(t, -74.1, p.Lon)

	_, err = GeoPointFromString("40.73")
	assert.Error(t, err)
}
