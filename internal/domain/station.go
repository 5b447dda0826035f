package domain

import "time"

// Station describes a climate station returned by a nearest-station lookup.
// Distance is provider-computed from the query point, in meters; inventory
// ranges say which dates each resolution has data for and may be absent.
type Station struct {
	ID         string
	Name       string
	Lat        float64
	Lon        float64
	ElevationM float64
	DistanceM  float64

	HourlyStart  *time.Time
	HourlyEnd    *time.Time
	DailyStart   *time.Time
	DailyEnd     *time.Time
	MonthlyStart *time.Time
	MonthlyEnd   *time.Time
}

// DailyRecord is one day of a station's daily series, in metric units.
// Nil means the station did not report that column for that day.
type DailyRecord struct {
	Date        time.Time
	TempAvgC    *float64
	TempMinC    *float64
	TempMaxC    *float64
	PrecipMm    *float64
	SnowMm      *float64
	WindDirDeg  *float64
	WindSpdKmh  *float64
	WindGustKmh *float64
	PressureHPa *float64
	SunshineMin *float64
}

// HourlyRecord is one hour of a station's hourly series, in metric units.
type HourlyRecord struct {
	Time        time.Time
	TempC       *float64
	DewPointC   *float64
	HumidityPct *float64
	PrecipMm    *float64
	SnowMm      *float64
	WindDirDeg  *float64
	WindSpdKmh  *float64
	WindGustKmh *float64
	PressureHPa *float64
	SunshineMin *float64
	Condition   *float64
}

// MonthlyRecord is one month of a station's monthly series, in metric units.
type MonthlyRecord struct {
	Month       time.Time // first of the month
	TempAvgC    *float64
	TempMinC    *float64
	TempMaxC    *float64
	PrecipMm    *float64
	WindSpdKmh  *float64
	PressureHPa *float64
	SunshineMin *float64
}

// NormalsRecord is one calendar month of 30-year averaged climate normals.
type NormalsRecord struct {
	StartYear   int
	EndYear     int
	Month       time.Month
	TempAvgC    *float64
	TempMinC    *float64
	TempMaxC    *float64
	PrecipMm    *float64
	WindSpdKmh  *float64
	PressureHPa *float64
	SunshineMin *float64
}
