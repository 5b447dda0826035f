// Package export persists the most recent fetched data under the configured
// output directory: bulk series as weather_data.csv and the last raw
// provider response as data.json. Both files are overwritten on every run
// and are never read back as inputs.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/skycast/skycast/internal/domain"
)

const (
	seriesFile = "weather_data.csv"
	rawFile    = "data.json"
)

// Exporter writes data dumps into one output directory.
type Exporter struct {
	dir string
}

// New creates an Exporter rooted at dir.
func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// SaveRawJSON writes the raw provider response body to data.json, indented
// for readability. Invalid JSON is written as-is.
func (e *Exporter) SaveRawJSON(body []byte) error {
	var pretty bytes.Buffer
	out := body
	if err := json.Indent(&pretty, body, "", "    "); err == nil {
		out = pretty.Bytes()
	}

	path := filepath.Join(e.dir, rawFile)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rawFile, err)
	}
	return nil
}

// SaveDailySeries writes a daily series to weather_data.csv in the station's
// native metric units.
func (e *Exporter) SaveDailySeries(records []domain.DailyRecord) error {
	rows := [][]string{{"date", "tavg", "tmin", "tmax", "prcp", "snow", "wdir", "wspd", "wpgt", "pres", "tsun"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			field(r.TempAvgC), field(r.TempMinC), field(r.TempMaxC),
			field(r.PrecipMm), field(r.SnowMm),
			field(r.WindDirDeg), field(r.WindSpdKmh), field(r.WindGustKmh),
			field(r.PressureHPa), field(r.SunshineMin),
		})
	}
	return e.writeCSV(rows)
}

// SaveHourlySeries writes an hourly series to weather_data.csv.
func (e *Exporter) SaveHourlySeries(records []domain.HourlyRecord) error {
	rows := [][]string{{"time", "temp", "dwpt", "rhum", "prcp", "snow", "wdir", "wspd", "wpgt", "pres", "tsun", "coco"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Time.Format("2006-01-02 15:04"),
			field(r.TempC), field(r.DewPointC), field(r.HumidityPct),
			field(r.PrecipMm), field(r.SnowMm),
			field(r.WindDirDeg), field(r.WindSpdKmh), field(r.WindGustKmh),
			field(r.PressureHPa), field(r.SunshineMin), field(r.Condition),
		})
	}
	return e.writeCSV(rows)
}

// SaveMonthlySeries writes a monthly series to weather_data.csv.
func (e *Exporter) SaveMonthlySeries(records []domain.MonthlyRecord) error {
	rows := [][]string{{"month", "tavg", "tmin", "tmax", "prcp", "wspd", "pres", "tsun"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Month.Format("2006-01"),
			field(r.TempAvgC), field(r.TempMinC), field(r.TempMaxC),
			field(r.PrecipMm), field(r.WindSpdKmh), field(r.PressureHPa), field(r.SunshineMin),
		})
	}
	return e.writeCSV(rows)
}

// SaveNormals writes climate normals to weather_data.csv.
func (e *Exporter) SaveNormals(records []domain.NormalsRecord) error {
	rows := [][]string{{"start", "end", "month", "tavg", "tmin", "tmax", "prcp", "wspd", "pres", "tsun"}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.StartYear),
			strconv.Itoa(r.EndYear),
			strconv.Itoa(int(r.Month)),
			field(r.TempAvgC), field(r.TempMinC), field(r.TempMaxC),
			field(r.PrecipMm), field(r.WindSpdKmh), field(r.PressureHPa), field(r.SunshineMin),
		})
	}
	return e.writeCSV(rows)
}

func (e *Exporter) writeCSV(rows [][]string) error {
	path := filepath.Join(e.dir, seriesFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", seriesFile, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", seriesFile, err)
	}
	return nil
}

// field renders an optional numeric value for CSV, empty when absent.
func field(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
