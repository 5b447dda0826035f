package meteostat

import (
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-station-key"

func testClient(apiURL, bulkURL string) *Client {
	return &Client{
		apiKey:      testAPIKey,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		apiBaseURL:  apiURL,
		bulkBaseURL: bulkURL,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gzipHandler(t *testing.T, wantPath, csvBody string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		gz := gzip.NewWriter(w)
		_, err := gz.Write([]byte(csvBody))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
	}
}

func TestClient_NearbyStations(t *testing.T) {
	body := `{
		"data": [
			{
				"id": "72403",
				"name": {"en": "Washington Dulles International Airport"},
				"latitude": 38.9349,
				"longitude": -77.4473,
				"elevation": 88,
				"distance": 1020.5,
				"inventory": {
					"hourly": {"start": "1973-01-01", "end": "2024-03-25"},
					"daily": {"start": "1960-04-01", "end": "2024-03-24"},
					"monthly": {"start": "1960-01-01", "end": "2024-01-01"}
				}
			},
			{
				"id": "KJYO0",
				"name": {"en": "Leesburg Executive Airport"},
				"latitude": 39.078,
				"longitude": -77.5575,
				"elevation": 119,
				"distance": 18920.1,
				"inventory": {
					"hourly": {"start": "2010-01-01", "end": "2024-03-25"},
					"daily": {"start": "", "end": ""},
					"monthly": {"start": "", "end": ""}
				}
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stations/nearby", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get("x-api-key"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	stations, err := c.NearbyStations(context.Background(), 38.93485, -77.44728, 5)
	require.NoError(t, err)
	require.Len(t, stations, 2)

	dulles := stations[0]
	assert.Equal(t, "72403", dulles.ID)
	assert.Equal(t, "Washington Dulles International Airport", dulles.Name)
	assert.Equal(t, float64(88), dulles.ElevationM)
	assert.Equal(t, 1020.5, dulles.DistanceM)
	require.NotNil(t, dulles.HourlyStart)
	assert.Equal(t, 1973, dulles.HourlyStart.Year())

	leesburg := stations[1]
	assert.Nil(t, leesburg.DailyStart)
	assert.Nil(t, leesburg.MonthlyEnd)
}

func TestClient_NearbyStations_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	_, err := c.NearbyStations(context.Background(), 38.93485, -77.44728, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClient_DailySeries(t *testing.T) {
	// date,tavg,tmin,tmax,prcp,snow,wdir,wspd,wpgt,pres,tsun
	csvBody := "2023-02-28,4.1,-1.2,9.8,0.0,,270,14.5,32.2,1021.3,410\n" +
		"2023-03-01,6.3,1.1,12.4,2.5,,225,11.2,,1018.0,\n" +
		"2023-03-02,5.0,0.4,10.1,0.0,,180,9.7,25.9,1019.5,360\n" +
		"2023-03-03,7.7,2.8,13.3,1.3,,200,12.0,30.1,1015.2,120\n"
	srv := httptest.NewServer(gzipHandler(t, "/daily/72403.csv.gz", csvBody))
	defer srv.Close()

	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)

	c := testClient(srv.URL, srv.URL)
	records, err := c.DailySeries(context.Background(), "72403", start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "2023-03-01", first.Date.Format("2006-01-02"))
	require.NotNil(t, first.TempAvgC)
	assert.Equal(t, 6.3, *first.TempAvgC)
	require.NotNil(t, first.PrecipMm)
	assert.Equal(t, 2.5, *first.PrecipMm)
	assert.Nil(t, first.SnowMm)
	assert.Nil(t, first.WindGustKmh)
	assert.Nil(t, first.SunshineMin)
}

func TestClient_HourlySeries(t *testing.T) {
	// date,hour,temp,dwpt,rhum,prcp,snow,wdir,wspd,wpgt,pres,tsun,coco
	csvBody := "2023-03-01,9,3.9,0.2,77,0.0,,300,13.0,,1020.1,,3\n" +
		"2023-03-01,10,5.2,0.4,72,0.0,,310,14.8,26.0,1019.8,60,3\n" +
		"2023-03-01,11,6.8,0.5,66,,,320,15.3,,1019.2,60,2\n"
	srv := httptest.NewServer(gzipHandler(t, "/hourly/72403.csv.gz", csvBody))
	defer srv.Close()

	start := time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 1, 11, 0, 0, 0, time.UTC)

	c := testClient(srv.URL, srv.URL)
	records, err := c.HourlySeries(context.Background(), "72403", start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 10, records[0].Time.Hour())
	require.NotNil(t, records[0].TempC)
	assert.Equal(t, 5.2, *records[0].TempC)
	assert.Nil(t, records[1].PrecipMm)
	require.NotNil(t, records[1].Condition)
	assert.Equal(t, float64(2), *records[1].Condition)
}

func TestClient_MonthlySeries(t *testing.T) {
	// year,month,tavg,tmin,tmax,prcp,wspd,pres,tsun
	csvBody := "2022,12,2.4,-1.8,6.9,84.2,13.1,1019.0,\n" +
		"2023,1,4.6,0.2,9.5,70.1,12.2,1018.4,7020\n" +
		"2023,2,4.9,-0.3,10.8,55.0,13.9,1020.7,\n" +
		"2023,3,8.1,2.5,14.2,61.3,14.4,1016.9,\n"
	srv := httptest.NewServer(gzipHandler(t, "/monthly/72403.csv.gz", csvBody))
	defer srv.Close()

	start := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)

	c := testClient(srv.URL, srv.URL)
	records, err := c.MonthlySeries(context.Background(), "72403", start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.January, records[0].Month.Month())
	require.NotNil(t, records[0].SunshineMin)
	assert.Equal(t, float64(7020), *records[0].SunshineMin)
	assert.Equal(t, time.February, records[1].Month.Month())
	assert.Nil(t, records[1].SunshineMin)
}

func TestClient_Normals(t *testing.T) {
	// start,end,month,tavg,tmin,tmax,prcp,wspd,pres,tsun
	csvBody := "1961,1990,1,-0.5,-6.1,5.1,69.0,,,\n" +
		"1991,2020,1,0.3,-5.3,5.9,72.6,13.0,1019.2,\n" +
		"1991,2020,2,1.6,-4.4,7.7,66.8,13.6,1018.5,\n" +
		"1991,2020,3,6.1,-0.1,12.3,84.3,14.2,1017.1,\n"
	srv := httptest.NewServer(gzipHandler(t, "/normals/72403.csv.gz", csvBody))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	records, err := c.Normals(context.Background(), "72403", 1991, 2020)
	require.NoError(t, err)
	require.Len(t, records, 3)

	jan := records[0]
	assert.Equal(t, 1991, jan.StartYear)
	assert.Equal(t, 2020, jan.EndYear)
	assert.Equal(t, time.January, jan.Month)
	require.NotNil(t, jan.TempAvgC)
	assert.Equal(t, 0.3, *jan.TempAvgC)
}

func TestClient_BulkNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	_, err := c.DailySeries(context.Background(), "XXXXX",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no daily data")
}
