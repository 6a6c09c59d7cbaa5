package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"medidrone/cmd"
	httpin "medidrone/internal/adapters/in/http"
	"medidrone/internal/adapters/out/imagestore"
	"medidrone/internal/adapters/out/postgres/testdb"
	"medidrone/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

var (
	pngContent = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{7}, 128)...)
	gifContent = append([]byte("GIF89a"), bytes.Repeat([]byte{7}, 128)...)
)

// APITestSuite drives the whole stack over HTTP: echo router, use cases, gorm on
// in-memory sqlite and the local image store in a temporary directory.
type APITestSuite struct {
	suite.Suite
	e         *echo.Echo
	imagesDir string
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (suite *APITestSuite) SetupTest() {
	t := suite.T()
	suite.imagesDir = t.TempDir()

	config := cmd.ConfigFromEnv(func(key string) string {
		switch key {
		case "DB_DRIVER":
			return cmd.DriverSQLite
		case "IMAGES_DIR":
			return suite.imagesDir
		case "IMAGE_FILE_SIZE_LIMIT_MB":
			return "1"
		case "LOG_LEVEL":
			return "error"
		}
		return ""
	})
	suite.Require().NoError(config.Validate())

	images, err := imagestore.NewLocalStorage(config.ImagesDir, config.ImagesBaseURL, cmd.ImagesPublicPath)
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := cmd.NewCompositionRoot(config, testdb.SQLite(t), images, logger)
	suite.e, err = app.CreateRouter(t.Context())
	suite.Require().NoError(err)
}

func (suite *APITestSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *APITestSuite) doMultipart(method, target string, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		suite.Require().NoError(w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("img_file", "upload.bin")
		suite.Require().NoError(err)
		_, err = part.Write(image)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](suite *APITestSuite, rec *httptest.ResponseRecorder) T {
	var v T
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (suite *APITestSuite) createDrone(body map[string]any) httpin.DroneJSON {
	rec := suite.do(http.MethodPost, "/api/v1/drones", body)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.DroneJSON](suite, rec)
}

func (suite *APITestSuite) createMedication(name string, weight float64, code string) httpin.MedicationJSON {
	rec := suite.do(http.MethodPost, "/api/v1/medications", map[string]any{"name": name, "weight": weight, "code": code})
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.MedicationJSON](suite, rec)
}

func (suite *APITestSuite) getDrone(id int64) httpin.DroneWithMedicationsJSON {
	rec := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/drones/%d", id), nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	return decode[httpin.DroneWithMedicationsJSON](suite, rec)
}

func (suite *APITestSuite) validationFields(rec *httptest.ResponseRecorder) []string {
	body := decode[struct {
		Detail []httpin.FieldError `json:"detail"`
	}](suite, rec)

	fields := make([]string, 0, len(body.Detail))
	for _, f := range body.Detail {
		fields = append(fields, f.Field)
	}
	return fields
}

func (suite *APITestSuite) TestHealthAndDocs() {
	rec := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/openapi.json", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	doc := decode[map[string]any](suite, rec)
	suite.Equal("3.0.3", doc["openapi"])
	suite.Contains(doc["paths"], "/drones/{drone_id}")
}

func (suite *APITestSuite) TestCreateDrone_AppliesDefaults() {
	created := suite.createDrone(map[string]any{"serial_number": "DR-001", "model": "Lightweight"})

	suite.Positive(created.ID)
	suite.Equal("DR-001", created.SerialNumber)
	suite.Equal("Lightweight", created.Model)
	suite.InDelta(500.0, created.WeightLimit, 1e-9)
	suite.Equal(100, created.BatteryCapacity)
	suite.Equal("IDLE", created.State)

	fetched := suite.getDrone(created.ID)
	suite.Equal(created, fetched.DroneJSON)
	suite.Empty(fetched.Medications)
}

func (suite *APITestSuite) TestCreateDrone_ValidationErrors() {
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"serial too long", map[string]any{"serial_number": strings.Repeat("S", 101), "model": "Heavyweight"}, "serial_number"},
		{"serial missing", map[string]any{"model": "Heavyweight"}, "serial_number"},
		{"unknown model", map[string]any{"serial_number": "DR-1", "model": "Featherweight"}, "model"},
		{"weight limit above 500", map[string]any{"serial_number": "DR-1", "model": "Heavyweight", "weight_limit": 501}, "weight_limit"},
		{"battery above 100", map[string]any{"serial_number": "DR-1", "model": "Heavyweight", "battery_capacity": 130}, "battery_capacity"},
		{"unknown state", map[string]any{"serial_number": "DR-1", "model": "Heavyweight", "state": "FLYING"}, "state"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rec := suite.do(http.MethodPost, "/api/v1/drones", tt.body)

			suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			suite.Contains(suite.validationFields(rec), tt.field)
		})
	}
}

func (suite *APITestSuite) TestMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drones", strings.NewReader(`{"serial_number":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	suite.e.ServeHTTP(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *APITestSuite) TestGetDrone_NotFound() {
	rec := suite.do(http.MethodGet, "/api/v1/drones/999", nil)

	suite.Require().Equal(http.StatusNotFound, rec.Code)
	body := decode[map[string]string](suite, rec)
	suite.Equal("Drone with id 999 not found", body["detail"])
}

func (suite *APITestSuite) TestInvalidPathAndPaging() {
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones/abc", nil).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones/0", nil).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones?limit=0", nil).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones?limit=101", nil).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones?offset=-1", nil).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones?limit=ten", nil).Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodGet, "/api/v1/drones?drone_state=idle", nil).Code)
}

func (suite *APITestSuite) TestListDrones_PagingAndStateFilter() {
	first := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Lightweight"})
	second := suite.createDrone(map[string]any{"serial_number": "DR-2", "model": "Lightweight", "state": "LOADED"})
	third := suite.createDrone(map[string]any{"serial_number": "DR-3", "model": "Lightweight"})

	rec := suite.do(http.MethodGet, "/api/v1/drones?offset=1&limit=1", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	page := decode[[]httpin.DroneJSON](suite, rec)
	suite.Require().Len(page, 1)
	suite.Equal(second.ID, page[0].ID)

	rec = suite.do(http.MethodGet, "/api/v1/drones?drone_state=IDLE", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	idle := decode[[]httpin.DroneJSON](suite, rec)
	suite.Require().Len(idle, 2)
	suite.Equal(first.ID, idle[0].ID)
	suite.Equal(third.ID, idle[1].ID)

	rec = suite.do(http.MethodGet, "/api/v1/drones?state=LOADED", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	loaded := decode[[]httpin.DroneJSON](suite, rec)
	suite.Require().Len(loaded, 1)
	suite.Equal(second.ID, loaded[0].ID)
}

func (suite *APITestSuite) TestListRoutes_DefaultPaging() {
	for i := range queries.DefaultPageLimit + 1 {
		suite.createDrone(map[string]any{"serial_number": fmt.Sprintf("DR-%03d", i), "model": "Lightweight"})
	}
	suite.createMedication("Aspirin", 40, "ASP_1")
	suite.createMedication("Insulin", 30, "INS_2")

	rec := suite.do(http.MethodGet, "/api/v1/drones", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	drones := decode[[]httpin.DroneJSON](suite, rec)
	suite.Require().Len(drones, queries.DefaultPageLimit)
	suite.Equal("DR-000", drones[0].SerialNumber)
	suite.Equal(fmt.Sprintf("DR-%03d", queries.DefaultPageLimit-1), drones[len(drones)-1].SerialNumber)

	rec = suite.do(http.MethodGet, "/api/v1/drones/availableForLoading", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Len(decode[[]httpin.DroneJSON](suite, rec), queries.DefaultPageLimit)

	rec = suite.do(http.MethodGet, "/api/v1/medications", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Len(decode[[]httpin.MedicationJSON](suite, rec), 2)

	rec = suite.do(http.MethodGet, "/api/v1/medications?limit=1", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Len(decode[[]httpin.MedicationJSON](suite, rec), 1)
}

func (suite *APITestSuite) TestUpdateDrone_AttachesMedications() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Middleweight", "weight_limit": 100})
	aspirin := suite.createMedication("Aspirin", 40, "ASP_1")
	insulin := suite.createMedication("Insulin", 30, "INS_2")

	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/drones/%d", d.ID), map[string]any{
		"state":          "LOADING",
		"medication_ids": []int64{aspirin.ID, insulin.ID, 4242},
	})

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[httpin.DroneWithMedicationsJSON](suite, rec)
	suite.Equal("LOADING", updated.State)
	suite.Require().Len(updated.Medications, 2)
	suite.Equal(aspirin.ID, updated.Medications[0].ID)
	suite.Equal(insulin.ID, updated.Medications[1].ID)

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/medications/%d", aspirin.ID), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	med := decode[httpin.MedicationWithDroneJSON](suite, rec)
	suite.Require().NotNil(med.Drone)
	suite.Equal(d.ID, med.Drone.ID)
}

func (suite *APITestSuite) TestUpdateDrone_OverCapacityAttachesNothing() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Middleweight", "weight_limit": 100})
	first := suite.createMedication("Aspirin", 40, "ASP_1")
	second := suite.createMedication("Morphine", 70, "MOR_2")

	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/drones/%d", d.ID), map[string]any{
		"medication_ids": []int64{first.ID, second.ID},
	})

	suite.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	suite.Empty(suite.getDrone(d.ID).Medications)
}

func (suite *APITestSuite) TestUpdateDrone_LowBatteryCannotLoad() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Lightweight", "battery_capacity": 10})

	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/drones/%d", d.ID), map[string]any{"state": "LOADING"})

	suite.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	suite.Equal("IDLE", suite.getDrone(d.ID).State)

	rec = suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/drones/%d", d.ID), map[string]any{"state": "RETURNING"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal("RETURNING", suite.getDrone(d.ID).State)
}

func (suite *APITestSuite) TestUpdateDrone_ValidationErrors() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Lightweight"})
	target := fmt.Sprintf("/api/v1/drones/%d", d.ID)

	rec := suite.do(http.MethodPatch, target, map[string]any{"weight_limit": 501})
	suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
	suite.Contains(suite.validationFields(rec), "weight_limit")

	rec = suite.do(http.MethodPatch, target, map[string]any{"battery_capacity": -1})
	suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
	suite.Contains(suite.validationFields(rec), "battery_capacity")

	suite.Equal(http.StatusNotFound, suite.do(http.MethodPatch, "/api/v1/drones/999", map[string]any{"battery_capacity": 50}).Code)
}

func (suite *APITestSuite) TestAvailableForLoading() {
	idle := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Lightweight"})
	suite.createDrone(map[string]any{"serial_number": "DR-2", "model": "Lightweight", "state": "DELIVERING"})

	rec := suite.do(http.MethodGet, "/api/v1/drones/availableForLoading", nil)

	suite.Require().Equal(http.StatusOK, rec.Code)
	available := decode[[]httpin.DroneJSON](suite, rec)
	suite.Require().Len(available, 1)
	suite.Equal(idle.ID, available[0].ID)
}

func (suite *APITestSuite) TestLoadMedication_Route() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Lightweight", "weight_limit": 10})
	heavy := suite.createMedication("Saline", 25, "SAL_1")

	rec := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/drones/%d/medications/%d", d.ID, heavy.ID), nil)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	loaded := decode[httpin.DroneWithMedicationsJSON](suite, rec)
	suite.Require().Len(loaded.Medications, 1)
	suite.Equal(heavy.ID, loaded.Medications[0].ID)

	rec = suite.do(http.MethodPost, fmt.Sprintf("/api/v1/drones/%d/medications/999", d.ID), nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *APITestSuite) TestRemoveDrone_DetachesMedications() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Lightweight"})
	med := suite.createMedication("Aspirin", 40, "ASP_1")
	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/drones/%d", d.ID), map[string]any{"medication_ids": []int64{med.ID}})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/drones/%d", d.ID), nil)

	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/api/v1/drones/%d", d.ID), nil).Code)

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/medications/%d", med.ID), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Nil(decode[httpin.MedicationWithDroneJSON](suite, rec).Drone)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/drones/%d", d.ID), nil).Code)
}

func (suite *APITestSuite) TestMedication_ImageLifecycle() {
	rec := suite.doMultipart(http.MethodPost, "/api/v1/medications",
		map[string]string{"name": "Aspirin", "weight": "12.5", "code": "ASP_1"}, pngContent)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.MedicationJSON](suite, rec)
	suite.Require().NotNil(created.Image)
	suite.True(strings.HasPrefix(*created.Image, "http://127.0.0.1:8000/static/medication_images/"), *created.Image)
	suite.InDelta(12.5, created.Weight, 1e-9)

	firstFile := filepath.Join(suite.imagesDir, path.Base(*created.Image))
	content, err := os.ReadFile(firstFile)
	suite.Require().NoError(err)
	suite.Equal(pngContent, content)

	// stored images are served back
	rec = suite.do(http.MethodGet, "/static/medication_images/"+path.Base(*created.Image), nil)
	suite.Equal(http.StatusOK, rec.Code)

	// replacing the image removes the previous file
	rec = suite.doMultipart(http.MethodPatch, fmt.Sprintf("/api/v1/medications/%d", created.ID),
		map[string]string{"code": "ASP_2"}, pngContent)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[httpin.MedicationJSON](suite, rec)
	suite.Equal("Aspirin", updated.Name)
	suite.Equal("ASP_2", updated.Code)
	suite.Require().NotNil(updated.Image)
	suite.NotEqual(*created.Image, *updated.Image)
	suite.NoFileExists(firstFile)

	secondFile := filepath.Join(suite.imagesDir, path.Base(*updated.Image))
	suite.FileExists(secondFile)

	rec = suite.do(http.MethodDelete, fmt.Sprintf("/api/v1/medications/%d", created.ID), nil)
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.NoFileExists(secondFile)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/api/v1/medications/%d", created.ID), nil).Code)
}

func (suite *APITestSuite) TestMedication_WeightChangeRespectsDroneLimit() {
	d := suite.createDrone(map[string]any{"serial_number": "DR-1", "model": "Middleweight", "weight_limit": 100})
	aspirin := suite.createMedication("Aspirin", 40, "ASP_1")
	insulin := suite.createMedication("Insulin", 30, "INS_2")
	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/drones/%d", d.ID), map[string]any{
		"medication_ids": []int64{aspirin.ID, insulin.ID},
	})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/medications/%d", aspirin.ID), map[string]any{"weight": 71})
	suite.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/medications/%d", aspirin.ID), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.InDelta(40.0, decode[httpin.MedicationWithDroneJSON](suite, rec).Weight, 0)

	rec = suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/medications/%d", aspirin.ID), map[string]any{"weight": 70})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	meds := suite.getDrone(d.ID).Medications
	suite.Require().Len(meds, 2)
	suite.InDelta(70.0, meds[0].Weight, 0)

	// detached medications are not limited by any drone
	free := suite.createMedication("Saline", 10, "SAL_3")
	rec = suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/medications/%d", free.ID), map[string]any{"weight": 500})
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (suite *APITestSuite) TestMedication_RejectedImages() {
	rec := suite.doMultipart(http.MethodPost, "/api/v1/medications",
		map[string]string{"name": "Aspirin", "weight": "1", "code": "ASP_1"}, gifContent)
	suite.Equal(http.StatusNotAcceptable, rec.Code, rec.Body.String())

	tooLarge := append(append([]byte{}, pngContent...), bytes.Repeat([]byte{1}, 1024*1024)...)
	rec = suite.doMultipart(http.MethodPost, "/api/v1/medications",
		map[string]string{"name": "Aspirin", "weight": "1", "code": "ASP_1"}, tooLarge)
	suite.Equal(http.StatusNotAcceptable, rec.Code, rec.Body.String())

	entries, err := os.ReadDir(suite.imagesDir)
	suite.Require().NoError(err)
	suite.Empty(entries)

	rec = suite.do(http.MethodGet, "/api/v1/medications", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Empty(decode[[]httpin.MedicationJSON](suite, rec))
}

func (suite *APITestSuite) TestMedication_ValidationErrors() {
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"name with slash", map[string]any{"name": "/TestMed1", "weight": 1, "code": "MED_1"}, "name"},
		{"lower case code", map[string]any{"name": "TestMed1", "weight": 1, "code": "aZ00_5B"}, "code"},
		{"negative weight", map[string]any{"name": "TestMed1", "weight": -1, "code": "MED_1"}, "weight"},
		{"missing weight", map[string]any{"name": "TestMed1", "code": "MED_1"}, "weight"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rec := suite.do(http.MethodPost, "/api/v1/medications", tt.body)

			suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			suite.Contains(suite.validationFields(rec), tt.field)
		})
	}

	suite.Run("multipart weight is not a number", func() {
		rec := suite.doMultipart(http.MethodPost, "/api/v1/medications",
			map[string]string{"name": "TestMed1", "weight": "heavy", "code": "MED_1"}, nil)

		suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		suite.Contains(suite.validationFields(rec), "weight")
	})

	suite.Run("patch keeps format rules", func() {
		med := suite.createMedication("TestMed1", 1, "MED_1")

		rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/medications/%d", med.ID), map[string]any{"code": "lower"})

		suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		suite.Contains(suite.validationFields(rec), "code")
	})
}
