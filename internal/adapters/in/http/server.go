package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"medidrone/internal/core/application/usecases/commands"
	"medidrone/internal/core/application/usecases/queries"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// imageField is the multipart field carrying the medication image.
const imageField = "img_file"

// Server handles the /api/v1 routes.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDroneHandler      commands.CreateDroneCommandHandler
	updateDroneHandler      commands.UpdateDroneCommandHandler
	removeDroneHandler      commands.RemoveDroneCommandHandler
	loadMedicationHandler   commands.LoadMedicationCommandHandler
	createMedicationHandler commands.CreateMedicationCommandHandler
	updateMedicationHandler commands.UpdateMedicationCommandHandler
	removeMedicationHandler commands.RemoveMedicationCommandHandler

	// Query handlers
	listDronesHandler          queries.ListDronesQueryHandler
	listAvailableDronesHandler queries.ListAvailableDronesQueryHandler
	getDroneHandler            queries.GetDroneQueryHandler
	listMedicationsHandler     queries.ListMedicationsQueryHandler
	getMedicationHandler       queries.GetMedicationQueryHandler

	// imageSizeLimit is the largest accepted upload, in bytes
	imageSizeLimit int64
}

// Handlers groups the use case handlers the server dispatches to.
type Handlers struct {
	CreateDrone      commands.CreateDroneCommandHandler
	UpdateDrone      commands.UpdateDroneCommandHandler
	RemoveDrone      commands.RemoveDroneCommandHandler
	LoadMedication   commands.LoadMedicationCommandHandler
	CreateMedication commands.CreateMedicationCommandHandler
	UpdateMedication commands.UpdateMedicationCommandHandler
	RemoveMedication commands.RemoveMedicationCommandHandler

	ListDrones          queries.ListDronesQueryHandler
	ListAvailableDrones queries.ListAvailableDronesQueryHandler
	GetDrone            queries.GetDroneQueryHandler
	ListMedications     queries.ListMedicationsQueryHandler
	GetMedication       queries.GetMedicationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, imageSizeLimit int64) *Server {
	return &Server{
		createDroneHandler:         h.CreateDrone,
		updateDroneHandler:         h.UpdateDrone,
		removeDroneHandler:         h.RemoveDrone,
		loadMedicationHandler:      h.LoadMedication,
		createMedicationHandler:    h.CreateMedication,
		updateMedicationHandler:    h.UpdateMedication,
		removeMedicationHandler:    h.RemoveMedication,
		listDronesHandler:          h.ListDrones,
		listAvailableDronesHandler: h.ListAvailableDrones,
		getDroneHandler:            h.GetDrone,
		listMedicationsHandler:     h.ListMedications,
		getMedicationHandler:       h.GetMedication,
		imageSizeLimit:             imageSizeLimit,
	}
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.GET("/drones", s.ListDrones)
	g.POST("/drones", s.CreateDrone)
	g.GET("/drones/availableForLoading", s.ListAvailableDrones)
	g.GET("/drones/:drone_id", s.GetDrone)
	g.PATCH("/drones/:drone_id", s.UpdateDrone)
	g.DELETE("/drones/:drone_id", s.RemoveDrone)
	g.POST("/drones/:drone_id/medications/:medication_id", s.LoadMedication)

	g.GET("/medications", s.ListMedications)
	g.POST("/medications", s.CreateMedication)
	g.GET("/medications/:medication_id", s.GetMedication)
	g.PATCH("/medications/:medication_id", s.UpdateMedication)
	g.DELETE("/medications/:medication_id", s.RemoveMedication)
}

// ListDrones handles GET /api/v1/drones.
func (s *Server) ListDrones(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	state, err := stateFilter(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListDronesQuery(page, state)
	if err != nil {
		return err
	}
	drones, err := s.listDronesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dronesFromResponses(drones))
}

// ListAvailableDrones handles GET /api/v1/drones/availableForLoading.
func (s *Server) ListAvailableDrones(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	drones, err := s.listAvailableDronesHandler.Handle(c.Request().Context(), queries.NewListAvailableDronesQuery(page))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dronesFromResponses(drones))
}

// GetDrone handles GET /api/v1/drones/{drone_id}.
func (s *Server) GetDrone(c echo.Context) error {
	id, err := pathID(c, "drone_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDroneQuery(id)
	if err != nil {
		return err
	}
	d, err := s.getDroneHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, droneWithMedicationsFromResponse(d))
}

// CreateDrone handles POST /api/v1/drones.
// Missing weight_limit, battery_capacity and state default to 500, 100 and IDLE.
func (s *Server) CreateDrone(c echo.Context) error {
	var req CreateDroneRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	model, err := drone.ParseModel(req.Model)
	if err != nil {
		return err
	}
	state := drone.Idle
	if req.State != nil {
		if state, err = drone.ParseState(*req.State); err != nil {
			return err
		}
	}
	weightLimit := drone.DefaultWeightLimit
	if req.WeightLimit != nil {
		weightLimit = *req.WeightLimit
	}
	battery := drone.DefaultBatteryCapacity
	if req.BatteryCapacity != nil {
		battery = *req.BatteryCapacity
	}

	cmd, err := commands.NewCreateDroneCommand(req.SerialNumber, model, weightLimit, battery, state)
	if err != nil {
		return err
	}
	created, err := s.createDroneHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, droneFromAggregate(created))
}

// UpdateDrone handles PATCH /api/v1/drones/{drone_id}.
func (s *Server) UpdateDrone(c echo.Context) error {
	id, err := pathID(c, "drone_id")
	if err != nil {
		return err
	}

	var req UpdateDroneRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	patch := commands.DronePatch{
		WeightLimit:     req.WeightLimit,
		BatteryCapacity: req.BatteryCapacity,
		MedicationIDs:   req.MedicationIDs,
	}
	if req.State != nil {
		state, parseErr := drone.ParseState(*req.State)
		if parseErr != nil {
			return parseErr
		}
		patch.State = &state
	}

	cmd, err := commands.NewUpdateDroneCommand(id, patch)
	if err != nil {
		return err
	}
	updated, err := s.updateDroneHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, droneWithMedicationsFromAggregate(updated))
}

// RemoveDrone handles DELETE /api/v1/drones/{drone_id}.
func (s *Server) RemoveDrone(c echo.Context) error {
	id, err := pathID(c, "drone_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveDroneCommand(id)
	if err != nil {
		return err
	}
	if err = s.removeDroneHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// LoadMedication handles POST /api/v1/drones/{drone_id}/medications/{medication_id}.
func (s *Server) LoadMedication(c echo.Context) error {
	droneID, err := pathID(c, "drone_id")
	if err != nil {
		return err
	}
	medicationID, err := pathID(c, "medication_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewLoadMedicationCommand(droneID, medicationID)
	if err != nil {
		return err
	}
	loaded, err := s.loadMedicationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, droneWithMedicationsFromAggregate(loaded))
}

// ListMedications handles GET /api/v1/medications.
func (s *Server) ListMedications(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	meds, err := s.listMedicationsHandler.Handle(c.Request().Context(), queries.NewListMedicationsQuery(page))
	if err != nil {
		return err
	}

	response := make([]MedicationJSON, 0, len(meds))
	for _, m := range meds {
		response = append(response, medicationFromResponse(m))
	}
	return c.JSON(http.StatusOK, response)
}

// GetMedication handles GET /api/v1/medications/{medication_id}.
func (s *Server) GetMedication(c echo.Context) error {
	id, err := pathID(c, "medication_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMedicationQuery(id)
	if err != nil {
		return err
	}
	m, err := s.getMedicationHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := MedicationWithDroneJSON{MedicationJSON: medicationFromResponse(m.MedicationResponse)}
	if m.Drone != nil {
		owner := droneFromSummary(*m.Drone)
		response.Drone = &owner
	}
	return c.JSON(http.StatusOK, response)
}

// CreateMedication handles POST /api/v1/medications, as multipart/form-data with an
// optional img_file part or as JSON without an image.
func (s *Server) CreateMedication(c echo.Context) error {
	var (
		req   CreateMedicationRequest
		image *medication.ImageUpload
		err   error
	)

	if isMultipart(c) {
		req.Name = c.FormValue("name")
		req.Code = c.FormValue("code")
		if req.Weight, err = formFloat(c, "weight"); err != nil {
			return err
		}
		if image, err = s.formImage(c); err != nil {
			return err
		}
	} else if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateMedicationCommand(req.Name, *req.Weight, req.Code, image)
	if err != nil {
		return err
	}
	created, err := s.createMedicationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, medicationFromAggregate(created))
}

// UpdateMedication handles PATCH /api/v1/medications/{medication_id}. Every field is optional.
func (s *Server) UpdateMedication(c echo.Context) error {
	id, err := pathID(c, "medication_id")
	if err != nil {
		return err
	}

	var (
		req   UpdateMedicationRequest
		image *medication.ImageUpload
	)
	if isMultipart(c) {
		req.Name = formString(c, "name")
		req.Code = formString(c, "code")
		if req.Weight, err = formFloat(c, "weight"); err != nil {
			return err
		}
		if image, err = s.formImage(c); err != nil {
			return err
		}
	} else if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMedicationCommand(id, commands.MedicationPatch{
		Name:   req.Name,
		Weight: req.Weight,
		Code:   req.Code,
		Image:  image,
	})
	if err != nil {
		return err
	}
	updated, err := s.updateMedicationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, medicationFromAggregate(updated))
}

// RemoveMedication handles DELETE /api/v1/medications/{medication_id}.
func (s *Server) RemoveMedication(c echo.Context) error {
	id, err := pathID(c, "medication_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveMedicationCommand(id)
	if err != nil {
		return err
	}
	if err = s.removeMedicationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// formImage reads the img_file part. A request without the part carries no image.
func (s *Server) formImage(c echo.Context) (*medication.ImageUpload, error) {
	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil //nolint:nilnil // image is optional
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed multipart body").SetInternal(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	// one byte over the limit is enough to reject the upload
	content, err := io.ReadAll(io.LimitReader(file, s.imageSizeLimit+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded image: %w", err)
	}

	upload, err := medication.NewImageUpload(content, s.imageSizeLimit)
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formString returns nil when the multipart form has no field called name.
func formString(c echo.Context, name string) *string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func formFloat(c echo.Context, name string) (*float64, error) {
	raw := formString(c, name)
	if raw == nil || *raw == "" {
		return nil, nil //nolint:nilnil // field not sent
	}

	value, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &value, nil
}
