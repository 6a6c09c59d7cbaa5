package cmd

import (
	"context"
	"log/slog"

	httpin "medidrone/internal/adapters/in/http"
	"medidrone/internal/adapters/out/postgres"
	"medidrone/internal/core/application/usecases/commands"
	"medidrone/internal/core/application/usecases/queries"
	"medidrone/internal/core/ports"
	"medidrone/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	images     ports.ImageStorage
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, images ports.ImageStorage, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		images:     images,
		logger:     logger,
	}
}

func (c *CompositionRoot) droneUoWFactory() commands.DroneUoWFactory {
	return FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) medicationUoWFactory() commands.MedicationUoWFactory {
	return FuncMedicationUoWFactory(func() commands.MedicationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDroneCommandHandler() commands.CreateDroneCommandHandler {
	return commands.NewCreateDroneCommandHandler(c.droneUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDroneCommandHandler() commands.UpdateDroneCommandHandler {
	return commands.NewUpdateDroneCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateRemoveDroneCommandHandler() commands.RemoveDroneCommandHandler {
	return commands.NewRemoveDroneCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateLoadMedicationCommandHandler() commands.LoadMedicationCommandHandler {
	return commands.NewLoadMedicationCommandHandler(c.uowFactoryFunc(), c.logger)
}

func (c *CompositionRoot) CreateCreateMedicationCommandHandler() commands.CreateMedicationCommandHandler {
	return commands.NewCreateMedicationCommandHandler(c.medicationUoWFactory(), c.images, c.logger)
}

func (c *CompositionRoot) CreateUpdateMedicationCommandHandler() commands.UpdateMedicationCommandHandler {
	return commands.NewUpdateMedicationCommandHandler(c.uowFactoryFunc(), c.images, c.logger)
}

func (c *CompositionRoot) CreateRemoveMedicationCommandHandler() commands.RemoveMedicationCommandHandler {
	return commands.NewRemoveMedicationCommandHandler(c.medicationUoWFactory(), c.images, c.logger)
}

func (c *CompositionRoot) CreateListDronesQueryHandler() queries.ListDronesQueryHandler {
	return queries.NewListDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableDronesQueryHandler() queries.ListAvailableDronesQueryHandler {
	return queries.NewListAvailableDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMedicationsQueryHandler() queries.ListMedicationsQueryHandler {
	return queries.NewListMedicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMedicationQueryHandler() queries.GetMedicationQueryHandler {
	return queries.NewGetMedicationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatteryLevelsQueryHandler() queries.GetBatteryLevelsQueryHandler {
	return queries.NewGetBatteryLevelsQueryHandler(c.gormDB)
}

// CreateRouter wires every handler into the echo router.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	sizeLimit, err := c.config.ImageSizeLimit()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateDrone:         c.CreateCreateDroneCommandHandler(),
		UpdateDrone:         c.CreateUpdateDroneCommandHandler(),
		RemoveDrone:         c.CreateRemoveDroneCommandHandler(),
		LoadMedication:      c.CreateLoadMedicationCommandHandler(),
		CreateMedication:    c.CreateCreateMedicationCommandHandler(),
		UpdateMedication:    c.CreateUpdateMedicationCommandHandler(),
		RemoveMedication:    c.CreateRemoveMedicationCommandHandler(),
		ListDrones:          c.CreateListDronesQueryHandler(),
		ListAvailableDrones: c.CreateListAvailableDronesQueryHandler(),
		GetDrone:            c.CreateGetDroneQueryHandler(),
		ListMedications:     c.CreateListMedicationsQueryHandler(),
		GetMedication:       c.CreateGetMedicationQueryHandler(),
	}, sizeLimit)

	routerConfig := httpin.RouterConfig{PublicPath: ImagesPublicPath}
	if c.config.ImageStorage == StorageLocal {
		routerConfig.ImagesDir = c.config.ImagesDir
	}

	return httpin.NewRouter(ctx, routerConfig, server, c.logger)
}

// CreateJobManager schedules the battery level job writing to batterySink.
func (c *CompositionRoot) CreateJobManager(batterySink *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetBatteryLevelsQueryHandler(), batterySink, c.config.BatteryLogSchedule, c.logger)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncMedicationUoWFactory func() commands.MedicationUoW

func (f FuncMedicationUoWFactory) Create() commands.MedicationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
