package cmd

import (
	"log/slog"

	"verification/internal/adapters/out/notification"
	"verification/internal/adapters/out/postgres"
	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/application/usecases/queries"
	"verification/internal/core/ports"
	"verification/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderRequestCommandHandler() commands.CreateOrderRequestCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignVerifierCommandHandler() commands.AssignVerifierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVerifierCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPendingOrderCommandHandler() commands.AssignPendingOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartVisitCommandHandler() commands.StartVisitCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartVisitCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderReportUoWFactory = FuncOrderReportUoWFactory(func() commands.OrderReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateObservationCommandHandler() commands.CreateObservationCommandHandler {
	var f commands.ObservationUoWFactory = FuncObservationUoWFactory(func() commands.ObservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateObservationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateObservationStatusCommandHandler() commands.UpdateObservationStatusCommandHandler {
	var f commands.ObservationUoWFactory = FuncObservationUoWFactory(func() commands.ObservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateObservationStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateReportCommandHandler() commands.UpdateReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReportCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLandlordInterviewCommandHandler() commands.UpdateLandlordInterviewCommandHandler {
	var f commands.OrderReportUoWFactory = FuncOrderReportUoWFactory(func() commands.OrderReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLandlordInterviewCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVerifierCommandHandler() commands.CreateVerifierCommandHandler {
	var f commands.VerifierUoWFactory = FuncVerifierUoWFactory(func() commands.VerifierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVerifierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderSummariesQueryHandler() queries.GetOrderSummariesQueryHandler {
	return queries.NewGetOrderSummariesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportSummariesQueryHandler() queries.GetReportSummariesQueryHandler {
	return queries.NewGetReportSummariesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotificationSink() ports.NotificationSink {
	return notification.NewSlogNotificationSink(c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(
		c.CreateAssignPendingOrderCommandHandler(),
		f,
		c.CreateNotificationSink(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncObservationUoWFactory func() commands.ObservationUoW

func (f FuncObservationUoWFactory) Create() commands.ObservationUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}

type FuncOrderReportUoWFactory func() commands.OrderReportUoW

func (f FuncOrderReportUoWFactory) Create() commands.OrderReportUoW {
	return f()
}

type FuncVerifierUoWFactory func() commands.VerifierUoW

func (f FuncVerifierUoWFactory) Create() commands.VerifierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
