package cmd

import (
	"winetrade/internal/adapters/out/postgres"
	"winetrade/internal/adapters/out/postgres/registry"
	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/application/usecases/queries"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/services/docscheck"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	checker    docscheck.Checker
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		checker:    docscheck.NewChecker(),
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRequestStatusCommandHandler() commands.SetRequestStatusCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRequestStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOfferStatusCommandHandler() commands.SetOfferStatusCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOfferStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOffersCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f, c.CreateCreateOrderFromOfferCommandHandler(), kernel.NewUUID)
}

func (c *CompositionRoot) CreateCreateOrderFromOfferCommandHandler() commands.CreateOrderFromOfferCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderFromOfferCommandHandler(
		f,
		registry.NewGormSupplierProvider(c.gormDB),
		c.CreateCreateImportCaseForOrderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.CaseLinkUoWFactory = FuncCaseLinkUoWFactory(func() commands.CaseLinkUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, registry.NewGormSupplierProvider(c.gormDB))
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeclineOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateImportCaseForOrderCommandHandler() commands.CreateImportCaseForOrderCommandHandler {
	var f commands.CaseLinkUoWFactory = FuncCaseLinkUoWFactory(func() commands.CaseLinkUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateImportCaseForOrderCommandHandler(
		f,
		registry.NewGormDeliveryLocationProvider(c.gormDB),
		registry.NewGormSupplierProvider(c.gormDB),
	)
}

func (c *CompositionRoot) CreateCreateImportCaseCommandHandler() commands.CreateImportCaseCommandHandler {
	var f commands.ImportCaseUoWFactory = FuncImportCaseUoWFactory(func() commands.ImportCaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateImportCaseCommandHandler(f, registry.NewGormDeliveryLocationProvider(c.gormDB))
}

func (c *CompositionRoot) CreateSetImportCaseStatusCommandHandler() commands.SetImportCaseStatusCommandHandler {
	var f commands.ImportCaseUoWFactory = FuncImportCaseUoWFactory(func() commands.ImportCaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetImportCaseStatusCommandHandler(f, registry.NewGormDocumentProvider(c.gormDB), c.checker)
}

func (c *CompositionRoot) CreateAttachSupplierImportCommandHandler() commands.AttachSupplierImportCommandHandler {
	var f commands.CaseLinkUoWFactory = FuncCaseLinkUoWFactory(func() commands.CaseLinkUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachSupplierImportCommandHandler(f)
}

func (c *CompositionRoot) CreateGetImportCaseQueryHandler() queries.GetImportCaseQueryHandler {
	return queries.NewGetImportCaseQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentRequirementsQueryHandler() queries.GetDocumentRequirementsQueryHandler {
	return queries.NewGetDocumentRequirementsQueryHandler(c.gormDB, c.checker)
}

func (c *CompositionRoot) CreateCanTransitionQueryHandler() queries.CanTransitionQueryHandler {
	return queries.NewCanTransitionQueryHandler(c.gormDB, c.checker)
}

func (c *CompositionRoot) CreateGetLinkedSupplierImportsQueryHandler() queries.GetLinkedSupplierImportsQueryHandler {
	return queries.NewGetLinkedSupplierImportsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncImportCaseUoWFactory func() commands.ImportCaseUoW

func (f FuncImportCaseUoWFactory) Create() commands.ImportCaseUoW {
	return f()
}

type FuncCaseLinkUoWFactory func() commands.CaseLinkUoW

func (f FuncCaseLinkUoWFactory) Create() commands.CaseLinkUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
